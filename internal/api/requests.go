// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/senderos/internal/validation"
)

// maxRequestBodySize bounds JSON request bodies.
const maxRequestBodySize = 16 << 10

// QuizAnswerRequest is the body of POST /quiz/{sessionID}/answers.
type QuizAnswerRequest struct {
	Category string `json:"category" validate:"required,category_key"`
}

// ServiceSearchRequest holds the query parameters of GET /services.
type ServiceSearchRequest struct {
	Query string `json:"q" validate:"omitempty,max=200"`
}

// decodeJSONBody decodes a bounded JSON body into dst and validates it.
// It writes the error response itself and reports whether decoding succeeded.
func decodeJSONBody(rw *ResponseWriter, r *http.Request, dst interface{}) bool {
	body := http.MaxBytesReader(rw.w, r.Body, maxRequestBodySize)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxErr):
			rw.BadRequest("request body too large")
		case errors.Is(err, io.EOF):
			rw.BadRequest("request body is empty")
		default:
			rw.BadRequest("invalid JSON body")
		}
		return false
	}

	return validateRequest(rw, dst)
}

// validateRequest runs struct validation and writes a 400 on failure.
func validateRequest(rw *ResponseWriter, req interface{}) bool {
	if verr := validation.ValidateStruct(req); verr != nil {
		apiErr := verr.ToAPIError()
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return false
	}
	return true
}
