// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package backend

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("backend: not found")

	// ErrUnavailable indicates the backend could not serve the request.
	ErrUnavailable = errors.New("backend: unavailable")

	// ErrCircuitOpen indicates the circuit breaker rejected the request.
	ErrCircuitOpen = errors.New("backend: circuit open")

	// ErrMalformed indicates the backend answered with an undecodable payload.
	ErrMalformed = errors.New("backend: malformed response")
)

// StatusError is returned when a backend answers with a non-2xx status.
type StatusError struct {
	Backend    string
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Backend, e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Backend, e.Operation, e.StatusCode, e.Body)
}

// Unwrap maps 404 to ErrNotFound and every other status to ErrUnavailable.
func (e *StatusError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return ErrUnavailable
}

// outcome classifies err for the backend_requests_total metric.
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrCircuitOpen):
		return "rejected"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	default:
		return "error"
	}
}
