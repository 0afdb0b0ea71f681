// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/senderos/internal/backend"
	"github.com/tomtom215/senderos/internal/enrich"
	"github.com/tomtom215/senderos/internal/logging"
)

// statusClientClosedRequest is logged when the caller went away. Nothing is
// written to the connection in that case.
const statusClientClosedRequest = 499

// writeError maps a load failure to an HTTP response.
//
//	circuit open              -> 503 SERVICE_UNAVAILABLE
//	not found                 -> 404 NOT_FOUND
//	unavailable / malformed   -> 502 EXTERNAL_SERVICE_FAILED
//	superseded enrichment     -> 409 CONFLICT
//	caller cancelled          -> nothing written
//	anything else             -> 500 INTERNAL_ERROR
func writeError(rw *ResponseWriter, service string, err error) {
	logger := logging.Ctx(rw.r.Context())

	switch {
	case errors.Is(err, context.Canceled) && rw.r.Context().Err() != nil:
		logger.Debug().Err(err).Int("status", statusClientClosedRequest).Msg("Client closed request")

	case errors.Is(err, backend.ErrCircuitOpen):
		logger.Warn().Err(err).Str("service", service).Msg("Circuit open")
		rw.ServiceUnavailable(service + " temporarily unavailable")

	case errors.Is(err, backend.ErrNotFound):
		rw.NotFound(service + " resource not found")

	case errors.Is(err, backend.ErrUnavailable), errors.Is(err, backend.ErrMalformed),
		errors.Is(err, context.DeadlineExceeded):
		rw.ExternalServiceError(service, err)

	case errors.Is(err, enrich.ErrSuperseded):
		rw.Conflict("superseded by a newer request")

	default:
		logger.Error().Err(err).Str("service", service).Msg("Unhandled error")
		rw.InternalError("internal error")
	}
}

// respondError is a shorthand used by handlers that only hold the raw writer.
func respondError(w http.ResponseWriter, r *http.Request, service string, err error) {
	writeError(NewResponseWriter(w, r), service, err)
}
