// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package api

import (
	"net/http"

	"github.com/tomtom215/senderos/internal/middleware"
)

const recommendationsService = "recommendations"

// Recommendations handles GET /api/v1/recommendations.
// A tourist without stored preferences gets an empty list, not an error.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id := middleware.IdentityFromContext(r.Context())
	if id.IsAnonymous() {
		rw.Unauthorized("tourist identity required")
		return
	}

	result, err := h.recommender.Recommend(r.Context(), id.UserID)
	if err != nil {
		writeError(rw, recommendationsService, err)
		return
	}

	rw.Success(result)
}
