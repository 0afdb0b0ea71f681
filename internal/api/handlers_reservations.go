// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/senderos/internal/enrich"
	"github.com/tomtom215/senderos/internal/middleware"
	"github.com/tomtom215/senderos/internal/models"
)

const reservationsService = "reservations"

// reservationsResponse is the payload of the reservation listings.
type reservationsResponse struct {
	Reservations []models.EnrichedReservation `json:"reservations"`
	Resolved     int                          `json:"resolved"`
	Fallback     int                          `json:"fallback"`
}

// TouristReservations handles GET /api/v1/tourists/{touristID}/reservations.
func (h *Handler) TouristReservations(w http.ResponseWriter, r *http.Request) {
	touristID := strings.TrimSpace(chi.URLParam(r, "touristID"))
	h.serveReservations(w, r, "tourist:"+touristID, touristID, h.reservations.GetReservationsByTourist)
}

// ProviderReservations handles GET /api/v1/providers/{providerID}/reservations.
func (h *Handler) ProviderReservations(w http.ResponseWriter, r *http.Request) {
	providerID := strings.TrimSpace(chi.URLParam(r, "providerID"))
	h.serveReservations(w, r, "provider:"+providerID, providerID, h.reservations.GetReservationsByProvider)
}

// MyReservations handles GET /api/v1/me/reservations. The caller's role picks
// the listing: providers see bookings of their services, everyone else their
// own bookings.
func (h *Handler) MyReservations(w http.ResponseWriter, r *http.Request) {
	id := middleware.IdentityFromContext(r.Context())
	if id.IsAnonymous() {
		NewResponseWriter(w, r).Unauthorized("identity required")
		return
	}

	if id.Role == models.RoleProvider {
		h.serveReservations(w, r, "provider:"+id.UserID, id.UserID, h.reservations.GetReservationsByProvider)
		return
	}
	h.serveReservations(w, r, "tourist:"+id.UserID, id.UserID, h.reservations.GetReservationsByTourist)
}

// serveReservations loads and enriches one listing. The viewer key scopes the
// staleness guard, so a newer request for the same listing supersedes an
// older one still in flight.
func (h *Handler) serveReservations(
	w http.ResponseWriter,
	r *http.Request,
	viewer, ownerID string,
	list func(ctx context.Context, id string) ([]models.Reservation, error),
) {
	rw := NewResponseWriter(w, r)
	if ownerID == "" {
		rw.BadRequest("identifier is required")
		return
	}

	var load enrich.LoadFunc = func(ctx context.Context) ([]models.Reservation, error) {
		return list(ctx, ownerID)
	}
	var lookup enrich.LookupFunc = h.catalog.GetServiceByID

	enriched, stats, err := h.enrichment.Run(r.Context(), viewer, load, lookup)
	if err != nil {
		writeError(rw, reservationsService, err)
		return
	}

	rw.Success(reservationsResponse{
		Reservations: enriched,
		Resolved:     stats.Resolved,
		Fallback:     stats.Fallback,
	})
}
