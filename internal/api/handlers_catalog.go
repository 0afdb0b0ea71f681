// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/senderos/internal/category"
	"github.com/tomtom215/senderos/internal/models"
)

const catalogService = "catalog"

// ListServices handles GET /api/v1/services.
// The optional q parameter filters by a case-insensitive description match.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	req := ServiceSearchRequest{Query: strings.TrimSpace(r.URL.Query().Get("q"))}
	if !validateRequest(rw, &req) {
		return
	}

	services, err := h.catalog.GetAllServices(r.Context())
	if err != nil {
		writeError(rw, catalogService, err)
		return
	}

	matched := make([]models.Service, 0, len(services))
	for i := range services {
		if services[i].MatchesDescription(req.Query) {
			matched = append(matched, services[i])
		}
	}

	rw.SuccessList(matched, len(matched))
}

// GetService handles GET /api/v1/services/{serviceID}.
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	serviceID := strings.TrimSpace(chi.URLParam(r, "serviceID"))
	if serviceID == "" {
		rw.BadRequest("serviceID is required")
		return
	}

	service, err := h.catalog.GetServiceByID(r.Context(), serviceID)
	if err != nil {
		writeError(rw, catalogService, err)
		return
	}

	rw.Success(service)
}

// categoriesResponse is the payload of GET /api/v1/categories.
type categoriesResponse struct {
	Categories   []category.Entry `json:"categories"`
	DisplayNames []string         `json:"display_names"`
}

// ListCategories handles GET /api/v1/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(categoriesResponse{
		Categories:   category.Vocabulary(),
		DisplayNames: category.DisplayNames(),
	})
}

// ProviderServices handles GET /api/v1/providers/{providerID}/services.
func (h *Handler) ProviderServices(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	providerID := strings.TrimSpace(chi.URLParam(r, "providerID"))
	if providerID == "" {
		rw.BadRequest("providerID is required")
		return
	}

	services, err := h.catalog.GetServicesByProvider(r.Context(), providerID)
	if err != nil {
		writeError(rw, catalogService, err)
		return
	}

	rw.SuccessList(services, len(services))
}
