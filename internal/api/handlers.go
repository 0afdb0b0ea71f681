// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package api

import (
	"time"

	"github.com/tomtom215/senderos/internal/backend"
	"github.com/tomtom215/senderos/internal/enrich"
	"github.com/tomtom215/senderos/internal/quiz"
	"github.com/tomtom215/senderos/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_health.go: liveness and readiness probes
//   - handlers_catalog.go: services, categories and provider listings
//   - handlers_quiz.go: preference quiz sessions
//   - handlers_recommend.go: recommendations
//   - handlers_reservations.go: enriched reservation listings
type Handler struct {
	catalog      backend.Catalog
	reservations backend.ReservationReader
	preferences  backend.PreferenceStore
	recommender  *recommend.Recommender
	enrichment   *enrich.Service
	sampler      *quiz.Sampler
	sessions     *QuizSessions
	readiness    map[string]backend.StateReporter
	startTime    time.Time
}

// Dependencies lists what NewHandler wires together. Readiness maps a
// backend name to the breaker reported by /health/ready.
type Dependencies struct {
	Catalog      backend.Catalog
	Reservations backend.ReservationReader
	Preferences  backend.PreferenceStore
	Recommender  *recommend.Recommender
	Enrichment   *enrich.Service
	Sampler      *quiz.Sampler
	Sessions     *QuizSessions
	Readiness    map[string]backend.StateReporter
}

// NewHandler creates the API handler.
//
//	handler := api.NewHandler(api.Dependencies{...})
//	router := api.NewRouter(handler, &cfg.Security)
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(deps Dependencies) *Handler {
	sessions := deps.Sessions
	if sessions == nil {
		sessions = NewQuizSessions(DefaultQuizSessionTTL)
	}
	return &Handler{
		catalog:      deps.Catalog,
		reservations: deps.Reservations,
		preferences:  deps.Preferences,
		recommender:  deps.Recommender,
		enrichment:   deps.Enrichment,
		sampler:      deps.Sampler,
		sessions:     sessions,
		readiness:    deps.Readiness,
		startTime:    time.Now(),
	}
}

// Close releases background resources owned by the handler.
func (h *Handler) Close() {
	h.sessions.Close()
}
