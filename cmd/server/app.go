// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package main

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/senderos/internal/api"
	"github.com/tomtom215/senderos/internal/backend"
	"github.com/tomtom215/senderos/internal/config"
	"github.com/tomtom215/senderos/internal/enrich"
	"github.com/tomtom215/senderos/internal/logging"
	"github.com/tomtom215/senderos/internal/quiz"
	"github.com/tomtom215/senderos/internal/recommend"
	"github.com/tomtom215/senderos/internal/store"
)

// app holds the wired components that need closing on shutdown.
type app struct {
	catalog     *backend.CachedCatalog
	preferences *store.Selection
	handler     *api.Handler
	router      http.Handler
}

// buildApp wires backends, core services and the HTTP router from cfg.
func buildApp(cfg *config.Config) (*app, error) {
	catalog := backend.NewCachedCatalog(backend.NewCatalogClient(&cfg.Catalog), cfg.Recommend.CatalogCacheTTL)
	reservations := backend.NewReservationClient(&cfg.Reservations)

	preferences, err := store.Open(&cfg.Preferences)
	if err != nil {
		catalog.Close()
		return nil, fmt.Errorf("open preference store: %w", err)
	}

	bank, err := quiz.LoadBank(cfg.Quiz.BankPath)
	if err != nil {
		catalog.Close()
		_ = preferences.Close()
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	sampler := quiz.NewSampler(nil, bank, cfg.Quiz.QuestionCount, cfg.Quiz.OptionsPerQuestion)
	logging.Info().
		Int("bank_size", sampler.BankSize()).
		Int("questions", cfg.Quiz.QuestionCount).
		Int("options", cfg.Quiz.OptionsPerQuestion).
		Msg("Question bank loaded")

	pipeline := enrich.New(enrich.ConfigFrom(&cfg.Enrichment))
	recommender := recommend.NewRecommender(catalog, preferences.Store, cfg.Recommend.TopK,
		logging.WithComponent("recommend"))

	handler := api.NewHandler(api.Dependencies{
		Catalog:      catalog,
		Reservations: reservations,
		Preferences:  preferences.Store,
		Recommender:  recommender,
		Enrichment:   enrich.NewService(pipeline, enrich.NewGuard()),
		Sampler:      sampler,
		Sessions:     api.NewQuizSessions(cfg.Quiz.SessionTTL),
		Readiness: map[string]backend.StateReporter{
			"catalog":      catalog,
			"reservations": reservations,
			"preferences":  preferences,
		},
	})

	return &app{
		catalog:     catalog,
		preferences: preferences,
		handler:     handler,
		router:      api.NewRouter(handler, &cfg.Security).SetupChi(),
	}, nil
}

// Close releases caches, sessions and the preference store. Safe to call twice.
func (a *app) Close() {
	if a.handler != nil {
		a.handler.Close()
		a.handler = nil
	}
	if a.catalog != nil {
		a.catalog.Close()
		a.catalog = nil
	}
	if a.preferences != nil {
		if err := a.preferences.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing preference store")
		}
		a.preferences = nil
	}
}
