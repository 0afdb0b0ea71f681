// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/senderos/internal/backend"
	"github.com/tomtom215/senderos/internal/logging"
	"github.com/tomtom215/senderos/internal/metrics"
	"github.com/tomtom215/senderos/internal/models"
	"github.com/tomtom215/senderos/internal/quiz"
)

// Result is the recommendation for one tourist.
type Result struct {
	Services       []models.Service      `json:"services"`
	TopCategories  quiz.RankedCategories `json:"top_categories"`
	HasPreferences bool                  `json:"has_preferences"`
}

// Stats counts Recommend calls since startup.
type Stats struct {
	Requests      int64
	Errors        int64
	NoPreferences int64
}

// Recommender produces recommendations from stored preferences.
type Recommender struct {
	catalog backend.CatalogReader
	prefs   backend.PreferenceStore
	topK    int
	logger  zerolog.Logger

	requests      atomic.Int64
	errors        atomic.Int64
	noPreferences atomic.Int64
}

// NewRecommender creates a recommender. topK <= 0 uses DefaultTopK.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRecommender(catalog backend.CatalogReader, prefs backend.PreferenceStore, topK int, logger zerolog.Logger) *Recommender {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Recommender{
		catalog: catalog,
		prefs:   prefs,
		topK:    topK,
		logger:  logger.With().Str("component", "recommend").Logger(),
	}
}

// TopK returns the number of ranked categories used.
func (r *Recommender) TopK() int {
	return r.topK
}

// Recommend returns the services matching the tourist's top categories.
func (r *Recommender) Recommend(ctx context.Context, touristID string) (*Result, error) {
	start := time.Now()
	r.requests.Add(1)
	logger := r.logger.With().
		Str("tourist_id", touristID).
		Str("request_id", logging.RequestIDFromContext(ctx)).
		Logger()

	stored, err := r.prefs.GetPreferences(ctx, touristID)
	if errors.Is(err, backend.ErrNotFound) {
		return r.noPreferencesResult(&logger), nil
	}
	if err != nil {
		r.errors.Add(1)
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	tally := quiz.TallyFromMap(stored)
	if tally.Len() == 0 {
		return r.noPreferencesResult(&logger), nil
	}
	ranked := tally.Rank(r.topK)

	catalog, err := r.catalog.GetAllServices(ctx)
	if err != nil {
		r.errors.Add(1)
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	services := Filter(catalog, ranked, r.topK)
	if len(services) == 0 {
		metrics.RecommendationsServed.WithLabelValues("empty").Inc()
	} else {
		metrics.RecommendationsServed.WithLabelValues("matched").Inc()
	}

	logger.Debug().
		Strs("top_categories", ranked).
		Int("catalog", len(catalog)).
		Int("returned", len(services)).
		Dur("elapsed", time.Since(start)).
		Msg("recommendation complete")

	return &Result{
		Services:       services,
		TopCategories:  ranked,
		HasPreferences: true,
	}, nil
}

func (r *Recommender) noPreferencesResult(logger *zerolog.Logger) *Result {
	r.noPreferences.Add(1)
	metrics.RecommendationsServed.WithLabelValues("no_preferences").Inc()
	logger.Debug().Msg("no stored preferences")
	return &Result{
		Services:      []models.Service{},
		TopCategories: quiz.RankedCategories{},
	}
}

// Stats returns a snapshot of the call counters.
func (r *Recommender) Stats() Stats {
	return Stats{
		Requests:      r.requests.Load(),
		Errors:        r.errors.Load(),
		NoPreferences: r.noPreferences.Load(),
	}
}
