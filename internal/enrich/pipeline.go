// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package enrich

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/senderos/internal/config"
	"github.com/tomtom215/senderos/internal/logging"
	"github.com/tomtom215/senderos/internal/metrics"
	"github.com/tomtom215/senderos/internal/models"
)

const (
	// DefaultMaxConcurrency is the number of lookups allowed in flight.
	DefaultMaxConcurrency = 8

	// DefaultLookupTimeout bounds a single service lookup.
	DefaultLookupTimeout = 5 * time.Second

	// DefaultFallbackTitle is shown when a service cannot be resolved.
	DefaultFallbackTitle = "Título no disponible"
)

// Lookup outcomes, also used as metric labels.
const (
	OutcomeResolved  = "resolved"
	OutcomeFailed    = "failed"
	OutcomeTimeout   = "timeout"
	OutcomePanic     = "panic"
	OutcomeMissing   = "missing"
	OutcomeCancelled = "cancelled"
)

// LookupFunc resolves a service by id. backend.CatalogReader.GetServiceByID
// satisfies it.
type LookupFunc func(ctx context.Context, serviceID string) (*models.Service, error)

// Config holds pipeline settings. Zero values take the defaults.
type Config struct {
	MaxConcurrency int
	LookupTimeout  time.Duration
	FallbackTitle  string
}

// ConfigFrom converts the enrichment section of the gateway configuration.
func ConfigFrom(cfg *config.EnrichmentConfig) Config {
	return Config{
		MaxConcurrency: cfg.MaxConcurrency,
		LookupTimeout:  cfg.LookupTimeout,
		FallbackTitle:  cfg.FallbackTitle,
	}
}

// Stats summarizes one Enrich run.
type Stats struct {
	Total     int
	Resolved  int
	Fallback  int
	Outcomes  map[string]int
	Duration  time.Duration
	Cancelled bool
}

// Pipeline enriches reservation lists. It is safe for concurrent use.
type Pipeline struct {
	maxConcurrency int
	lookupTimeout  time.Duration
	fallbackTitle  string
}

// New creates a pipeline.
func New(cfg Config) *Pipeline {
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = DefaultMaxConcurrency
	}
	if cfg.LookupTimeout <= 0 {
		cfg.LookupTimeout = DefaultLookupTimeout
	}
	if cfg.FallbackTitle == "" {
		cfg.FallbackTitle = DefaultFallbackTitle
	}
	return &Pipeline{
		maxConcurrency: cfg.MaxConcurrency,
		lookupTimeout:  cfg.LookupTimeout,
		fallbackTitle:  cfg.FallbackTitle,
	}
}

// MaxConcurrency returns the in-flight lookup cap.
func (p *Pipeline) MaxConcurrency() int {
	return p.maxConcurrency
}

// FallbackTitle returns the title used for unresolved services.
func (p *Pipeline) FallbackTitle() string {
	return p.fallbackTitle
}

// Enrich resolves the service of every reservation. The result has the same
// length and order as reservations; per-item failures degrade to fallback
// values and are reported in Stats.
func (p *Pipeline) Enrich(ctx context.Context, reservations []models.Reservation, lookup LookupFunc) ([]models.EnrichedReservation, Stats) {
	start := time.Now()
	out := make([]models.EnrichedReservation, len(reservations))
	outcomes := make([]string, len(reservations))

	var g errgroup.Group
	g.SetLimit(p.maxConcurrency)

	for i := range reservations {
		if ctx.Err() != nil {
			out[i] = p.fallback(reservations[i])
			outcomes[i] = OutcomeCancelled
			continue
		}

		g.Go(func() error {
			out[i], outcomes[i] = p.resolve(ctx, reservations[i], lookup)
			return nil
		})
	}
	// Goroutines never return an error.
	_ = g.Wait()

	stats := Stats{
		Total:     len(reservations),
		Outcomes:  make(map[string]int),
		Duration:  time.Since(start),
		Cancelled: ctx.Err() != nil,
	}
	for _, o := range outcomes {
		stats.Outcomes[o]++
		metrics.EnrichmentLookups.WithLabelValues(o).Inc()
		if o == OutcomeResolved {
			stats.Resolved++
		} else {
			stats.Fallback++
		}
	}
	metrics.RecordEnrichmentBatch(stats.Total, stats.Duration)

	return out, stats
}

type lookupResult struct {
	svc *models.Service
	err error
}

var errLookupPanic = errors.New("service lookup panicked")

// resolve performs one bounded lookup. The lookup runs in its own goroutine
// so a lookup that ignores its context still cannot hold the batch past the
// timeout.
func (p *Pipeline) resolve(ctx context.Context, r models.Reservation, lookup LookupFunc) (models.EnrichedReservation, string) {
	if lookup == nil {
		return p.fallback(r), OutcomeMissing
	}

	lctx, cancel := context.WithTimeout(ctx, p.lookupTimeout)
	defer cancel()

	done := make(chan lookupResult, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- lookupResult{err: fmt.Errorf("%w: %v", errLookupPanic, rec)}
			}
		}()
		svc, err := lookup(lctx, r.ServiceID)
		done <- lookupResult{svc: svc, err: err}
	}()

	var res lookupResult
	select {
	case res = <-done:
	case <-lctx.Done():
		res = lookupResult{err: lctx.Err()}
	}

	outcome := classify(ctx, res)
	if outcome != OutcomeResolved {
		logging.Ctx(ctx).Debug().
			Err(res.err).
			Str("reservation_id", r.ReservationID).
			Str("service_id", r.ServiceID).
			Str("outcome", outcome).
			Msg("Reservation enrichment fell back")
		return p.fallback(r), outcome
	}

	title := res.svc.Title
	if title == "" {
		title = p.fallbackTitle
	}
	return models.EnrichedReservation{
		Reservation:  r,
		ServiceTitle: title,
		ServiceImage: res.svc.PrimaryImage(),
		Resolved:     true,
	}, OutcomeResolved
}

func classify(ctx context.Context, res lookupResult) string {
	switch {
	case res.err == nil && res.svc != nil:
		return OutcomeResolved
	case res.err == nil:
		return OutcomeMissing
	case errors.Is(res.err, errLookupPanic):
		return OutcomePanic
	case ctx.Err() != nil:
		return OutcomeCancelled
	case errors.Is(res.err, context.DeadlineExceeded):
		return OutcomeTimeout
	default:
		return OutcomeFailed
	}
}

func (p *Pipeline) fallback(r models.Reservation) models.EnrichedReservation {
	return models.EnrichedReservation{
		Reservation:  r,
		ServiceTitle: p.fallbackTitle,
		ServiceImage: "",
		Resolved:     false,
	}
}
