// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package enrich

import (
	"context"
	"fmt"

	"github.com/tomtom215/senderos/internal/logging"
	"github.com/tomtom215/senderos/internal/metrics"
	"github.com/tomtom215/senderos/internal/models"
)

// LoadFunc loads the reservations to enrich.
type LoadFunc func(ctx context.Context) ([]models.Reservation, error)

// Service runs guarded enrichment requests.
type Service struct {
	pipeline *Pipeline
	guard    *Guard
}

// NewService combines a pipeline and a staleness guard.
func NewService(p *Pipeline, g *Guard) *Service {
	return &Service{pipeline: p, guard: g}
}

// Run loads and enriches the reservations of viewer.
//
// Load errors are returned unchanged. ErrSuperseded is returned when a newer
// Run for the same viewer began before this one finished. If ctx is
// cancelled the context error is returned and the partial result dropped.
func (s *Service) Run(ctx context.Context, viewer string, load LoadFunc, lookup LookupFunc) ([]models.EnrichedReservation, Stats, error) {
	ticket := s.guard.Begin(viewer)
	defer s.guard.Done(ticket)

	reservations, err := load(ctx)
	if err != nil {
		return nil, Stats{}, err
	}
	if !s.guard.Current(ticket) {
		metrics.EnrichmentSuperseded.Inc()
		return nil, Stats{}, ErrSuperseded
	}

	enriched, stats := s.pipeline.Enrich(ctx, reservations, lookup)

	if err := ctx.Err(); err != nil {
		return nil, stats, fmt.Errorf("enrich %s: %w", viewer, err)
	}
	if !s.guard.Current(ticket) {
		metrics.EnrichmentSuperseded.Inc()
		logging.Ctx(ctx).Debug().Str("viewer", viewer).Msg("Discarding superseded enrichment batch")
		return nil, stats, ErrSuperseded
	}

	logging.Ctx(ctx).Debug().
		Int("total", stats.Total).
		Int("resolved", stats.Resolved).
		Int("fallback", stats.Fallback).
		Dur("duration", stats.Duration).
		Msg("Reservations enriched")

	return enriched, stats, nil
}
