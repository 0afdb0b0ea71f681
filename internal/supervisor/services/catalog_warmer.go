// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/senderos/internal/models"
)

// DefaultRefreshTimeout bounds one catalog refresh.
const DefaultRefreshTimeout = 30 * time.Second

// CatalogRefresher reloads the catalog into a cache.
// backend.CachedCatalog satisfies it.
type CatalogRefresher interface {
	Refresh(ctx context.Context) ([]models.Service, error)
}

// CatalogWarmerService keeps the catalog cache warm so that recommendation
// and listing requests rarely wait on the catalog backend.
type CatalogWarmerService struct {
	catalog  CatalogRefresher
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewCatalogWarmerService refreshes catalog on start and every interval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogWarmerService(catalog CatalogRefresher, interval time.Duration, logger zerolog.Logger) *CatalogWarmerService {
	return &CatalogWarmerService{
		catalog:  catalog,
		interval: interval,
		timeout:  DefaultRefreshTimeout,
		logger:   logger.With().Str("service", "catalog-warmer").Logger(),
	}
}

// Serve implements suture.Service. A failed refresh is logged and retried on
// the next tick; the previous cache contents stay in place.
func (s *CatalogWarmerService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info().Msg("catalog warmer disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	s.logger.Info().Dur("interval", s.interval).Msg("catalog warmer starting")
	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog warmer shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

func (s *CatalogWarmerService) refresh(ctx context.Context) {
	refreshCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	services, err := s.catalog.Refresh(refreshCtx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Msg("catalog refresh failed; keeping cached copy")
		}
		return
	}

	s.logger.Debug().
		Int("services", len(services)).
		Dur("duration", time.Since(start)).
		Msg("catalog refreshed")
}

// String implements fmt.Stringer for suture logs.
func (s *CatalogWarmerService) String() string {
	return "catalog-warmer"
}
