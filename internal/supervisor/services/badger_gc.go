// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// GarbageCollector reclaims value-log space.
// store.BadgerPreferenceStore satisfies it.
type GarbageCollector interface {
	RunGC() error
}

// BadgerGCService runs value-log garbage collection on the badger
// preference store at a fixed interval.
type BadgerGCService struct {
	store    GarbageCollector
	interval time.Duration
	logger   zerolog.Logger
}

// NewBadgerGCService creates the GC loop.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBadgerGCService(store GarbageCollector, interval time.Duration, logger zerolog.Logger) *BadgerGCService {
	return &BadgerGCService{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("service", "badger-gc").Logger(),
	}
}

// Serve implements suture.Service.
func (s *BadgerGCService) Serve(ctx context.Context) error {
	if s.interval <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.store.RunGC(); err != nil {
				s.logger.Warn().Err(err).Msg("value log GC failed")
				continue
			}
			s.logger.Debug().Dur("duration", time.Since(start)).Msg("value log GC complete")
		}
	}
}

// String implements fmt.Stringer for suture logs.
func (s *BadgerGCService) String() string {
	return "badger-gc"
}
