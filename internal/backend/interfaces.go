// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package backend

import (
	"context"

	"github.com/tomtom215/senderos/internal/models"
)

// CatalogReader reads the service catalog.
type CatalogReader interface {
	// GetAllServices returns the full catalog in backend order.
	GetAllServices(ctx context.Context) ([]models.Service, error)

	// GetServiceByID returns one service or an error wrapping ErrNotFound.
	GetServiceByID(ctx context.Context, serviceID string) (*models.Service, error)
}

// ProviderCatalogReader lists the services published by one provider.
type ProviderCatalogReader interface {
	GetServicesByProvider(ctx context.Context, providerID string) ([]models.Service, error)
}

// Catalog is the full catalog surface used by the gateway.
type Catalog interface {
	CatalogReader
	ProviderCatalogReader
}

// ReservationReader reads reservations for either side of the marketplace.
type ReservationReader interface {
	GetReservationsByTourist(ctx context.Context, touristID string) ([]models.Reservation, error)
	GetReservationsByProvider(ctx context.Context, providerID string) ([]models.Reservation, error)
}

// PreferenceStore persists a tourist's category tally.
//
// GetPreferences returns an error wrapping ErrNotFound when nothing was
// stored for the tourist. The returned map may contain bookkeeping fields;
// callers build a quiz.Tally with quiz.TallyFromMap.
type PreferenceStore interface {
	GetPreferences(ctx context.Context, touristID string) (map[string]int, error)
	SavePreferences(ctx context.Context, touristID string, tally map[string]int) error
}

// StateReporter is implemented by clients guarded by a circuit breaker.
type StateReporter interface {
	// BreakerOpen reports whether the breaker currently rejects requests.
	BreakerOpen() bool
}
