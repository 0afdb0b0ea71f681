// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

/*
Package backend provides the HTTP clients for the three remote systems the
gateway sits in front of: the service catalog, the reservation store and the
tourist preference store.

# Interfaces

The rest of the gateway depends only on the interfaces in interfaces.go:

  - CatalogReader: GetAllServices, GetServiceByID
  - ProviderCatalogReader: GetServicesByProvider
  - ReservationReader: GetReservationsByTourist, GetReservationsByProvider
  - PreferenceStore: GetPreferences, SavePreferences

internal/store provides local PreferenceStore implementations (BadgerDB and
in-memory) that are selected through preferences.store.

# Wire Format

The backends are API Gateway stages in front of Lambda functions. A response
is either the payload itself or an envelope whose "body" field carries the
payload, as an object or as a JSON-encoded string:

	{"servicios": [...]}
	{"statusCode": 200, "body": "{\"servicios\": [...]}"}

All clients accept both shapes.

# Resilience

Every client goes through Client, which provides:
  - a token bucket per backend (golang.org/x/time/rate)
  - HTTP 429 retries with exponential backoff honoring Retry-After
  - a sony/gobreaker/v2 circuit breaker whose state is exported as metrics
  - bounded (64KB) error body reads

ErrNotFound responses and caller cancellations do not count as breaker
failures.

# Errors

	ErrNotFound     the resource does not exist (HTTP 404, empty payload)
	ErrUnavailable  transport error or non-2xx status
	ErrCircuitOpen  the breaker rejected the call without contacting the backend
	ErrMalformed    the payload could not be decoded

*StatusError carries the HTTP status and unwraps to ErrNotFound or
ErrUnavailable.

CachedCatalog decorates a catalog with the TTL cache from internal/cache so
enrichment of long reservation histories issues one lookup per distinct
service.
*/
package backend
