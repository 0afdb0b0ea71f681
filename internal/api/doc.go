// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

/*
Package api provides the HTTP API of the Senderos gateway.

The gateway fronts the catalog, reservation and preference backends for the
web and mobile clients. It merges their data (enriched reservations,
recommendations) and owns the preference quiz sessions.

Endpoints:

	GET  /api/v1/health/live                         liveness
	GET  /api/v1/health/ready                        readiness (backend circuit breakers)
	GET  /metrics                                    Prometheus
	GET  /api/v1/services?q=                         catalog, optional description filter
	GET  /api/v1/services/{serviceID}                single service
	GET  /api/v1/categories                          activity vocabulary
	GET  /api/v1/providers/{providerID}/services     provider listing
	POST /api/v1/quiz                                start a quiz
	GET  /api/v1/quiz/{sessionID}                    quiz state
	POST /api/v1/quiz/{sessionID}/answers            answer the current question
	GET  /api/v1/recommendations                     caller's recommendations
	GET  /api/v1/tourists/{touristID}/reservations   enriched bookings of a tourist
	GET  /api/v1/providers/{providerID}/reservations enriched bookings of a provider
	GET  /api/v1/me/reservations                     enriched bookings of the caller

Responses:

Every endpoint answers with the APIResponse envelope:

	{"success": true, "data": {...}, "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}}
	{"success": false, "error": {"code": "NOT_FOUND", "message": "...", "request_id": "..."}, "meta": {...}}

Backend failures map to status codes in one place (writeError): an open
circuit is 503, an unreachable or malformed backend is 502, a missing
resource is 404 and a superseded enrichment request is 409.

Identity:

The caller's user ID and role come from headers set by the upstream session
provider (see middleware.Identity). Quiz and recommendation endpoints answer
401 without a user ID.
*/
package api
