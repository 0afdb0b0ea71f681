// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

/*
Package middleware provides the gateway's own HTTP middleware. Everything is
written in chi's func(http.Handler) http.Handler form so it composes with
r.Use and the go-chi middleware ecosystem.

Key Components:

  - RequestID: accepts or generates X-Request-ID and seeds the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    the chi route pattern rather than the raw path
  - Identity: reads the caller's user ID and role from headers set by the
    upstream session provider

Middleware Stack:

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(...))
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Identity("X-User-ID", "X-User-Role"))

Identity performs no authentication. The gateway sits behind a session
provider that strips and re-sets the identity headers; handlers that need a
caller check IdentityFromContext and answer 401 when it is anonymous.
*/
package middleware
