// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

/*
Package cache provides a thread-safe, generic in-memory cache with TTL support.

Two parts of the gateway keep short-lived state in it:
  - the catalog decorator in internal/backend, so that enriching a long
    reservation history hits the catalog backend once per distinct service
  - quiz sessions in internal/api, keyed by session UUID

# Usage Example

	c := cache.New[*models.Service](5 * time.Minute)
	defer c.Close()

	c.Set("svc-1", svc)
	if svc, ok := c.Get("svc-1"); ok {
	    // use svc
	}

Expired entries are removed lazily on Get and by a background sweep. Close
stops the sweep goroutine; a closed cache is still usable.
*/
package cache
