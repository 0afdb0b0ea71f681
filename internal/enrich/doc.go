// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

/*
Package enrich attaches service titles and images to reservation lists.

A reservation only carries a ServiceID. Pipeline.Enrich looks every service
up concurrently (at most MaxConcurrency lookups in flight, each bounded by
LookupTimeout) and returns one EnrichedReservation per input, in input order.

# Failure Handling

A lookup that fails, times out, panics or returns no service never fails the
batch. The affected entry gets the fallback title ("Título no disponible")
and an empty image, with Resolved=false. Lookups are not retried.

If the batch context is cancelled, in-flight lookups are cancelled and the
entries that did not resolve get fallback values. The caller decides whether
to use the result by checking ctx.Err().

# Staleness

Guard tracks the newest enrichment request per viewer. Service.Run begins a
ticket before loading and returns ErrSuperseded when a newer request for the
same viewer started in the meantime, so a slow batch never overwrites a newer
one.

	svc := enrich.NewService(enrich.New(enrich.Config{MaxConcurrency: 8}), enrich.NewGuard())
	out, stats, err := svc.Run(ctx, "tourist:t1", loadReservations, catalog.GetServiceByID)
*/
package enrich
