// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

// Package services provides suture.Service wrappers for the gateway's
// long-running components.
//
// Every service follows the same contract:
//   - Serve(ctx) blocks until ctx is cancelled and then returns ctx.Err()
//   - a returned non-context error makes the supervisor restart the service
//   - String() names the service in supervisor logs
//
// Periodic services (catalog warmer, badger GC) log and swallow the errors
// of a single run, so one failed refresh does not count against the
// supervisor's failure threshold.
package services
