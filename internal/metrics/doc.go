// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

/*
Package metrics provides Prometheus metrics for Senderos.

All collectors are registered with the default registry through promauto and
exposed at /metrics.

# Available Metrics

API:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

Backends:
  - backend_requests_total{backend,operation,outcome}
  - backend_request_duration_seconds{backend,operation}
  - backend_rate_limit_retries_total{backend}
  - circuit_breaker_state{name} (0=closed, 1=half-open, 2=open)
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Enrichment:
  - enrichment_lookups_total{outcome} (resolved, failed, timeout, panic, missing, cancelled)
  - enrichment_batch_size
  - enrichment_batch_duration_seconds
  - enrichment_superseded_batches_total

Quiz and recommendations:
  - quiz_sessions_started_total, quiz_sessions_completed_total
  - quiz_active_sessions
  - recommendations_served_total{result} (matched, empty, no_preferences)

Cache:
  - catalog_cache_hits_total, catalog_cache_misses_total
*/
package metrics
