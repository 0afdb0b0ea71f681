// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package api

import (
	"net/http"
	"time"
)

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of backends.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 503 while any required backend has an open circuit breaker.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ready := true
	backends := make(map[string]string, len(h.readiness))
	for name, reporter := range h.readiness {
		if reporter.BreakerOpen() {
			backends[name] = "circuit_open"
			ready = false
			continue
		}
		backends[name] = "ok"
	}

	statusCode := http.StatusOK
	status := "ready"
	if !ready {
		statusCode = http.StatusServiceUnavailable
		status = "not_ready"
	}

	NewResponseWriter(w, r).Status(statusCode, map[string]interface{}{
		"status":         status,
		"ready_to_serve": ready,
		"backends":       backends,
		"uptime":         time.Since(h.startTime).Seconds(),
	})
}
