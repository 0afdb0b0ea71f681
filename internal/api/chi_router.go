// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/senderos/internal/config"
	"github.com/tomtom215/senderos/internal/middleware"
)

// compressionLevel is the gzip level used for JSON responses.
const compressionLevel = 5

// Router wires handlers and middleware into a chi router.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	userHeader    string
	roleHeader    string
}

// NewRouter creates a router for handler using the security settings for
// CORS, rate limiting and identity headers.
func NewRouter(handler *Handler, sec *config.SecurityConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareConfigFromSecurity(sec)),
		userHeader:    sec.UserIDHeader,
		roleHeader:    sec.RoleHeader,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).Error(http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	// ========================
	// Health and Metrics
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Gateway API
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chimiddleware.Compress(compressionLevel, "application/json"))
		r.Use(middleware.Identity(router.userHeader, router.roleHeader))

		// Catalog
		r.Get("/services", router.handler.ListServices)
		r.Get("/services/{serviceID}", router.handler.GetService)
		r.Get("/categories", router.handler.ListCategories)
		r.Get("/providers/{providerID}/services", router.handler.ProviderServices)

		// Preference quiz
		r.Route("/quiz", func(r chi.Router) {
			r.With(router.chiMiddleware.RateLimitQuiz()).Post("/", router.handler.StartQuiz)
			r.Get("/{sessionID}", router.handler.QuizState)
			r.Post("/{sessionID}/answers", router.handler.AnswerQuiz)
		})

		r.Get("/recommendations", router.handler.Recommendations)

		// Reservations
		r.Get("/tourists/{touristID}/reservations", router.handler.TouristReservations)
		r.Get("/providers/{providerID}/reservations", router.handler.ProviderReservations)
		r.Get("/me/reservations", router.handler.MyReservations)
	})

	return r
}
