// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

// Package main is the entry point for the Senderos gateway.
//
// Senderos sits between the tourist and provider front ends and three
// backends: the service catalog, the reservation service and the preference
// store. It serves the catalog, runs the preference quiz, produces
// recommendations and returns reservations enriched with service titles and
// images.
//
// # Startup Order
//
//  1. Configuration: defaults, then config.yaml, then environment (koanf)
//  2. Logging: zerolog with the configured level and format
//  3. Backends: catalog (cached), reservations, preference store
//  4. Core: quiz bank and sampler, enrichment pipeline, recommender
//  5. HTTP: chi router wrapped in an http.Server
//  6. Supervisor tree: catalog warmer and badger GC in the data layer,
//     the HTTP server in the api layer
//
// # Configuration
//
// The most common environment variables:
//
//	CATALOG_URL=https://catalog.example.com/dev
//	RESERVATIONS_URL=https://reservations.example.com/dev
//	PREFERENCES_STORE=remote|badger|memory
//	PREFERENCES_URL=https://preferences.example.com/dev
//	HTTP_PORT=8080
//	LOG_LEVEL=info
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the root context. The supervisor stops the HTTP
// server gracefully, then the badger store and caches are closed.
package main
