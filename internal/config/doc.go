// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

/*
Package config loads and validates Senderos configuration.

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Defaults from defaultConfig()
 2. An optional YAML file (CONFIG_PATH, ./config.yaml, /etc/senderos/config.yaml)
 3. Environment variables (see envTransformFunc for the full list)

Only mapped environment variables are read; anything else in the environment
is ignored.

Example config.yaml:

	server:
	  port: 8080
	catalog:
	  url: https://api.example.com/dev
	  rate_limit: 20
	reservations:
	  url: https://api.example.com/dev
	preferences:
	  store: badger
	  badger_path: /data/preferences
	enrichment:
	  max_concurrency: 8
	  lookup_timeout: 5s

Validation combines go-playground/validator struct tags (ranges, enums, URL
syntax) with hand-written cross-field checks (required URLs per store mode,
positive durations).
*/
package config
