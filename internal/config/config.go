// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package config

import (
	"fmt"
	"time"
)

// Config holds all gateway configuration.
//
// Configuration Categories:
//
//  1. Upstream backends: Catalog, Reservations, Preferences
//  2. Core behavior: Enrichment, Quiz, Recommend
//  3. Serving: Server, Security
//  4. Observability: Logging
type Config struct {
	Server       ServerConfig      `koanf:"server"`
	Catalog      BackendConfig     `koanf:"catalog"`
	Reservations BackendConfig     `koanf:"reservations"`
	Preferences  PreferencesConfig `koanf:"preferences"`
	Enrichment   EnrichmentConfig  `koanf:"enrichment"`
	Quiz         QuizConfig        `koanf:"quiz"`
	Recommend    RecommendConfig   `koanf:"recommend"`
	Security     SecurityConfig    `koanf:"security"`
	Logging      LoggingConfig     `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment" validate:"oneof=development staging production"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// BackendConfig describes one remote JSON-over-HTTP backend.
type BackendConfig struct {
	// URL is the base URL including any stage prefix, e.g. https://host/dev.
	URL string `koanf:"url" validate:"omitempty,url"`

	// Timeout bounds a single HTTP exchange.
	Timeout time.Duration `koanf:"timeout"`

	// RateLimit is the outbound request rate in requests per second.
	// 0 disables client-side pacing.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`
	RateBurst int     `koanf:"rate_burst" validate:"gte=0"`

	// MaxRetries bounds retries of HTTP 429 responses only.
	MaxRetries     int           `koanf:"max_retries" validate:"min=0,max=10"`
	RetryBaseDelay time.Duration `koanf:"retry_base_delay"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds circuit breaker settings for a backend.
type BreakerConfig struct {
	// MaxRequests is the number of trial requests allowed while half-open.
	MaxRequests uint32 `koanf:"max_requests" validate:"min=1"`

	// Interval is the closed-state window after which counts reset.
	Interval time.Duration `koanf:"interval"`

	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration `koanf:"timeout"`

	// MinRequests is the minimum request count before the breaker can trip.
	MinRequests uint32 `koanf:"min_requests" validate:"min=1"`

	// FailureRatio trips the breaker once reached.
	FailureRatio float64 `koanf:"failure_ratio" validate:"gt=0,lte=1"`
}

// Preference store kinds.
const (
	PreferenceStoreRemote = "remote"
	PreferenceStoreBadger = "badger"
	PreferenceStoreMemory = "memory"
)

// PreferencesConfig selects where quiz results are persisted.
type PreferencesConfig struct {
	// Store is one of remote, badger, memory.
	Store string `koanf:"store" validate:"oneof=remote badger memory"`

	// BadgerPath is the data directory for the badger store.
	BadgerPath string `koanf:"badger_path"`

	// BadgerGCInterval is how often value-log GC runs. 0 disables it.
	BadgerGCInterval time.Duration `koanf:"badger_gc_interval"`

	// HTTP configures the remote preference backend (store=remote).
	HTTP BackendConfig `koanf:"http"`
}

// EnrichmentConfig tunes the reservation enrichment pipeline.
type EnrichmentConfig struct {
	MaxConcurrency int           `koanf:"max_concurrency" validate:"min=1,max=256"`
	LookupTimeout  time.Duration `koanf:"lookup_timeout"`
	FallbackTitle  string        `koanf:"fallback_title" validate:"required"`
}

// QuizConfig tunes quiz sampling and session lifetime.
type QuizConfig struct {
	QuestionCount      int           `koanf:"question_count" validate:"min=1,max=50"`
	OptionsPerQuestion int           `koanf:"options_per_question" validate:"min=1,max=20"`
	SessionTTL         time.Duration `koanf:"session_ttl"`

	// BankPath overrides the built-in question bank when set.
	BankPath string `koanf:"bank_path"`
}

// RecommendConfig tunes recommendations and catalog caching.
type RecommendConfig struct {
	TopK int `koanf:"top_k" validate:"min=1,max=50"`

	// CatalogCacheTTL is how long catalog responses are reused. 0 disables caching.
	CatalogCacheTTL time.Duration `koanf:"catalog_cache_ttl"`

	// RefreshInterval is how often the catalog warmer refreshes the cache.
	// 0 disables the warmer.
	RefreshInterval time.Duration `koanf:"refresh_interval"`
}

// SecurityConfig holds inbound request protection and identity header names.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=0"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// UserIDHeader and RoleHeader are set by the upstream session provider.
	UserIDHeader string `koanf:"user_id_header" validate:"required"`
	RoleHeader   string `koanf:"role_header" validate:"required"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`

	// Format is json or console.
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
