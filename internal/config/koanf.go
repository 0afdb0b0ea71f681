// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/senderos/config.yaml",
	"/etc/senderos/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultBackend() BackendConfig {
	return BackendConfig{
		URL:            "",
		Timeout:        10 * time.Second,
		RateLimit:      20,
		RateBurst:      40,
		MaxRetries:     3,
		RetryBaseDelay: 500 * time.Millisecond,
		Breaker: BreakerConfig{
			MaxRequests:  3,
			Interval:     time.Minute,
			Timeout:      30 * time.Second,
			MinRequests:  10,
			FailureRatio: 0.6,
		},
	}
}

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Catalog:      defaultBackend(),
		Reservations: defaultBackend(),
		Preferences: PreferencesConfig{
			Store:            PreferenceStoreRemote,
			BadgerPath:       "/data/preferences",
			BadgerGCInterval: 10 * time.Minute,
			HTTP:             defaultBackend(),
		},
		Enrichment: EnrichmentConfig{
			MaxConcurrency: 8,
			LookupTimeout:  5 * time.Second,
			FallbackTitle:  "Título no disponible",
		},
		Quiz: QuizConfig{
			QuestionCount:      3,
			OptionsPerQuestion: 4,
			SessionTTL:         30 * time.Minute,
			BankPath:           "",
		},
		Recommend: RecommendConfig{
			TopK:            4,
			CatalogCacheTTL: 5 * time.Minute,
			RefreshInterval: 4 * time.Minute,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			UserIDHeader:      "X-User-ID",
			RoleHeader:        "X-User-Role",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// backendEnvMappings returns the env mappings shared by every backend section.
// CATALOG_URL -> catalog.url, CATALOG_BREAKER_TIMEOUT -> catalog.breaker.timeout, ...
func backendEnvMappings(envPrefix, path string) map[string]string {
	fields := map[string]string{
		"url":                   "url",
		"timeout":               "timeout",
		"rate_limit":            "rate_limit",
		"rate_burst":            "rate_burst",
		"max_retries":           "max_retries",
		"retry_base_delay":      "retry_base_delay",
		"breaker_max_requests":  "breaker.max_requests",
		"breaker_interval":      "breaker.interval",
		"breaker_timeout":       "breaker.timeout",
		"breaker_min_requests":  "breaker.min_requests",
		"breaker_failure_ratio": "breaker.failure_ratio",
	}
	out := make(map[string]string, len(fields))
	for envSuffix, key := range fields {
		out[envPrefix+"_"+envSuffix] = path + "." + key
	}
	return out
}

var envMappings = func() map[string]string {
	m := map[string]string{
		// Server mappings
		"http_host":             "server.host",
		"http_port":             "server.port",
		"http_read_timeout":     "server.read_timeout",
		"http_write_timeout":    "server.write_timeout",
		"http_idle_timeout":     "server.idle_timeout",
		"http_shutdown_timeout": "server.shutdown_timeout",
		"environment":           "server.environment",

		// Preference store mappings
		"preferences_store":              "preferences.store",
		"preferences_badger_path":        "preferences.badger_path",
		"preferences_badger_gc_interval": "preferences.badger_gc_interval",

		// Enrichment mappings
		"enrich_max_concurrency": "enrichment.max_concurrency",
		"enrich_lookup_timeout":  "enrichment.lookup_timeout",
		"enrich_fallback_title":  "enrichment.fallback_title",

		// Quiz mappings
		"quiz_question_count":       "quiz.question_count",
		"quiz_options_per_question": "quiz.options_per_question",
		"quiz_session_ttl":          "quiz.session_ttl",
		"quiz_bank_path":            "quiz.bank_path",

		// Recommendation mappings
		"recommend_top_k":            "recommend.top_k",
		"recommend_cache_ttl":        "recommend.catalog_cache_ttl",
		"recommend_refresh_interval": "recommend.refresh_interval",

		// Security mappings
		"cors_origins":        "security.cors_origins",
		"rate_limit_requests": "security.rate_limit_reqs",
		"rate_limit_window":   "security.rate_limit_window",
		"disable_rate_limit":  "security.rate_limit_disabled",
		"user_id_header":      "security.user_id_header",
		"role_header":         "security.role_header",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",
	}
	for _, section := range []map[string]string{
		backendEnvMappings("catalog", "catalog"),
		backendEnvMappings("reservations", "reservations"),
		backendEnvMappings("preferences", "preferences.http"),
	} {
		for k, v := range section {
			m[k] = v
		}
	}
	return m
}()

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - CATALOG_URL -> catalog.url
//   - PREFERENCES_URL -> preferences.http.url
//   - ENRICH_LOOKUP_TIMEOUT -> enrichment.lookup_timeout
//
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
