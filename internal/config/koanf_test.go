// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// Tests in this file mutate the process environment and must not run in parallel.

// setRequiredEnv sets the minimum environment for a valid configuration.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("CATALOG_URL", "https://api.example.com/dev")
	t.Setenv("RESERVATIONS_URL", "https://api.example.com/dev")
	t.Setenv("PREFERENCES_URL", "https://api.example.com/dev")
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Enrichment.MaxConcurrency != 8 {
		t.Errorf("Enrichment.MaxConcurrency = %d, want 8", cfg.Enrichment.MaxConcurrency)
	}
	if cfg.Enrichment.LookupTimeout != 5*time.Second {
		t.Errorf("Enrichment.LookupTimeout = %v, want 5s", cfg.Enrichment.LookupTimeout)
	}
	if cfg.Enrichment.FallbackTitle != "Título no disponible" {
		t.Errorf("Enrichment.FallbackTitle = %q", cfg.Enrichment.FallbackTitle)
	}
	if cfg.Quiz.QuestionCount != 3 || cfg.Quiz.OptionsPerQuestion != 4 {
		t.Errorf("Quiz = %+v, want 3 questions x 4 options", cfg.Quiz)
	}
	if cfg.Recommend.TopK != 4 {
		t.Errorf("Recommend.TopK = %d, want 4", cfg.Recommend.TopK)
	}
	if cfg.Preferences.Store != PreferenceStoreRemote {
		t.Errorf("Preferences.Store = %q, want remote", cfg.Preferences.Store)
	}
	if cfg.Catalog.Breaker.FailureRatio != 0.6 || cfg.Catalog.Breaker.MinRequests != 10 {
		t.Errorf("Catalog.Breaker = %+v", cfg.Catalog.Breaker)
	}
	if cfg.Catalog.URL != "" {
		t.Errorf("Catalog.URL should be empty by default, got %q", cfg.Catalog.URL)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"ENVIRONMENT", "server.environment"},
		{"CATALOG_URL", "catalog.url"},
		{"CATALOG_BREAKER_FAILURE_RATIO", "catalog.breaker.failure_ratio"},
		{"RESERVATIONS_RATE_LIMIT", "reservations.rate_limit"},
		{"PREFERENCES_URL", "preferences.http.url"},
		{"PREFERENCES_STORE", "preferences.store"},
		{"ENRICH_MAX_CONCURRENCY", "enrichment.max_concurrency"},
		{"QUIZ_SESSION_TTL", "quiz.session_ttl"},
		{"RECOMMEND_TOP_K", "recommend.top_k"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9000\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}
}

func TestLoadEnvVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENRICH_MAX_CONCURRENCY", "16")
	t.Setenv("ENRICH_LOOKUP_TIMEOUT", "2s")
	t.Setenv("CATALOG_RATE_LIMIT", "5.5")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Enrichment.MaxConcurrency != 16 {
		t.Errorf("Enrichment.MaxConcurrency = %d, want 16", cfg.Enrichment.MaxConcurrency)
	}
	if cfg.Enrichment.LookupTimeout != 2*time.Second {
		t.Errorf("Enrichment.LookupTimeout = %v, want 2s", cfg.Enrichment.LookupTimeout)
	}
	if cfg.Catalog.RateLimit != 5.5 {
		t.Errorf("Catalog.RateLimit = %v, want 5.5", cfg.Catalog.RateLimit)
	}
	if cfg.Preferences.HTTP.URL != "https://api.example.com/dev" {
		t.Errorf("Preferences.HTTP.URL = %q", cfg.Preferences.HTTP.URL)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}

	// Defaults survive for unset values.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Reservations.Breaker.Timeout != 30*time.Second {
		t.Errorf("Reservations.Breaker.Timeout = %v, want 30s (default)", cfg.Reservations.Breaker.Timeout)
	}
}

func TestLoadConfigFile(t *testing.T) {
	configContent := `
server:
  port: 8888
  environment: production
catalog:
  url: "https://catalog.example.com/dev"
  breaker:
    min_requests: 20
reservations:
  url: "https://reservations.example.com/dev"
preferences:
  store: badger
  badger_path: /tmp/senderos-prefs
quiz:
  question_count: 5
logging:
  level: warn
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8888 || !cfg.IsProduction() {
		t.Errorf("Server = %+v", cfg.Server)
	}
	if cfg.Catalog.URL != "https://catalog.example.com/dev" {
		t.Errorf("Catalog.URL = %q", cfg.Catalog.URL)
	}
	if cfg.Catalog.Breaker.MinRequests != 20 {
		t.Errorf("Catalog.Breaker.MinRequests = %d, want 20", cfg.Catalog.Breaker.MinRequests)
	}
	if cfg.Catalog.Breaker.FailureRatio != 0.6 {
		t.Errorf("Catalog.Breaker.FailureRatio = %v, want 0.6 (default)", cfg.Catalog.Breaker.FailureRatio)
	}
	if cfg.Preferences.Store != PreferenceStoreBadger || cfg.Preferences.BadgerPath != "/tmp/senderos-prefs" {
		t.Errorf("Preferences = %+v", cfg.Preferences)
	}
	if cfg.Quiz.QuestionCount != 5 {
		t.Errorf("Quiz.QuestionCount = %d, want 5", cfg.Quiz.QuestionCount)
	}
	if cfg.Server.Addr() != "0.0.0.0:8888" {
		t.Errorf("Addr = %q", cfg.Server.Addr())
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "catalog:\n  url: https://file.example.com\nreservations:\n  url: https://file.example.com\npreferences:\n  store: memory\nlogging:\n  level: warn\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("CATALOG_URL", "https://env.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env wins)", cfg.Logging.Level)
	}
	if cfg.Catalog.URL != "https://env.example.com" {
		t.Errorf("Catalog.URL = %q, want env value", cfg.Catalog.URL)
	}
	if cfg.Reservations.URL != "https://file.example.com" {
		t.Errorf("Reservations.URL = %q, want file value", cfg.Reservations.URL)
	}
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{"missing catalog url", map[string]string{"CATALOG_URL": ""}, "CATALOG_URL is required"},
		{"bad scheme", map[string]string{"RESERVATIONS_URL": "ftp://example.com"}, "RESERVATIONS_URL is invalid"},
		{"query in url", map[string]string{"CATALOG_URL": "https://example.com/dev?x=1"}, "query parameters"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "level must be one of"},
		{"bad store", map[string]string{"PREFERENCES_STORE": "redis"}, "store must be one of"},
		{"concurrency zero", map[string]string{"ENRICH_MAX_CONCURRENCY": "0"}, "max_concurrency must be at least 1"},
		{"negative timeout", map[string]string{"ENRICH_LOOKUP_TIMEOUT": "-1s"}, "ENRICH_LOOKUP_TIMEOUT must be positive"},
		{"failure ratio", map[string]string{"CATALOG_BREAKER_FAILURE_RATIO": "1.5"}, "failure_ratio"},
		{"remote prefs without url", map[string]string{"PREFERENCES_URL": ""}, "PREFERENCES_URL is required"},
		{"rate limit zero", map[string]string{"RATE_LIMIT_REQUESTS": "0"}, "RATE_LIMIT_REQUESTS must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMemoryStoreNeedsNoPreferenceURL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PREFERENCES_URL", "")
	t.Setenv("PREFERENCES_STORE", "memory")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Preferences.Store != PreferenceStoreMemory {
		t.Errorf("Preferences.Store = %q", cfg.Preferences.Store)
	}
}
