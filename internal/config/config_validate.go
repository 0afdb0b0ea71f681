// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/tomtom215/senderos/internal/validation"
)

// Validate checks struct tag constraints first, then cross-field rules.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	validators := []func() error{
		c.validateServer,
		c.validateBackends,
		c.validatePreferences,
		c.validateEnrichment,
		c.validateQuiz,
		c.validateSecurity,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	return requirePositive(map[string]time.Duration{
		"HTTP_READ_TIMEOUT":     c.Server.ReadTimeout,
		"HTTP_WRITE_TIMEOUT":    c.Server.WriteTimeout,
		"HTTP_SHUTDOWN_TIMEOUT": c.Server.ShutdownTimeout,
	})
}

func (c *Config) validateBackends() error {
	if err := validateBackend("CATALOG", &c.Catalog, true); err != nil {
		return err
	}
	return validateBackend("RESERVATIONS", &c.Reservations, true)
}

func (c *Config) validatePreferences() error {
	switch c.Preferences.Store {
	case PreferenceStoreRemote:
		return validateBackend("PREFERENCES", &c.Preferences.HTTP, true)
	case PreferenceStoreBadger:
		if c.Preferences.BadgerPath == "" {
			return fmt.Errorf("PREFERENCES_BADGER_PATH is required when PREFERENCES_STORE=badger")
		}
		if c.Preferences.BadgerGCInterval < 0 {
			return fmt.Errorf("PREFERENCES_BADGER_GC_INTERVAL must not be negative")
		}
	}
	return nil
}

func (c *Config) validateEnrichment() error {
	return requirePositive(map[string]time.Duration{
		"ENRICH_LOOKUP_TIMEOUT": c.Enrichment.LookupTimeout,
	})
}

func (c *Config) validateQuiz() error {
	if err := requirePositive(map[string]time.Duration{
		"QUIZ_SESSION_TTL": c.Quiz.SessionTTL,
	}); err != nil {
		return err
	}
	if c.Recommend.CatalogCacheTTL < 0 || c.Recommend.RefreshInterval < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL and RECOMMEND_REFRESH_INTERVAL must not be negative")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive unless DISABLE_RATE_LIMIT=true")
	}
	return requirePositive(map[string]time.Duration{
		"RATE_LIMIT_WINDOW": c.Security.RateLimitWindow,
	})
}

// validateBackend checks a backend section. envPrefix names the section in
// error messages the way operators set it.
func validateBackend(envPrefix string, b *BackendConfig, required bool) error {
	if b.URL == "" {
		if required {
			return fmt.Errorf("%s_URL is required", envPrefix)
		}
		return nil
	}
	if err := validateBaseURL(b.URL); err != nil {
		return fmt.Errorf("%s_URL is invalid: %w", envPrefix, err)
	}
	return requirePositive(map[string]time.Duration{
		envPrefix + "_TIMEOUT":          b.Timeout,
		envPrefix + "_RETRY_BASE_DELAY": b.RetryBaseDelay,
		envPrefix + "_BREAKER_INTERVAL": b.Breaker.Interval,
		envPrefix + "_BREAKER_TIMEOUT":  b.Breaker.Timeout,
	})
}

// validateBaseURL accepts http(s) URLs with an optional path prefix (API
// gateways commonly mount a stage such as /dev) and no query string.
func validateBaseURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got: %s", parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("host is required")
	}
	if parsed.RawQuery != "" {
		return fmt.Errorf("should not contain query parameters, remove: ?%s", parsed.RawQuery)
	}
	return nil
}

func requirePositive(durations map[string]time.Duration) error {
	for name, d := range durations {
		if d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}
	return nil
}
