// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/senderos/internal/config"
	"github.com/tomtom215/senderos/internal/logging"
	"github.com/tomtom215/senderos/internal/metrics"
)

const (
	// maxErrorBodySize limits how much of an error response is kept.
	maxErrorBodySize = 64 * 1024

	// maxResponseSize limits successful payloads. The full catalog is the
	// largest response and stays well below this.
	maxResponseSize = 32 * 1024 * 1024
)

// readBodyForError reads at most 64KB of r for error reporting.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// Client performs paced, retried and breaker-guarded HTTP calls against one
// backend. The typed clients in this package are thin wrappers around it.
type Client struct {
	name           string
	baseURL        string
	httpClient     *http.Client
	limiter        *rate.Limiter
	maxRetries     int
	retryBaseDelay time.Duration
	breaker        *breaker
}

// NewClient creates a client for the backend called name. A zero
// cfg.RateLimit disables outbound pacing.
func NewClient(name string, cfg *config.BackendConfig) *Client {
	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		name:           name,
		baseURL:        strings.TrimRight(cfg.URL, "/"),
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		limiter:        limiter,
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: cfg.RetryBaseDelay,
		breaker:        newBreaker(name, cfg.Breaker),
	}
}

// Name returns the backend name used in logs and metrics.
func (c *Client) Name() string {
	return c.name
}

// BreakerOpen reports whether the circuit breaker currently rejects calls.
func (c *Client) BreakerOpen() bool {
	return c.breaker.open()
}

// get issues a GET request and returns the raw payload.
func (c *Client) get(ctx context.Context, operation, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, operation, http.MethodGet, path, query, nil)
}

// postJSON issues a POST request with payload encoded as JSON.
func (c *Client) postJSON(ctx context.Context, operation, path string, payload interface{}) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s %s: encode request: %w", c.name, operation, err)
	}
	return c.do(ctx, operation, http.MethodPost, path, nil, body)
}

func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body []byte) ([]byte, error) {
	start := time.Now()

	data, err := c.breaker.execute(func() ([]byte, error) {
		return c.roundTrip(ctx, operation, method, path, query, body)
	})

	metrics.RecordBackendRequest(c.name, operation, outcome(err), time.Since(start))
	if err != nil && !errors.Is(err, ErrNotFound) && !errors.Is(err, context.Canceled) {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("backend", c.name).
			Str("operation", operation).
			Dur("elapsed", time.Since(start)).
			Msg("Backend request failed")
	}
	return data, err
}

// roundTrip executes one logical request, retrying on HTTP 429 with
// exponential backoff (base, 2*base, 4*base, ...) unless the backend sends a
// Retry-After header in seconds.
func (c *Client) roundTrip(ctx context.Context, operation, method, path string, query url.Values, body []byte) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, c.contextError(ctx, operation, err)
			}
		}

		var reader io.Reader = http.NoBody
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
		if err != nil {
			return nil, fmt.Errorf("%s %s: create request: %w", c.name, operation, err)
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, c.contextError(ctx, operation, ctx.Err())
			}
			return nil, fmt.Errorf("%s %s: %w: %w", c.name, operation, ErrUnavailable, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			retryAfter := resp.Header.Get("Retry-After")
			resp.Body.Close()

			if attempt == c.maxRetries {
				return nil, &StatusError{
					Backend:    c.name,
					Operation:  operation,
					StatusCode: resp.StatusCode,
					Body:       fmt.Sprintf("rate limit exceeded after %d retries", c.maxRetries),
				}
			}

			retryDelay := c.retryBaseDelay * (1 << attempt)
			if retryAfter != "" {
				if seconds, err := strconv.Atoi(strings.TrimSpace(retryAfter)); err == nil && seconds >= 0 {
					retryDelay = time.Duration(seconds) * time.Second
				}
			}

			metrics.BackendRateLimitRetries.WithLabelValues(c.name).Inc()
			logging.Ctx(ctx).Warn().
				Str("backend", c.name).
				Dur("retry_delay", retryDelay).
				Int("attempt", attempt+1).
				Int("max_retries", c.maxRetries).
				Msg("Backend rate limited (HTTP 429), retrying")

			select {
			case <-ctx.Done():
				return nil, c.contextError(ctx, operation, ctx.Err())
			case <-time.After(retryDelay):
			}
			continue
		}

		return c.readResponse(resp, operation)
	}

	return nil, fmt.Errorf("%s %s: unreachable: retry loop exited", c.name, operation)
}

func (c *Client) readResponse(resp *http.Response, operation string) ([]byte, error) {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Backend:    c.name,
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       string(readBodyForError(resp.Body)),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%s %s: read response: %w: %w", c.name, operation, ErrUnavailable, err)
	}

	// Lambda proxy responses can report an error status inside a 200.
	if status := envelopeStatus(data); status >= 300 {
		return nil, &StatusError{
			Backend:    c.name,
			Operation:  operation,
			StatusCode: status,
			Body:       string(truncate(data, maxErrorBodySize)),
		}
	}

	return data, nil
}

// contextError wraps a context error. Deadlines count as the backend being
// unavailable; cancellation is passed through untouched.
func (c *Client) contextError(ctx context.Context, operation string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w: %w", c.name, operation, ErrUnavailable, err)
	}
	return fmt.Errorf("%s %s: %w", c.name, operation, err)
}

func (c *Client) malformed(operation string, err error) error {
	return fmt.Errorf("%s %s: %w: %w", c.name, operation, ErrMalformed, err)
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
