// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package backend

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestClientRetriesOnRateLimit(t *testing.T) {
	t.Parallel()

	srv, hits := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ping" {
			t.Errorf("path = %s, want /ping", r.URL.Path)
		}
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	c := NewClient("test-retry", testBackendConfig(srv.URL))
	_, err := c.get(context.Background(), "ping", "/ping", nil)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("get() error = %v, want 429 StatusError", err)
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("exhausted 429 should wrap ErrUnavailable, got %v", err)
	}
	if got := hits.Load(); got != 3 {
		t.Errorf("server hits = %d, want 3 (1 + 2 retries)", got)
	}
}

func TestClientRecoversAfterRateLimit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv, _ := countingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		writeJSON(w, http.StatusOK, `{"ok":true}`)
	})

	c := NewClient("test-recover", testBackendConfig(srv.URL))
	data, err := c.get(context.Background(), "ping", "/ping", nil)
	if err != nil {
		t.Fatalf("get() error = %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Errorf("get() = %s", data)
	}
}

func TestClientStatusErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{name: "not found", status: http.StatusNotFound, body: "missing", sentinel: ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, body: "boom", sentinel: ErrUnavailable},
		{name: "bad gateway", status: http.StatusBadGateway, sentinel: ErrUnavailable},
		{name: "envelope 404", status: http.StatusOK, body: `{"statusCode":404,"body":"{\"message\":\"no\"}"}`, sentinel: ErrNotFound},
		{name: "envelope 500", status: http.StatusOK, body: `{"statusCode":500,"body":"oops"}`, sentinel: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv, _ := countingServer(t, func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.status, tt.body)
			})

			c := NewClient("test-status-"+strings.ReplaceAll(tt.name, " ", "-"), testBackendConfig(srv.URL))
			_, err := c.get(context.Background(), "op", "/x", nil)
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("error = %v, want %v", err, tt.sentinel)
			}
			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("error %v is not a *StatusError", err)
			}
			if statusErr.Backend == "" || statusErr.Operation != "op" {
				t.Errorf("StatusError = %+v, want backend and operation set", statusErr)
			}
		})
	}
}

func TestClientTransportErrorIsUnavailable(t *testing.T) {
	t.Parallel()

	srv, _ := countingServer(t, func(http.ResponseWriter, *http.Request) {})
	url := srv.URL
	srv.Close()

	c := NewClient("test-transport", testBackendConfig(url))
	_, err := c.get(context.Background(), "op", "/x", nil)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}

func TestClientCancelDuringBackoff(t *testing.T) {
	t.Parallel()

	srv, _ := countingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	})

	c := NewClient("test-cancel", testBackendConfig(srv.URL))
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.get(ctx, "op", "/x", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("backoff wait was not cancelled")
	}
}

func TestClientBreakerOpens(t *testing.T) {
	t.Parallel()

	srv, hits := countingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusInternalServerError, "down")
	})

	cfg := testBackendConfig(srv.URL)
	cfg.MaxRetries = 0
	cfg.Breaker.MinRequests = 2
	cfg.Breaker.FailureRatio = 0.5
	c := NewClient("test-breaker-opens", cfg)

	for i := 0; i < 2; i++ {
		if _, err := c.get(context.Background(), "op", "/x", nil); !errors.Is(err, ErrUnavailable) {
			t.Fatalf("call %d error = %v, want ErrUnavailable", i, err)
		}
	}

	if !c.BreakerOpen() {
		t.Fatal("breaker should be open after 2 failures")
	}

	_, err := c.get(context.Background(), "op", "/x", nil)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Errorf("error = %v, want ErrCircuitOpen", err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server hits = %d, want 2 (third call rejected)", got)
	}
}

func TestClientNotFoundDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	srv, _ := countingServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, "")
	})

	cfg := testBackendConfig(srv.URL)
	cfg.Breaker.MinRequests = 2
	cfg.Breaker.FailureRatio = 0.5
	c := NewClient("test-breaker-404", cfg)

	for i := 0; i < 5; i++ {
		if _, err := c.get(context.Background(), "op", "/x", nil); !errors.Is(err, ErrNotFound) {
			t.Fatalf("call %d error = %v, want ErrNotFound", i, err)
		}
	}
	if c.BreakerOpen() {
		t.Error("404 responses must not open the breaker")
	}
}

func TestClientPostJSON(t *testing.T) {
	t.Parallel()

	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r.Body)
		if buf.String() != `{"a":1}` {
			t.Errorf("body = %s", buf.String())
		}
		writeJSON(w, http.StatusCreated, `{}`)
	})

	c := NewClient("test-post", testBackendConfig(srv.URL))
	if _, err := c.postJSON(context.Background(), "op", "/x", map[string]int{"a": 1}); err != nil {
		t.Fatalf("postJSON() error = %v", err)
	}
}

func TestReadBodyForError(t *testing.T) {
	t.Parallel()

	short := readBodyForError(strings.NewReader("short"))
	if string(short) != "short" {
		t.Errorf("readBodyForError(short) = %q", short)
	}

	long := readBodyForError(strings.NewReader(strings.Repeat("x", maxErrorBodySize+100)))
	if !bytes.HasSuffix(long, []byte("(truncated)")) {
		t.Error("long body should be marked truncated")
	}
	if len(long) > maxErrorBodySize+32 {
		t.Errorf("len = %d, exceeds limit", len(long))
	}
}

func TestStatusErrorMessage(t *testing.T) {
	t.Parallel()

	err := &StatusError{Backend: "catalog", Operation: "get_service", StatusCode: 503}
	if got := err.Error(); got != "catalog get_service: status 503" {
		t.Errorf("Error() = %q", got)
	}
	err.Body = "busy"
	if got := err.Error(); got != "catalog get_service: status 503: busy" {
		t.Errorf("Error() = %q", got)
	}
}
