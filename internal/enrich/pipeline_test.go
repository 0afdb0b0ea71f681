// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package enrich

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/senderos/internal/models"
)

func reservations(ids ...string) []models.Reservation {
	out := make([]models.Reservation, len(ids))
	for i, id := range ids {
		out[i] = models.Reservation{ReservationID: fmt.Sprintf("r%d", i), ServiceID: id}
	}
	return out
}

// mapLookup resolves services from a fixed map; unknown ids return an error.
func mapLookup(services map[string]*models.Service) LookupFunc {
	return func(_ context.Context, id string) (*models.Service, error) {
		if svc, ok := services[id]; ok {
			return svc, nil
		}
		return nil, errors.New("lookup failed")
	}
}

func TestEnrichOrderAndFallback(t *testing.T) {
	t.Parallel()

	p := New(Config{})
	lookup := mapLookup(map[string]*models.Service{
		"s1": {ServiceID: "s1", Title: "Buceo", Images: []string{"b1.jpg", "b2.jpg"}},
		"s3": {ServiceID: "s3", Title: "Cenote"},
	})

	in := reservations("s1", "s2", "s3", "s1")
	out, stats := p.Enrich(context.Background(), in, lookup)

	if len(out) != len(in) {
		t.Fatalf("len(out) = %d, want %d", len(out), len(in))
	}

	want := []struct {
		title    string
		image    string
		resolved bool
	}{
		{"Buceo", "b1.jpg", true},
		{DefaultFallbackTitle, "", false},
		{"Cenote", "", true},
		{"Buceo", "b1.jpg", true},
	}
	for i, w := range want {
		if out[i].ReservationID != in[i].ReservationID {
			t.Errorf("out[%d] is reservation %s, want %s", i, out[i].ReservationID, in[i].ReservationID)
		}
		if out[i].ServiceTitle != w.title || out[i].ServiceImage != w.image || out[i].Resolved != w.resolved {
			t.Errorf("out[%d] = {%q %q %v}, want {%q %q %v}", i,
				out[i].ServiceTitle, out[i].ServiceImage, out[i].Resolved, w.title, w.image, w.resolved)
		}
	}

	if stats.Total != 4 || stats.Resolved != 3 || stats.Fallback != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Outcomes[OutcomeFailed] != 1 {
		t.Errorf("failed outcomes = %d, want 1", stats.Outcomes[OutcomeFailed])
	}
}

func TestEnrichEmpty(t *testing.T) {
	t.Parallel()

	out, stats := New(Config{}).Enrich(context.Background(), nil, mapLookup(nil))
	if out == nil || len(out) != 0 {
		t.Errorf("Enrich(nil) = %v, want empty non-nil slice", out)
	}
	if stats.Total != 0 {
		t.Errorf("stats.Total = %d", stats.Total)
	}
}

func TestEnrichFailureKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		lookup  LookupFunc
		outcome string
	}{
		{
			name:    "error",
			lookup:  func(context.Context, string) (*models.Service, error) { return nil, errors.New("boom") },
			outcome: OutcomeFailed,
		},
		{
			name:    "nil service",
			lookup:  func(context.Context, string) (*models.Service, error) { return nil, nil },
			outcome: OutcomeMissing,
		},
		{
			name:    "panic",
			lookup:  func(context.Context, string) (*models.Service, error) { panic("lookup exploded") },
			outcome: OutcomePanic,
		},
		{
			name:    "nil lookup",
			lookup:  nil,
			outcome: OutcomeMissing,
		},
		{
			name: "respects timeout",
			lookup: func(ctx context.Context, _ string) (*models.Service, error) {
				<-ctx.Done()
				return nil, ctx.Err()
			},
			outcome: OutcomeTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := New(Config{LookupTimeout: 20 * time.Millisecond, FallbackTitle: "N/D"})

			out, stats := p.Enrich(context.Background(), reservations("s1", "s2"), tt.lookup)

			for i := range out {
				if out[i].Resolved || out[i].ServiceTitle != "N/D" || out[i].ServiceImage != "" {
					t.Errorf("out[%d] = %+v, want fallback", i, out[i])
				}
			}
			if stats.Outcomes[tt.outcome] != 2 {
				t.Errorf("outcomes = %v, want 2 x %s", stats.Outcomes, tt.outcome)
			}
		})
	}
}

func TestEnrichTimeoutWithUncooperativeLookup(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	// The lookup ignores its context entirely.
	lookup := func(context.Context, string) (*models.Service, error) {
		<-release
		return &models.Service{Title: "late"}, nil
	}

	p := New(Config{LookupTimeout: 20 * time.Millisecond})
	start := time.Now()
	out, stats := p.Enrich(context.Background(), reservations("s1", "s2", "s3"), lookup)

	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("Enrich took %v; timeout not enforced", elapsed)
	}
	if stats.Outcomes[OutcomeTimeout] != 3 {
		t.Errorf("outcomes = %v, want 3 timeouts", stats.Outcomes)
	}
	for i := range out {
		if out[i].Resolved {
			t.Errorf("out[%d] resolved after timeout", i)
		}
	}
}

func TestEnrichConcurrencyCap(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	lookup := func(_ context.Context, id string) (*models.Service, error) {
		n := inFlight.Add(1)
		for {
			old := peak.Load()
			if n <= old || peak.CompareAndSwap(old, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return &models.Service{ServiceID: id, Title: id}, nil
	}

	ids := make([]string, 40)
	for i := range ids {
		ids[i] = fmt.Sprintf("s%d", i)
	}

	p := New(Config{MaxConcurrency: 3})
	out, stats := p.Enrich(context.Background(), reservations(ids...), lookup)

	if got := peak.Load(); got > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", got)
	}
	if stats.Resolved != 40 {
		t.Errorf("resolved = %d, want 40", stats.Resolved)
	}
	for i := range out {
		if out[i].ServiceTitle != ids[i] {
			t.Errorf("out[%d].ServiceTitle = %q, want %q", i, out[i].ServiceTitle, ids[i])
		}
	}
}

func TestEnrichCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	lookup := func(ctx context.Context, _ string) (*models.Service, error) {
		if calls.Add(1) == 1 {
			cancel()
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}

	p := New(Config{MaxConcurrency: 1})
	out, stats := p.Enrich(ctx, reservations("s1", "s2", "s3", "s4"), lookup)

	if len(out) != 4 {
		t.Fatalf("len(out) = %d, want 4", len(out))
	}
	if !stats.Cancelled {
		t.Error("stats.Cancelled = false")
	}
	if stats.Resolved != 0 || stats.Outcomes[OutcomeCancelled] != 4 {
		t.Errorf("stats = %+v, want 4 cancelled", stats)
	}
}

func TestEnrichEmptyTitleUsesFallback(t *testing.T) {
	t.Parallel()

	lookup := func(context.Context, string) (*models.Service, error) {
		return &models.Service{ServiceID: "s1", Images: []string{"x.jpg"}}, nil
	}
	out, _ := New(Config{}).Enrich(context.Background(), reservations("s1"), lookup)

	if !out[0].Resolved || out[0].ServiceTitle != DefaultFallbackTitle || out[0].ServiceImage != "x.jpg" {
		t.Errorf("out[0] = %+v", out[0])
	}
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	p := New(Config{})
	if p.MaxConcurrency() != DefaultMaxConcurrency {
		t.Errorf("MaxConcurrency() = %d", p.MaxConcurrency())
	}
	if p.FallbackTitle() != "Título no disponible" {
		t.Errorf("FallbackTitle() = %q", p.FallbackTitle())
	}
	if p.lookupTimeout != DefaultLookupTimeout {
		t.Errorf("lookupTimeout = %v", p.lookupTimeout)
	}
}
