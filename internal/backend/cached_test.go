// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package backend

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/senderos/internal/models"
)

type fakeCatalog struct {
	services  []models.Service
	allErr    error
	allCalls  atomic.Int32
	byIDCalls atomic.Int32
}

func (f *fakeCatalog) GetAllServices(context.Context) ([]models.Service, error) {
	f.allCalls.Add(1)
	if f.allErr != nil {
		return nil, f.allErr
	}
	return copyServices(f.services), nil
}

func (f *fakeCatalog) GetServiceByID(_ context.Context, id string) (*models.Service, error) {
	f.byIDCalls.Add(1)
	for i := range f.services {
		if f.services[i].ServiceID == id {
			s := copyService(f.services[i])
			return &s, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeCatalog) GetServicesByProvider(context.Context, string) ([]models.Service, error) {
	return nil, nil
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{services: []models.Service{
		{ServiceID: "s1", Title: "Kayak", Images: []string{"k.jpg"}},
		{ServiceID: "s2", Title: "Aves"},
	}}
}

func TestCachedCatalogGetAllServices(t *testing.T) {
	t.Parallel()

	inner := newFakeCatalog()
	c := NewCachedCatalog(inner, time.Minute)
	t.Cleanup(c.Close)
	ctx := context.Background()

	first, err := c.GetAllServices(ctx)
	if err != nil {
		t.Fatalf("GetAllServices() error = %v", err)
	}
	first[0].Title = "mutated"
	first[0].Images[0] = "mutated.jpg"

	second, err := c.GetAllServices(ctx)
	if err != nil {
		t.Fatalf("GetAllServices() error = %v", err)
	}
	if inner.allCalls.Load() != 1 {
		t.Errorf("inner calls = %d, want 1", inner.allCalls.Load())
	}
	if second[0].Title != "Kayak" || second[0].Images[0] != "k.jpg" {
		t.Errorf("cached copy was mutated: %+v", second[0])
	}
}

func TestCachedCatalogSeedsLookups(t *testing.T) {
	t.Parallel()

	inner := newFakeCatalog()
	c := NewCachedCatalog(inner, time.Minute)
	t.Cleanup(c.Close)
	ctx := context.Background()

	if _, err := c.GetAllServices(ctx); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		svc, err := c.GetServiceByID(ctx, "s2")
		if err != nil || svc.Title != "Aves" {
			t.Fatalf("GetServiceByID() = %+v, %v", svc, err)
		}
	}
	if inner.byIDCalls.Load() != 0 {
		t.Errorf("inner lookups = %d, want 0", inner.byIDCalls.Load())
	}
}

func TestCachedCatalogLookupMisses(t *testing.T) {
	t.Parallel()

	inner := newFakeCatalog()
	c := NewCachedCatalog(inner, time.Minute)
	t.Cleanup(c.Close)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := c.GetServiceByID(ctx, "s1"); err != nil {
			t.Fatal(err)
		}
	}
	if inner.byIDCalls.Load() != 1 {
		t.Errorf("inner lookups = %d, want 1", inner.byIDCalls.Load())
	}

	for i := 0; i < 2; i++ {
		if _, err := c.GetServiceByID(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("error = %v, want ErrNotFound", err)
		}
	}
	if inner.byIDCalls.Load() != 3 {
		t.Errorf("not-found results should not be cached, inner lookups = %d", inner.byIDCalls.Load())
	}
}

func TestCachedCatalogRefreshKeepsOldCopyOnError(t *testing.T) {
	t.Parallel()

	inner := newFakeCatalog()
	c := NewCachedCatalog(inner, time.Minute)
	t.Cleanup(c.Close)
	ctx := context.Background()

	if _, err := c.Refresh(ctx); err != nil {
		t.Fatal(err)
	}

	inner.allErr = ErrUnavailable
	if _, err := c.Refresh(ctx); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Refresh() error = %v, want ErrUnavailable", err)
	}

	services, err := c.GetAllServices(ctx)
	if err != nil || len(services) != 2 {
		t.Errorf("GetAllServices() = %d services, %v; want cached copy", len(services), err)
	}
}
