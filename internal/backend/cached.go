// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package backend

import (
	"context"
	"time"

	"github.com/tomtom215/senderos/internal/cache"
	"github.com/tomtom215/senderos/internal/metrics"
	"github.com/tomtom215/senderos/internal/models"
)

const allServicesKey = "all"

// CachedCatalog decorates a Catalog with TTL caches for the full listing
// and for single-service lookups. A full listing also seeds the per-service
// cache. Provider listings are not cached.
//
// Cached values are copied on the way out so callers may mutate them.
type CachedCatalog struct {
	inner Catalog
	all   *cache.Cache[[]models.Service]
	byID  *cache.Cache[models.Service]
}

var _ Catalog = (*CachedCatalog)(nil)

// NewCachedCatalog wraps inner with caches whose entries live for ttl.
func NewCachedCatalog(inner Catalog, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{
		inner: inner,
		all:   cache.New[[]models.Service](ttl),
		byID:  cache.New[models.Service](ttl),
	}
}

// Close stops the cache sweepers.
func (c *CachedCatalog) Close() {
	c.all.Close()
	c.byID.Close()
}

// BreakerOpen reports the breaker state of the wrapped catalog, if any.
func (c *CachedCatalog) BreakerOpen() bool {
	if r, ok := c.inner.(StateReporter); ok {
		return r.BreakerOpen()
	}
	return false
}

// GetAllServices returns the cached catalog or loads it.
func (c *CachedCatalog) GetAllServices(ctx context.Context) ([]models.Service, error) {
	if services, ok := c.all.Get(allServicesKey); ok {
		metrics.RecordCatalogCache(true)
		return copyServices(services), nil
	}
	metrics.RecordCatalogCache(false)
	return c.Refresh(ctx)
}

// Refresh loads the catalog from the backend unconditionally and replaces
// the cached copy. On error the previous copy is kept.
func (c *CachedCatalog) Refresh(ctx context.Context) ([]models.Service, error) {
	services, err := c.inner.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}

	c.all.Set(allServicesKey, copyServices(services))
	for i := range services {
		if id := services[i].ServiceID; id != "" {
			c.byID.Set(id, copyService(services[i]))
		}
	}
	return services, nil
}

// GetServiceByID returns the cached service or loads it. Misses are not
// cached.
func (c *CachedCatalog) GetServiceByID(ctx context.Context, serviceID string) (*models.Service, error) {
	if svc, ok := c.byID.Get(serviceID); ok {
		metrics.RecordCatalogCache(true)
		out := copyService(svc)
		return &out, nil
	}
	metrics.RecordCatalogCache(false)

	svc, err := c.inner.GetServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	c.byID.Set(serviceID, copyService(*svc))
	return svc, nil
}

// GetServicesByProvider passes through to the wrapped catalog.
func (c *CachedCatalog) GetServicesByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	return c.inner.GetServicesByProvider(ctx, providerID)
}

func copyService(s models.Service) models.Service {
	if s.Images != nil {
		s.Images = append([]string(nil), s.Images...)
	}
	return s
}

func copyServices(in []models.Service) []models.Service {
	out := make([]models.Service, len(in))
	for i := range in {
		out[i] = copyService(in[i])
	}
	return out
}
