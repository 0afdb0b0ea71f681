// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package backend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tomtom215/senderos/internal/config"
	"github.com/tomtom215/senderos/internal/models"
)

// CatalogClient reads the service catalog backend.
//
//	GET /getallservices                 -> {"servicios": [...]}
//	GET /service?ServiceID=<id>         -> {"servicio": {...}} or the bare object
//	GET /get-by-provider?providerId=<id> -> {"servicios": [...]}
type CatalogClient struct {
	client *Client
}

var _ Catalog = (*CatalogClient)(nil)

// NewCatalogClient creates a catalog client from configuration.
func NewCatalogClient(cfg *config.BackendConfig) *CatalogClient {
	return &CatalogClient{client: NewClient("catalog", cfg)}
}

// BreakerOpen reports whether the catalog circuit breaker is open.
func (c *CatalogClient) BreakerOpen() bool {
	return c.client.BreakerOpen()
}

// GetAllServices returns the full catalog in backend order.
func (c *CatalogClient) GetAllServices(ctx context.Context) ([]models.Service, error) {
	const op = "get_all_services"

	data, err := c.client.get(ctx, op, "/getallservices", nil)
	if err != nil {
		return nil, err
	}
	services, err := decodeList[models.Service](data, "servicios")
	if err != nil {
		return nil, c.client.malformed(op, err)
	}
	return services, nil
}

// GetServiceByID returns a single service. An empty payload or an empty
// object is reported as ErrNotFound.
func (c *CatalogClient) GetServiceByID(ctx context.Context, serviceID string) (*models.Service, error) {
	const op = "get_service"

	if serviceID == "" {
		return nil, fmt.Errorf("catalog %s: empty service id: %w", op, ErrNotFound)
	}

	data, err := c.client.get(ctx, op, "/service", url.Values{"ServiceID": {serviceID}})
	if err != nil {
		return nil, err
	}
	svc, err := decodeObject[models.Service](data, "servicio")
	if err != nil {
		return nil, c.client.malformed(op, err)
	}
	if svc == nil || (svc.ServiceID == "" && svc.Title == "") {
		return nil, fmt.Errorf("catalog %s %q: %w", op, serviceID, ErrNotFound)
	}
	if svc.ServiceID == "" {
		svc.ServiceID = serviceID
	}
	return svc, nil
}

// GetServicesByProvider returns the services published by providerID.
func (c *CatalogClient) GetServicesByProvider(ctx context.Context, providerID string) ([]models.Service, error) {
	const op = "get_services_by_provider"

	data, err := c.client.get(ctx, op, "/get-by-provider", url.Values{"providerId": {providerID}})
	if err != nil {
		return nil, err
	}
	services, err := decodeList[models.Service](data, "servicios")
	if err != nil {
		return nil, c.client.malformed(op, err)
	}
	return services, nil
}
