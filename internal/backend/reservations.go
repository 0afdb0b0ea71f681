// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package backend

import (
	"context"
	"net/url"

	"github.com/tomtom215/senderos/internal/config"
	"github.com/tomtom215/senderos/internal/models"
)

// ReservationClient reads the reservation backend.
//
//	GET /reservations?TouristID=<id>  -> {"reservas": [...]}
//	GET /reservations?ProviderID=<id> -> {"reservas": [...]}
type ReservationClient struct {
	client *Client
}

var _ ReservationReader = (*ReservationClient)(nil)

// NewReservationClient creates a reservation client from configuration.
func NewReservationClient(cfg *config.BackendConfig) *ReservationClient {
	return &ReservationClient{client: NewClient("reservations", cfg)}
}

// BreakerOpen reports whether the reservation circuit breaker is open.
func (c *ReservationClient) BreakerOpen() bool {
	return c.client.BreakerOpen()
}

// GetReservationsByTourist returns the reservations made by a tourist.
func (c *ReservationClient) GetReservationsByTourist(ctx context.Context, touristID string) ([]models.Reservation, error) {
	return c.list(ctx, "get_reservations_by_tourist", url.Values{"TouristID": {touristID}})
}

// GetReservationsByProvider returns the reservations for a provider's services.
func (c *ReservationClient) GetReservationsByProvider(ctx context.Context, providerID string) ([]models.Reservation, error) {
	return c.list(ctx, "get_reservations_by_provider", url.Values{"ProviderID": {providerID}})
}

func (c *ReservationClient) list(ctx context.Context, op string, query url.Values) ([]models.Reservation, error) {
	data, err := c.client.get(ctx, op, "/reservations", query)
	if err != nil {
		return nil, err
	}
	reservations, err := decodeList[models.Reservation](data, "reservas")
	if err != nil {
		return nil, c.client.malformed(op, err)
	}
	return reservations, nil
}
