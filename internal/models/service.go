// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package models

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Service is a listing in the remote catalog.
//
// Category holds the provider-facing display label (e.g. "Tour guiado"), not
// the canonical preference key; see category.Normalize.
type Service struct {
	ServiceID   string   `json:"ServiceID"`
	ProviderID  string   `json:"ProviderID,omitempty"`
	Title       string   `json:"titulo"`
	Description string   `json:"descripcion"`
	Category    string   `json:"tipoActividad"`
	Location    string   `json:"ubicacion"`
	Price       Price    `json:"precio"`
	Images      []string `json:"imagenes"`
}

// PrimaryImage returns the first image URL, or "" when the service has none.
func (s *Service) PrimaryImage() string {
	if s == nil || len(s.Images) == 0 {
		return ""
	}
	return s.Images[0]
}

// MatchesDescription reports whether the description contains q, ignoring case.
// An empty query matches every service.
func (s *Service) MatchesDescription(q string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s.Description), strings.ToLower(q))
}

// Price is a service price. The backend stores prices entered through a web
// form, so it accepts both JSON numbers and numeric strings ("350", "350.50").
type Price float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid price %s: %w", raw, err)
		}
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			*p = 0
			return nil
		}
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("invalid price %s: %w", string(data), err)
	}
	*p = Price(v)
	return nil
}
