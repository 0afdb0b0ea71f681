// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package backend

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/tomtom215/senderos/internal/config"
)

// PreferenceClient stores tallies in the remote preference backend.
//
//	GET  /add_preferences?TouristID=<id> -> {"preferences": {...}}
//	POST /add_preferences                   {"TouristID": "...", "preferences": {...}}
type PreferenceClient struct {
	client *Client
}

var _ PreferenceStore = (*PreferenceClient)(nil)

// NewPreferenceClient creates a preference client from configuration.
func NewPreferenceClient(cfg *config.BackendConfig) *PreferenceClient {
	return &PreferenceClient{client: NewClient("preferences", cfg)}
}

// BreakerOpen reports whether the preference circuit breaker is open.
func (c *PreferenceClient) BreakerOpen() bool {
	return c.client.BreakerOpen()
}

// GetPreferences returns the stored counts for touristID. Non-numeric values
// (the stored timestamp, the tourist id) are skipped.
func (c *PreferenceClient) GetPreferences(ctx context.Context, touristID string) (map[string]int, error) {
	const op = "get_preferences"

	data, err := c.client.get(ctx, op, "/add_preferences", url.Values{"TouristID": {touristID}})
	if err != nil {
		return nil, err
	}
	raw, err := decodeObject[map[string]interface{}](data, "preferences")
	if err != nil {
		return nil, c.client.malformed(op, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("preferences %s %q: %w", op, touristID, ErrNotFound)
	}

	counts := make(map[string]int, len(*raw))
	for key, value := range *raw {
		if n, ok := numericCount(value); ok {
			counts[key] = n
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("preferences %s %q: %w", op, touristID, ErrNotFound)
	}
	return counts, nil
}

// SavePreferences replaces the stored tally for touristID.
func (c *PreferenceClient) SavePreferences(ctx context.Context, touristID string, tally map[string]int) error {
	payload := struct {
		TouristID   string         `json:"TouristID"`
		Preferences map[string]int `json:"preferences"`
	}{
		TouristID:   touristID,
		Preferences: tally,
	}
	_, err := c.client.postJSON(ctx, "save_preferences", "/add_preferences", payload)
	return err
}

// numericCount accepts JSON numbers and numeric strings.
func numericCount(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(math.Round(n)), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
