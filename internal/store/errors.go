// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package store

import "errors"

// ErrEmptyTouristID is returned when a tally is saved without an owner.
var ErrEmptyTouristID = errors.New("store: tourist id cannot be empty")

func copyTally(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
