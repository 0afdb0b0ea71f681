// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package quiz

import (
	"sort"
)

// bookkeepingFields are non-category entries the preference backend stores
// alongside the counts.
var bookkeepingFields = map[string]struct{}{
	"timestamp": {},
	"TouristID": {},
}

// IsBookkeepingField reports whether key is a persistence field rather than a
// preference category.
func IsBookkeepingField(key string) bool {
	_, ok := bookkeepingFields[key]
	return ok
}

// RankedCategories is a list of category keys, highest affinity first.
type RankedCategories []string

// Top returns the first k entries. k <= 0 returns all entries.
func (r RankedCategories) Top(k int) RankedCategories {
	if k <= 0 || k >= len(r) {
		return r
	}
	return r[:k]
}

// Tally counts answers per category and remembers the order in which each
// category was first seen.
type Tally struct {
	order  []string
	counts map[string]int
}

// NewTally returns an empty tally.
func NewTally() *Tally {
	return &Tally{counts: make(map[string]int)}
}

// TallyFromMap builds a tally from stored counts. Bookkeeping fields and
// negative counts are dropped. Map iteration order is random, so first-seen
// order is defined as ascending key order.
func TallyFromMap(m map[string]int) *Tally {
	keys := make([]string, 0, len(m))
	for k, v := range m {
		if IsBookkeepingField(k) || v < 0 || k == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := NewTally()
	for _, k := range keys {
		t.order = append(t.order, k)
		t.counts[k] = m[k]
	}
	return t
}

// Add increments the count of category by one.
func (t *Tally) Add(category string) {
	if _, seen := t.counts[category]; !seen {
		t.order = append(t.order, category)
	}
	t.counts[category]++
}

// Count returns the count for category.
func (t *Tally) Count(category string) int {
	return t.counts[category]
}

// Len returns the number of distinct categories.
func (t *Tally) Len() int {
	return len(t.order)
}

// Map returns a copy of the counts.
func (t *Tally) Map() map[string]int {
	out := make(map[string]int, len(t.counts))
	for k, v := range t.counts {
		out[k] = v
	}
	return out
}

// Rank returns the categories sorted by descending count. Ties keep first-seen
// order. topK <= 0 returns every category.
func (t *Tally) Rank(topK int) RankedCategories {
	ranked := make(RankedCategories, len(t.order))
	copy(ranked, t.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return t.counts[ranked[i]] > t.counts[ranked[j]]
	})
	return ranked.Top(topK)
}
