// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/tomtom215/senderos/internal/backend"
)

// MemoryPreferenceStore keeps tallies in process memory.
type MemoryPreferenceStore struct {
	mu    sync.RWMutex
	tally map[string]map[string]int
}

var _ backend.PreferenceStore = (*MemoryPreferenceStore)(nil)

// NewMemoryPreferenceStore creates an empty store.
func NewMemoryPreferenceStore() *MemoryPreferenceStore {
	return &MemoryPreferenceStore{tally: make(map[string]map[string]int)}
}

// GetPreferences returns a copy of the stored tally.
func (s *MemoryPreferenceStore) GetPreferences(_ context.Context, touristID string) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tally[touristID]
	if !ok {
		return nil, fmt.Errorf("preferences for %q: %w", touristID, backend.ErrNotFound)
	}
	return copyTally(t), nil
}

// SavePreferences replaces the stored tally.
func (s *MemoryPreferenceStore) SavePreferences(_ context.Context, touristID string, tally map[string]int) error {
	if touristID == "" {
		return ErrEmptyTouristID
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tally[touristID] = copyTally(tally)
	return nil
}

// Len returns the number of tourists with stored preferences.
func (s *MemoryPreferenceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tally)
}
