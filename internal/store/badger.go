// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/senderos/internal/backend"
)

// preferenceKeyPrefix namespaces preference records in BadgerDB.
const preferenceKeyPrefix = "preferences:"

// gcDiscardRatio is the value-log discard ratio used by RunGC.
const gcDiscardRatio = 0.5

// preferenceRecord is the stored form of a tally.
type preferenceRecord struct {
	TouristID   string         `json:"TouristID"`
	Preferences map[string]int `json:"preferences"`
	Timestamp   time.Time      `json:"timestamp"`
}

// BadgerPreferenceStore implements backend.PreferenceStore on BadgerDB.
type BadgerPreferenceStore struct {
	db  *badger.DB
	now func() time.Time
}

var _ backend.PreferenceStore = (*BadgerPreferenceStore)(nil)

// OpenBadgerPreferenceStore opens (or creates) a BadgerDB at path.
//
//	store, err := store.OpenBadgerPreferenceStore("/data/preferences")
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
func OpenBadgerPreferenceStore(path string) (*BadgerPreferenceStore, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	// Tallies are tiny; the default 1GB value log is oversized.
	opts.ValueLogFileSize = 16 << 20
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for preferences: %w", err)
	}
	return NewBadgerPreferenceStoreFromDB(db), nil
}

// NewBadgerPreferenceStoreFromDB creates a store on an already open database.
func NewBadgerPreferenceStoreFromDB(db *badger.DB) *BadgerPreferenceStore {
	return &BadgerPreferenceStore{db: db, now: time.Now}
}

// GetPreferences returns the stored tally for touristID.
func (s *BadgerPreferenceStore) GetPreferences(ctx context.Context, touristID string) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var record preferenceRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(preferenceKeyPrefix + touristID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("preferences for %q: %w", touristID, backend.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("get preferences: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return nil, err
	}

	if record.Preferences == nil {
		return map[string]int{}, nil
	}
	return record.Preferences, nil
}

// SavePreferences replaces the stored tally for touristID.
func (s *BadgerPreferenceStore) SavePreferences(ctx context.Context, touristID string, tally map[string]int) error {
	if touristID == "" {
		return ErrEmptyTouristID
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(preferenceRecord{
		TouristID:   touristID,
		Preferences: copyTally(tally),
		Timestamp:   s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(preferenceKeyPrefix+touristID), data); err != nil {
			return fmt.Errorf("set preferences: %w", err)
		}
		return nil
	})
}

// UpdatedAt returns when the tally of touristID was last saved.
func (s *BadgerPreferenceStore) UpdatedAt(touristID string) (time.Time, error) {
	var record preferenceRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(preferenceKeyPrefix + touristID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return backend.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if err != nil {
		return time.Time{}, err
	}
	return record.Timestamp, nil
}

// Count returns the number of stored tallies.
func (s *BadgerPreferenceStore) Count() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(preferenceKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// RunGC runs value-log garbage collection until nothing is left to rewrite.
// It is a no-op for in-memory databases.
func (s *BadgerPreferenceStore) RunGC() error {
	for {
		err := s.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("run value log gc: %w", err)
		}
	}
}

// Close closes the underlying database.
func (s *BadgerPreferenceStore) Close() error {
	return s.db.Close()
}
