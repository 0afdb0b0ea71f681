// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package store

import (
	"fmt"

	"github.com/tomtom215/senderos/internal/backend"
	"github.com/tomtom215/senderos/internal/config"
	"github.com/tomtom215/senderos/internal/logging"
)

// Selection is the preference store chosen by configuration.
type Selection struct {
	// Store serves GetPreferences and SavePreferences.
	Store backend.PreferenceStore

	// Badger is set when the badger store is selected.
	Badger *BadgerPreferenceStore

	// Remote is set when the HTTP preference service is selected.
	Remote *backend.PreferenceClient
}

// Open builds the preference store named by cfg.Store.
func Open(cfg *config.PreferencesConfig) (*Selection, error) {
	switch cfg.Store {
	case config.PreferenceStoreRemote, "":
		client := backend.NewPreferenceClient(&cfg.HTTP)
		logging.Info().Str("store", config.PreferenceStoreRemote).Str("url", cfg.HTTP.URL).Msg("Preference store selected")
		return &Selection{Store: client, Remote: client}, nil

	case config.PreferenceStoreBadger:
		db, err := OpenBadgerPreferenceStore(cfg.BadgerPath)
		if err != nil {
			return nil, err
		}
		logging.Info().Str("store", config.PreferenceStoreBadger).Str("path", cfg.BadgerPath).Msg("Preference store selected")
		return &Selection{Store: db, Badger: db}, nil

	case config.PreferenceStoreMemory:
		logging.Warn().Str("store", config.PreferenceStoreMemory).Msg("Preference store selected; tallies are lost on restart")
		return &Selection{Store: NewMemoryPreferenceStore()}, nil

	default:
		return nil, fmt.Errorf("unknown preference store %q", cfg.Store)
	}
}

// BreakerOpen reports whether the remote store's circuit breaker is open.
// Local stores never report open.
func (s *Selection) BreakerOpen() bool {
	return s.Remote != nil && s.Remote.BreakerOpen()
}

// Close releases the badger database, if one was opened.
func (s *Selection) Close() error {
	if s.Badger != nil {
		return s.Badger.Close()
	}
	return nil
}
