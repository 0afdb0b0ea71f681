// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

/*
Package store provides local implementations of backend.PreferenceStore.

	remote  backend.PreferenceClient (the HTTP preference service)
	badger  BadgerPreferenceStore, durable across restarts
	memory  MemoryPreferenceStore, for development and tests

Open selects one of them from config.PreferencesConfig. When the badger store
is selected the caller also receives the store itself so the supervisor can
run value-log garbage collection on it.

Records are stored as JSON under "preferences:<touristID>":

	{"TouristID": "t1", "preferences": {"buceo": 2}, "timestamp": "2026-03-01T12:00:00Z"}

which mirrors what the remote preference service keeps.
*/
package store
