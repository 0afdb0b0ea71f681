// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

// Package recommend selects catalog services matching a tourist's strongest
// quiz preferences.
//
// # Filter
//
// Filter keeps the services whose display category normalizes to one of the
// first topK ranked category keys. Catalog order is preserved and services
// with unknown display categories are never recommended.
//
//	catalog: [Buceo, Tour guiado, UnknownX]
//	ranked:  [buceo, tour]
//	topK:    2
//	result:  [Buceo, Tour guiado]
//
// # Recommender
//
// Recommender loads the tourist's stored tally and the catalog, ranks the
// tally (ties keep ascending key order for stored tallies) and filters. A
// tourist without stored preferences gets an empty result with
// HasPreferences=false rather than an error; catalog failures are returned
// to the caller.
//
//	r := recommend.NewRecommender(catalog, prefs, recommend.DefaultTopK, logger)
//	res, err := r.Recommend(ctx, touristID)
package recommend
