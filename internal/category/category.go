// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

// Package category maps the provider-facing activity labels of the catalog to
// the canonical preference keys used by the quiz and the recommender.
//
// The two vocabularies are distinct: services carry display labels such as
// "Paseo en lancha rápida", while quiz options and stored preference tallies
// use short keys such as "lancha". Matching is exact on the display label
// (case and accents are significant). A label outside the vocabulary has no
// key; such services are never recommended, and that is not an error.
package category

import "sort"

// Key is a canonical preference category.
type Key string

// displayToKey is the controlled vocabulary. Providers pick tipoActividad from
// this list when creating a service.
var displayToKey = map[string]Key{
	"Tour guiado":                     "tour",
	"Caminata en senderos":            "caminata",
	"Buceo":                           "buceo",
	"Cascadas":                        "cascadas",
	"Paseo en lancha rápida":          "lancha",
	"Snorkel":                         "snorkel",
	"Observación de aves migratorias": "aves",
	"Experiencia cultural":            "cultura",
	"Excursión en kayak":              "kayak",
	"Camping en la montaña":           "camping",
	"Avistamiento de fauna silvestre": "fauna",
	"Tour arqueológico":               "arqueologia",
	"Paseo en bicicleta de montaña":   "bicicleta",
	"Tour de jardines botánicos":      "jardines",
	"Tour de templos y monumentos":    "templos",
	"Observación de estrellas":        "estrellas",
	"Piscinas naturales, cenotes":     "piscinas",
}

var (
	keySet       map[Key]string
	sortedKeys   []Key
	sortedLabels []string
)

//nolint:gochecknoinits // derived lookup tables for a static vocabulary
func init() {
	keySet = make(map[Key]string, len(displayToKey))
	sortedLabels = make([]string, 0, len(displayToKey))
	for label, key := range displayToKey {
		keySet[key] = label
		sortedLabels = append(sortedLabels, label)
	}
	sort.Strings(sortedLabels)

	sortedKeys = make([]Key, 0, len(keySet))
	for key := range keySet {
		sortedKeys = append(sortedKeys, key)
	}
	sort.Slice(sortedKeys, func(i, j int) bool { return sortedKeys[i] < sortedKeys[j] })
}

// Normalize returns the canonical key for a display label. The second result
// is false when the label is not part of the vocabulary.
func Normalize(display string) (Key, bool) {
	key, ok := displayToKey[display]
	return key, ok
}

// IsKey reports whether k is a known canonical key.
func IsKey(k string) bool {
	_, ok := keySet[Key(k)]
	return ok
}

// DisplayName returns the display label for a canonical key.
func DisplayName(k Key) (string, bool) {
	label, ok := keySet[k]
	return label, ok
}

// Keys returns all canonical keys in ascending order.
func Keys() []Key {
	out := make([]Key, len(sortedKeys))
	copy(out, sortedKeys)
	return out
}

// DisplayNames returns all display labels in ascending order.
func DisplayNames() []string {
	out := make([]string, len(sortedLabels))
	copy(out, sortedLabels)
	return out
}

// Entry pairs a display label with its key.
type Entry struct {
	Key         Key    `json:"key"`
	DisplayName string `json:"display_name"`
}

// Vocabulary returns every label/key pair ordered by key.
func Vocabulary() []Entry {
	out := make([]Entry, 0, len(sortedKeys))
	for _, k := range sortedKeys {
		out = append(out, Entry{Key: k, DisplayName: keySet[k]})
	}
	return out
}
