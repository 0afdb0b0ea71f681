// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package models

// Question is a preference quiz prompt. Option order carries no meaning.
type Question struct {
	Prompt  string   `json:"pregunta"`
	Options []Option `json:"opciones"`
}

// Option is one answer of a Question. Category is a canonical preference key
// (e.g. "buceo"), not a service display label.
type Option struct {
	Text     string `json:"texto"`
	Category string `json:"categoria"`
}

// HasCategory reports whether any option of q carries the given category.
func (q *Question) HasCategory(category string) bool {
	for i := range q.Options {
		if q.Options[i].Category == category {
			return true
		}
	}
	return false
}
