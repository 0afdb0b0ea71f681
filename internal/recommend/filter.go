// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package recommend

import (
	"github.com/tomtom215/senderos/internal/category"
	"github.com/tomtom215/senderos/internal/models"
	"github.com/tomtom215/senderos/internal/quiz"
)

// DefaultTopK is the number of ranked categories used for recommendations.
const DefaultTopK = 4

// Filter returns the services of catalog whose normalized category is among
// the first topK entries of ranked, in catalog order. topK <= 0 uses every
// ranked category. The result is never nil.
func Filter(catalog []models.Service, ranked quiz.RankedCategories, topK int) []models.Service {
	top := ranked.Top(topK)
	wanted := make(map[string]struct{}, len(top))
	for _, key := range top {
		wanted[key] = struct{}{}
	}

	out := make([]models.Service, 0)
	if len(wanted) == 0 {
		return out
	}
	for i := range catalog {
		key, ok := category.Normalize(catalog[i].Category)
		if !ok {
			continue
		}
		if _, match := wanted[string(key)]; match {
			out = append(out, catalog[i])
		}
	}
	return out
}
