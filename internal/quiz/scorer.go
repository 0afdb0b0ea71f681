// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package quiz

import (
	"fmt"
	"strings"
)

// Scorer accumulates quiz answers into a Tally.
//
// States:
//
//	InProgress(index, tally) --Answer--> InProgress(index+1, tally)   when index < total-1
//	InProgress(index, tally) --Answer--> Complete(tally)              when index == total-1
//
// There is no transition out of Complete. A quiz with zero questions starts
// Complete.
type Scorer struct {
	total    int
	index    int
	complete bool
	tally    *Tally
}

// NewScorer creates a scorer for a quiz of total questions.
func NewScorer(total int) *Scorer {
	if total < 0 {
		total = 0
	}
	return &Scorer{
		total:    total,
		complete: total == 0,
		tally:    NewTally(),
	}
}

// Answer records an answer for the current question and advances.
func (s *Scorer) Answer(category string) error {
	if s.complete {
		return ErrQuizComplete
	}
	if strings.TrimSpace(category) == "" {
		return fmt.Errorf("%w: empty category", ErrInvalidAnswer)
	}

	s.tally.Add(category)
	if s.index == s.total-1 {
		s.complete = true
		return nil
	}
	s.index++
	return nil
}

// Complete reports whether every question has been answered.
func (s *Scorer) Complete() bool {
	return s.complete
}

// Index returns the zero-based index of the current question. On a complete
// scorer it returns Total().
func (s *Scorer) Index() int {
	if s.complete {
		return s.total
	}
	return s.index
}

// Total returns the number of questions.
func (s *Scorer) Total() int {
	return s.total
}

// Counts returns a copy of the tally counts.
func (s *Scorer) Counts() map[string]int {
	return s.tally.Map()
}

// Rank returns every answered category ranked by count. It fails with
// ErrQuizInProgress until the quiz is complete.
func (s *Scorer) Rank() (RankedCategories, error) {
	if !s.complete {
		return nil, ErrQuizInProgress
	}
	return s.tally.Rank(0), nil
}
