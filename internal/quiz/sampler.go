// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package quiz

import (
	"math/rand/v2"
	"sync"

	"github.com/tomtom215/senderos/internal/models"
)

// Sample returns min(count, len(all)) questions chosen uniformly at random,
// each with at most DefaultOptionCount options chosen uniformly at random.
// A nil rng uses the global math/rand/v2 source.
func Sample(rng *rand.Rand, all []models.Question, count int) []models.Question {
	return SampleWithOptions(rng, all, count, DefaultOptionCount)
}

// SampleWithOptions is Sample with a configurable per-question option cap.
// The returned questions and option slices are fresh copies.
func SampleWithOptions(rng *rand.Rand, all []models.Question, count, optionCount int) []models.Question {
	if count <= 0 || len(all) == 0 {
		return []models.Question{}
	}

	shuffled := make([]models.Question, len(all))
	copy(shuffled, all)
	shuffle(rng, len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	selected := shuffled[:count]

	out := make([]models.Question, count)
	for i := range selected {
		out[i] = models.Question{
			Prompt:  selected[i].Prompt,
			Options: sampleOptions(rng, selected[i].Options, optionCount),
		}
	}
	return out
}

func sampleOptions(rng *rand.Rand, options []models.Option, limit int) []models.Option {
	opts := make([]models.Option, len(options))
	copy(opts, options)
	shuffle(rng, len(opts), func(i, j int) {
		opts[i], opts[j] = opts[j], opts[i]
	})
	if limit >= 0 && limit < len(opts) {
		opts = opts[:limit]
	}
	return opts
}

func shuffle(rng *rand.Rand, n int, swap func(i, j int)) {
	if rng == nil {
		rand.Shuffle(n, swap)
		return
	}
	rng.Shuffle(n, swap)
}

// Sampler draws quizzes from a fixed bank. It is safe for concurrent use.
type Sampler struct {
	mu            sync.Mutex
	rng           *rand.Rand
	bank          []models.Question
	questionCount int
	optionCount   int
}

// NewSampler creates a Sampler over bank. Non-positive counts fall back to the
// defaults. A nil rng uses the global source.
func NewSampler(rng *rand.Rand, bank []models.Question, questionCount, optionCount int) *Sampler {
	if questionCount <= 0 {
		questionCount = DefaultQuestionCount
	}
	if optionCount <= 0 {
		optionCount = DefaultOptionCount
	}
	return &Sampler{
		rng:           rng,
		bank:          bank,
		questionCount: questionCount,
		optionCount:   optionCount,
	}
}

// Draw samples a new quiz.
func (s *Sampler) Draw() []models.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SampleWithOptions(s.rng, s.bank, s.questionCount, s.optionCount)
}

// BankSize returns the number of questions in the bank.
func (s *Sampler) BankSize() int {
	return len(s.bank)
}
