// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

/*
Package quiz implements the tourist preference quiz.

The quiz has three parts:

  - Sampling: Sample draws a random subset of the question bank and a random
    subset of each question's options. The input bank is never mutated.
  - Scoring: Scorer is a two-state machine (in progress / complete) that adds
    one point to the chosen category per answer. Answers cannot be revised.
  - Ranking: Tally keeps per-category counts in first-seen order. Rank sorts
    by descending count with a stable sort, so ties keep first-seen order.

Randomness exists for variety only. The random source is injected so tests can
use a fixed seed; production code uses an unseeded math/rand/v2 source.

Usage:

	bank, err := quiz.LoadBank(cfg.Quiz.BankPath)
	questions := quiz.Sample(rng, bank, quiz.DefaultQuestionCount)

	scorer := quiz.NewScorer(len(questions))
	_ = scorer.Answer("buceo")
	...
	ranked, err := scorer.Rank()
	top := ranked.Top(4)

Scorer and Tally are not safe for concurrent use; a quiz session owns its
scorer exclusively.
*/
package quiz

import "errors"

const (
	// DefaultQuestionCount is the number of questions per quiz.
	DefaultQuestionCount = 3

	// DefaultOptionCount is the number of options shown per question.
	DefaultOptionCount = 4
)

var (
	// ErrQuizComplete is returned when answering a quiz that already finished.
	ErrQuizComplete = errors.New("quiz already complete")

	// ErrQuizInProgress is returned when ranking a quiz that has not finished.
	ErrQuizInProgress = errors.New("quiz still in progress")

	// ErrInvalidAnswer is returned for an empty answer category.
	ErrInvalidAnswer = errors.New("invalid answer")

	// ErrEmptyBank is returned when a question bank contains no questions.
	ErrEmptyBank = errors.New("question bank is empty")
)
