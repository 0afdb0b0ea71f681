// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package api

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/senderos/internal/cache"
	"github.com/tomtom215/senderos/internal/metrics"
	"github.com/tomtom215/senderos/internal/models"
	"github.com/tomtom215/senderos/internal/quiz"
)

// DefaultQuizSessionTTL bounds how long an unanswered quiz is kept.
const DefaultQuizSessionTTL = 30 * time.Minute

// errSessionNotFound covers unknown, expired and foreign sessions alike.
var errSessionNotFound = errors.New("quiz session not found")

// quizSession is one tourist's quiz in progress.
type quizSession struct {
	mu        sync.Mutex
	id        string
	owner     string
	questions []models.Question
	scorer    *quiz.Scorer
	createdAt time.Time

	// saved is set once the completed tally reached the preference store.
	saved bool
}

// QuizSessionView is the client-facing state of a session.
type QuizSessionView struct {
	SessionID       string                `json:"session_id"`
	Index           int                   `json:"index"`
	Total           int                   `json:"total"`
	Complete        bool                  `json:"complete"`
	CurrentQuestion *models.Question      `json:"current_question,omitempty"`
	Questions       []models.Question     `json:"questions,omitempty"`
	Ranking         quiz.RankedCategories `json:"ranking,omitempty"`
	Saved           bool                  `json:"saved"`
	CreatedAt       time.Time             `json:"created_at"`
}

// view renders the session. The caller must hold s.mu.
func (s *quizSession) view(includeQuestions bool) QuizSessionView {
	v := QuizSessionView{
		SessionID: s.id,
		Index:     s.scorer.Index(),
		Total:     s.scorer.Total(),
		Complete:  s.scorer.Complete(),
		Saved:     s.saved,
		CreatedAt: s.createdAt,
	}
	if includeQuestions {
		v.Questions = s.questions
	}
	if !v.Complete {
		q := s.questions[v.Index]
		v.CurrentQuestion = &q
		return v
	}
	if ranking, err := s.scorer.Rank(); err == nil {
		v.Ranking = ranking
	}
	return v
}

// QuizSessions keeps quiz sessions in memory for a limited time.
type QuizSessions struct {
	sessions *cache.Cache[*quizSession]
	now      func() time.Time
}

// NewQuizSessions creates a session store whose entries expire after ttl.
func NewQuizSessions(ttl time.Duration) *QuizSessions {
	if ttl <= 0 {
		ttl = DefaultQuizSessionTTL
	}
	return &QuizSessions{
		sessions: cache.New[*quizSession](ttl),
		now:      time.Now,
	}
}

// Start stores a new session for owner over the given questions.
func (q *QuizSessions) Start(owner string, questions []models.Question) *quizSession {
	s := &quizSession{
		id:        uuid.NewString(),
		owner:     owner,
		questions: questions,
		scorer:    quiz.NewScorer(len(questions)),
		createdAt: q.now(),
	}
	q.sessions.Set(s.id, s)

	metrics.QuizSessionsStarted.Inc()
	q.updateGauge()
	return s
}

// Get returns the session if it exists and belongs to owner.
func (q *QuizSessions) Get(id, owner string) (*quizSession, error) {
	s, ok := q.sessions.Get(id)
	q.updateGauge()
	if !ok || s.owner != owner {
		return nil, errSessionNotFound
	}
	return s, nil
}

// Len returns the number of sessions held, including expired ones not yet
// swept.
func (q *QuizSessions) Len() int {
	return q.sessions.Len()
}

// Close stops the expiry sweeper.
func (q *QuizSessions) Close() {
	q.sessions.Close()
}

func (q *QuizSessions) updateGauge() {
	metrics.QuizActiveSessions.Set(float64(q.sessions.Len()))
}
