// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/senderos/internal/logging"
	"github.com/tomtom215/senderos/internal/metrics"
	"github.com/tomtom215/senderos/internal/middleware"
	"github.com/tomtom215/senderos/internal/quiz"
)

const preferencesService = "preferences"

// StartQuiz handles POST /api/v1/quiz.
// It samples a fresh quiz for the calling tourist and returns every question
// up front along with the first one to answer.
func (h *Handler) StartQuiz(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id := middleware.IdentityFromContext(r.Context())
	if id.IsAnonymous() {
		rw.Unauthorized("tourist identity required")
		return
	}

	questions := h.sampler.Draw()
	if len(questions) == 0 {
		rw.ServiceUnavailable("question bank is empty")
		return
	}

	s := h.sessions.Start(id.UserID, questions)

	logging.Ctx(r.Context()).Info().
		Str("session_id", s.id).
		Int("questions", len(questions)).
		Msg("Quiz started")

	s.mu.Lock()
	view := s.view(true)
	s.mu.Unlock()

	rw.Created(view)
}

// QuizState handles GET /api/v1/quiz/{sessionID}.
func (h *Handler) QuizState(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	s, ok := h.lookupSession(rw, r)
	if !ok {
		return
	}

	s.mu.Lock()
	view := s.view(false)
	s.mu.Unlock()

	rw.Success(view)
}

// AnswerQuiz handles POST /api/v1/quiz/{sessionID}/answers.
//
// The answered category must belong to one of the current question's options.
// The answer that completes the quiz persists the tally to the preference
// store; if that write fails the session stays complete but unsaved, and the
// error is reported as a backend failure.
func (h *Handler) AnswerQuiz(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	s, ok := h.lookupSession(rw, r)
	if !ok {
		return
	}

	var req QuizAnswerRequest
	if !decodeJSONBody(rw, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.scorer.Complete() {
		rw.Conflict(quiz.ErrQuizComplete.Error())
		return
	}

	current := &s.questions[s.scorer.Index()]
	if !current.HasCategory(req.Category) {
		rw.ValidationError("category is not an option of the current question", map[string]interface{}{
			"field": "category",
			"value": req.Category,
		})
		return
	}

	if err := s.scorer.Answer(req.Category); err != nil {
		if errors.Is(err, quiz.ErrQuizComplete) {
			rw.Conflict(err.Error())
			return
		}
		rw.BadRequest(err.Error())
		return
	}

	if !s.scorer.Complete() {
		rw.Success(s.view(false))
		return
	}

	metrics.QuizSessionsCompleted.Inc()

	logger := logging.CtxWith(r.Context()).Str("session_id", s.id).Logger()
	if err := h.preferences.SavePreferences(r.Context(), s.owner, s.scorer.Counts()); err != nil {
		logger.Warn().Err(err).Msg("Failed to persist quiz preferences")
		writeError(rw, preferencesService, err)
		return
	}
	s.saved = true

	logger.Info().Interface("tally", s.scorer.Counts()).Msg("Quiz completed")
	rw.Success(s.view(false))
}

// lookupSession resolves the {sessionID} URL parameter for the caller.
// Sessions of other tourists are reported as not found.
func (h *Handler) lookupSession(rw *ResponseWriter, r *http.Request) (*quizSession, bool) {
	id := middleware.IdentityFromContext(r.Context())
	if id.IsAnonymous() {
		rw.Unauthorized("tourist identity required")
		return nil, false
	}

	s, err := h.sessions.Get(chi.URLParam(r, "sessionID"), id.UserID)
	if err != nil {
		rw.NotFound(err.Error())
		return nil, false
	}
	return s, true
}
