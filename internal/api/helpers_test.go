// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/senderos/internal/backend"
	"github.com/tomtom215/senderos/internal/config"
	"github.com/tomtom215/senderos/internal/enrich"
	"github.com/tomtom215/senderos/internal/models"
	"github.com/tomtom215/senderos/internal/quiz"
	"github.com/tomtom215/senderos/internal/recommend"
	"github.com/tomtom215/senderos/internal/store"
)

// testEnvelope decodes APIResponse with a raw data payload.
type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

type fakeCatalog struct {
	mu       sync.Mutex
	services []models.Service
	err      error
	byIDErr  error
}

func (f *fakeCatalog) GetAllServices(context.Context) ([]models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Service(nil), f.services...), nil
}

func (f *fakeCatalog) GetServiceByID(_ context.Context, id string) (*models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	for i := range f.services {
		if f.services[i].ServiceID == id {
			s := f.services[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("service %s: %w", id, backend.ErrNotFound)
}

func (f *fakeCatalog) GetServicesByProvider(_ context.Context, providerID string) ([]models.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Service, 0)
	for _, s := range f.services {
		if s.ProviderID == providerID {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeReservations struct {
	byTourist  map[string][]models.Reservation
	byProvider map[string][]models.Reservation
	err        error
}

func (f *fakeReservations) GetReservationsByTourist(_ context.Context, id string) ([]models.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byTourist[id], nil
}

func (f *fakeReservations) GetReservationsByProvider(_ context.Context, id string) ([]models.Reservation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byProvider[id], nil
}

// failingStore rejects every write.
type failingStore struct {
	backend.PreferenceStore
	err error
}

func (f *failingStore) SavePreferences(context.Context, string, map[string]int) error {
	return f.err
}

type fakeReporter struct{ open bool }

func (f fakeReporter) BreakerOpen() bool { return f.open }

func testCatalog() *fakeCatalog {
	return &fakeCatalog{services: []models.Service{
		{ServiceID: "s1", ProviderID: "p1", Title: "Arrecife", Description: "Buceo en el arrecife", Category: "Buceo", Images: []string{"a.jpg"}},
		{ServiceID: "s2", ProviderID: "p1", Title: "Manglar", Description: "Kayak entre manglares", Category: "Excursión en kayak"},
		{ServiceID: "s3", ProviderID: "p2", Title: "Ruinas", Description: "Visita guiada a la zona", Category: "Tour arqueológico"},
		{ServiceID: "s4", ProviderID: "p2", Title: "Sin categoría", Description: "Otro buceo", Category: "Paracaidismo"},
	}}
}

// testBank has "buceo" on every question so a test can always pick it.
func testBank() []models.Question {
	return []models.Question{
		{Prompt: "¿Agua o tierra?", Options: []models.Option{{Text: "Bucear", Category: "buceo"}, {Text: "Remar", Category: "kayak"}}},
		{Prompt: "¿Qué te atrae?", Options: []models.Option{{Text: "Peces", Category: "buceo"}, {Text: "Aves", Category: "aves"}}},
		{Prompt: "¿Historia?", Options: []models.Option{{Text: "Ruinas", Category: "arqueologia"}, {Text: "Corales", Category: "buceo"}}},
	}
}

type testEnv struct {
	handler      *Handler
	router       http.Handler
	catalog      *fakeCatalog
	reservations *fakeReservations
	prefs        *store.MemoryPreferenceStore
}

type envOption func(*Dependencies)

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()

	catalog := testCatalog()
	reservations := &fakeReservations{
		byTourist: map[string][]models.Reservation{
			"t1": {
				{ReservationID: "r1", ServiceID: "s1", TouristID: "t1", ProviderID: "p1"},
				{ReservationID: "r2", ServiceID: "missing", TouristID: "t1", ProviderID: "p1"},
			},
		},
		byProvider: map[string][]models.Reservation{
			"p2": {{ReservationID: "r3", ServiceID: "s3", TouristID: "t9", ProviderID: "p2"}},
		},
	}
	prefs := store.NewMemoryPreferenceStore()

	deps := Dependencies{
		Catalog:      catalog,
		Reservations: reservations,
		Preferences:  prefs,
		Recommender:  recommend.NewRecommender(catalog, prefs, recommend.DefaultTopK, zerolog.Nop()),
		Enrichment:   enrich.NewService(enrich.New(enrich.Config{LookupTimeout: time.Second}), enrich.NewGuard()),
		Sampler:      quiz.NewSampler(rand.New(rand.NewPCG(1, 2)), testBank(), 3, 4),
		Sessions:     NewQuizSessions(time.Minute),
		Readiness:    map[string]backend.StateReporter{"catalog": fakeReporter{}},
	}
	for _, opt := range opts {
		opt(&deps)
	}

	handler := NewHandler(deps)
	t.Cleanup(handler.Close)

	sec := &config.SecurityConfig{
		CORSOrigins:       []string{"https://senderos.example"},
		RateLimitDisabled: true,
		UserIDHeader:      "X-User-ID",
		RoleHeader:        "X-User-Role",
	}

	return &testEnv{
		handler:      handler,
		router:       NewRouter(handler, sec).SetupChi(),
		catalog:      catalog,
		reservations: reservations,
		prefs:        prefs,
	}
}

// do sends a request through the router. userID and role may be empty.
func (e *testEnv) do(t *testing.T, method, path, userID, role string, body interface{}) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	if role != "" {
		req.Header.Set("X-User-Role", role)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env testEnvelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope (%d): %v: %s", rec.Code, err, rec.Body.String())
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env testEnvelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v: %s", err, string(env.Data))
	}
}
