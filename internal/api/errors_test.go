// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/senderos/internal/backend"
	"github.com/tomtom215/senderos/internal/enrich"
)

func TestWriteError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"circuit open", fmt.Errorf("catalog-api: %w", backend.ErrCircuitOpen), http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
		{"not found", fmt.Errorf("service x: %w", backend.ErrNotFound), http.StatusNotFound, ErrCodeNotFound},
		{"status 500", &backend.StatusError{Backend: "catalog", Operation: "get_all_services", StatusCode: 500}, http.StatusBadGateway, ErrCodeExternalServiceFail},
		{"status 404", &backend.StatusError{Backend: "catalog", Operation: "get_service", StatusCode: 404}, http.StatusNotFound, ErrCodeNotFound},
		{"malformed", fmt.Errorf("decode: %w", backend.ErrMalformed), http.StatusBadGateway, ErrCodeExternalServiceFail},
		{"deadline", fmt.Errorf("load: %w", context.DeadlineExceeded), http.StatusBadGateway, ErrCodeExternalServiceFail},
		{"superseded", enrich.ErrSuperseded, http.StatusConflict, ErrCodeConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)
			respondError(w, r, "catalog", tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), `"code":"`+tt.wantCode+`"`) {
				t.Errorf("body %s does not contain code %s", w.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestWriteError_ClientGone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil).WithContext(ctx)
	respondError(w, r, "catalog", fmt.Errorf("enrich t1: %w", context.Canceled))

	if w.Body.Len() != 0 {
		t.Errorf("expected nothing written for a cancelled request, got %s", w.Body.String())
	}
}
