// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/tomtom215/senderos/internal/logging"
	"github.com/tomtom215/senderos/internal/models"
)

type identityKey struct{}

// maxUserIDLength bounds the opaque user identifier.
const maxUserIDLength = 256

// Identity reads the caller's user ID and role from the given headers and
// stores them in the request context. Missing or oversized IDs leave the
// request anonymous; it is up to each handler to require an identity.
func Identity(userHeader, roleHeader string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := models.Identity{
				UserID: strings.TrimSpace(r.Header.Get(userHeader)),
				Role:   models.ParseRole(r.Header.Get(roleHeader)),
			}
			if len(id.UserID) > maxUserIDLength {
				id = models.Identity{}
			}

			ctx := context.WithValue(r.Context(), identityKey{}, id)
			if !id.IsAnonymous() {
				ctx = logging.ContextWithViewerID(ctx, id.UserID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext returns the caller stored by Identity. Requests that did
// not pass through Identity are anonymous.
func IdentityFromContext(ctx context.Context) models.Identity {
	if id, ok := ctx.Value(identityKey{}).(models.Identity); ok {
		return id
	}
	return models.Identity{}
}

// WithIdentity returns a context carrying id. Used by tests and by callers
// that obtain the identity some other way.
func WithIdentity(ctx context.Context, id models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}
