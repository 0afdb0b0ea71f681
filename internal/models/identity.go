// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package models

import "strings"

// Role is the coarse role reported by the session provider.
type Role string

const (
	RoleNone     Role = ""
	RoleTourist  Role = "tourist"
	RoleProvider Role = "provider"
)

// ParseRole maps a role header value to a Role. The Spanish group names used
// by the identity provider ("Turistas", "Proveedores") are accepted as well.
// Unknown values map to RoleNone.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tourist", "turista", "turistas":
		return RoleTourist
	case "provider", "proveedor", "proveedores":
		return RoleProvider
	default:
		return RoleNone
	}
}

// Identity is the caller of a gateway request. UserID is opaque.
type Identity struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// IsAnonymous reports whether no user identifier was supplied.
func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}
