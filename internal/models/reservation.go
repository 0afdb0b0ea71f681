// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package models

// Reservation is a booking as returned by the reservation backend. It
// references its service only by ServiceID.
type Reservation struct {
	ReservationID string `json:"ReservationID"`
	ServiceID     string `json:"ServiceID"`
	ProviderID    string `json:"ProviderID"`
	TouristID     string `json:"TouristID"`
	Date          string `json:"fecha"`
	PartySize     int    `json:"personas"`
	TouristName   string `json:"nombreTurista"`
	TouristEmail  string `json:"emailTurista"`
}

// EnrichedReservation is a Reservation annotated with display data of the
// referenced service. ServiceTitle and ServiceImage are best-effort: they hold
// the fallback title and "" when the lookup failed.
type EnrichedReservation struct {
	Reservation

	ServiceTitle string `json:"servicioTitulo"`
	ServiceImage string `json:"servicioImagen"`

	// Resolved is false when the fallback values were used.
	Resolved bool `json:"resuelto"`
}
