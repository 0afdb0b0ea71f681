// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

/*
Package models defines the data structures shared across Senderos.

The JSON field names of Service and Reservation follow the remote marketplace
backend (ServiceID, titulo, tipoActividad, reservas, ...), so the same types are
used to decode backend payloads and to encode gateway responses.

Key Types:

  - Service: a bookable listing owned by a provider
  - Reservation: a tourist's booking request against a Service
  - EnrichedReservation: a Reservation plus the resolved service title and image
  - Question / Option: preference quiz entries
  - Identity / Role: the caller as reported by the upstream session provider

Models carry no behavior beyond small accessors; the algorithms that operate on
them live in internal/category, internal/quiz, internal/recommend and
internal/enrich.
*/
package models
