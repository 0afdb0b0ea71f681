// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide (it caches struct
// metadata). Field names in errors come from the json tag, then the koanf tag,
// then the Go field name, so request errors read "category is required" and
// config errors read "port must be at most 65535".
//
// # Custom Tags
//
//   - category_key: the value must be a canonical preference category key
//     (see internal/category)
//
// # Quick Start
//
//	type answerRequest struct {
//	    Category string `json:"category" validate:"required,category_key"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respond.ValidationError(apiErr.Message, apiErr.Details)
//	    return
//	}
package validation
