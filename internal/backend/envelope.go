// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package backend

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

var errUnexpectedPayload = errors.New("unexpected payload shape")

// unwrapBody returns the payload of a response, unwrapping a Lambda proxy
// envelope when the response has a "body" field. A nil result means the
// payload is empty or JSON null.
func unwrapBody(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if isEmptyPayload(trimmed) {
		return nil, nil
	}
	if trimmed[0] != '{' {
		return trimmed, nil
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, err
	}
	raw, ok := env["body"]
	if !ok {
		return trimmed, nil
	}

	body := bytes.TrimSpace(raw)
	if len(body) > 0 && body[0] == '"' {
		var s string
		if err := json.Unmarshal(body, &s); err != nil {
			return nil, err
		}
		body = bytes.TrimSpace([]byte(s))
	}
	if isEmptyPayload(body) {
		return nil, nil
	}
	return body, nil
}

// envelopeStatus returns the statusCode field of a Lambda proxy envelope,
// or 0 when the response is not an envelope.
func envelopeStatus(data []byte) int {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return 0
	}
	var env struct {
		StatusCode int              `json:"statusCode"`
		Body       *json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(trimmed, &env); err != nil || env.Body == nil {
		return 0
	}
	return env.StatusCode
}

// decodeList decodes a list payload: a bare array, or an object holding the
// array under key. A missing key or null yields an empty, non-nil slice.
func decodeList[T any](data []byte, key string) ([]T, error) {
	payload, err := unwrapBody(data)
	if err != nil {
		return nil, err
	}
	items := []T{}
	if payload == nil {
		return items, nil
	}

	switch payload[0] {
	case '[':
		if err := json.Unmarshal(payload, &items); err != nil {
			return nil, err
		}
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(payload, &obj); err != nil {
			return nil, err
		}
		raw, ok := obj[key]
		if !ok || isEmptyPayload(bytes.TrimSpace(raw)) {
			return items, nil
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", errUnexpectedPayload, truncate(payload, 64))
	}

	if items == nil {
		items = []T{}
	}
	return items, nil
}

// decodeObject decodes a single-object payload: either the object stored
// under key or the bare object itself. A nil result means the payload was
// empty or null.
func decodeObject[T any](data []byte, key string) (*T, error) {
	payload, err := unwrapBody(data)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, nil
	}
	if payload[0] != '{' {
		return nil, fmt.Errorf("%w: %q", errUnexpectedPayload, truncate(payload, 64))
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(payload, &obj); err != nil {
		return nil, err
	}
	if raw, ok := obj[key]; ok {
		raw = bytes.TrimSpace(raw)
		if isEmptyPayload(raw) {
			return nil, nil
		}
		payload = raw
	}

	var out T
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func isEmptyPayload(b []byte) bool {
	return len(b) == 0 || bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte(`""`))
}
