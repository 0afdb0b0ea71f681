// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package backend

import (
	"testing"
)

type item struct {
	ID string `json:"id"`
}

func TestDecodeList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    []string
		wantErr bool
	}{
		{name: "keyed object", data: `{"items":[{"id":"a"},{"id":"b"}]}`, want: []string{"a", "b"}},
		{name: "bare array", data: `[{"id":"a"}]`, want: []string{"a"}},
		{name: "body as string", data: `{"statusCode":200,"body":"{\"items\":[{\"id\":\"x\"}]}"}`, want: []string{"x"}},
		{name: "body as object", data: `{"body":{"items":[{"id":"y"}]}}`, want: []string{"y"}},
		{name: "body string holding array", data: `{"body":"[{\"id\":\"z\"}]"}`, want: []string{"z"}},
		{name: "missing key", data: `{"other":[]}`, want: []string{}},
		{name: "null key", data: `{"items":null}`, want: []string{}},
		{name: "null payload", data: `null`, want: []string{}},
		{name: "empty payload", data: ``, want: []string{}},
		{name: "empty body string", data: `{"body":""}`, want: []string{}},
		{name: "scalar", data: `42`, wantErr: true},
		{name: "broken json", data: `{"items":[`, wantErr: true},
		{name: "broken body string", data: `{"body":"{not json"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := decodeList[item]([]byte(tt.data), "items")
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeList() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got == nil {
				t.Fatal("decodeList() returned nil slice")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("decodeList() len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Errorf("item[%d] = %q, want %q", i, got[i].ID, tt.want[i])
				}
			}
		})
	}
}

func TestDecodeObject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantID  string
		wantNil bool
		wantErr bool
	}{
		{name: "keyed", data: `{"item":{"id":"a"}}`, wantID: "a"},
		{name: "bare", data: `{"id":"b"}`, wantID: "b"},
		{name: "body string", data: `{"body":"{\"item\":{\"id\":\"c\"}}"}`, wantID: "c"},
		{name: "null key", data: `{"item":null}`, wantNil: true},
		{name: "null", data: `null`, wantNil: true},
		{name: "array", data: `[{"id":"a"}]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := decodeObject[item]([]byte(tt.data), "item")
			if (err != nil) != tt.wantErr {
				t.Fatalf("decodeObject() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.wantNil {
				if got != nil {
					t.Errorf("decodeObject() = %+v, want nil", got)
				}
				return
			}
			if got == nil || got.ID != tt.wantID {
				t.Errorf("decodeObject() = %+v, want id %q", got, tt.wantID)
			}
		})
	}
}

func TestEnvelopeStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		data string
		want int
	}{
		{`{"statusCode":404,"body":"{}"}`, 404},
		{`{"statusCode":200,"body":"{}"}`, 200},
		{`{"statusCode":500}`, 0},
		{`{"servicios":[]}`, 0},
		{`[1,2]`, 0},
		{``, 0},
	}

	for _, tt := range tests {
		if got := envelopeStatus([]byte(tt.data)); got != tt.want {
			t.Errorf("envelopeStatus(%s) = %d, want %d", tt.data, got, tt.want)
		}
	}
}
