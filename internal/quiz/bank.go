// Senderos - Tourism Booking Marketplace Gateway
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/senderos

package quiz

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/senderos/internal/category"
	"github.com/tomtom215/senderos/internal/models"
)

//go:embed questions.json
var defaultBank []byte

// DefaultBank returns the question bank compiled into the binary.
func DefaultBank() ([]models.Question, error) {
	return ParseBank(defaultBank)
}

// LoadBank reads a question bank from path. An empty path returns the
// built-in bank.
func LoadBank(path string) ([]models.Question, error) {
	if path == "" {
		return DefaultBank()
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read question bank %s: %w", path, err)
	}
	bank, err := ParseBank(data)
	if err != nil {
		return nil, fmt.Errorf("question bank %s: %w", path, err)
	}
	return bank, nil
}

// ParseBank decodes and validates a JSON question bank. Every question needs a
// prompt and at least one option, and every option category must be a known
// preference key.
func ParseBank(data []byte) ([]models.Question, error) {
	var bank []models.Question
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}
	if len(bank) == 0 {
		return nil, ErrEmptyBank
	}

	for i := range bank {
		q := &bank[i]
		if strings.TrimSpace(q.Prompt) == "" {
			return nil, fmt.Errorf("question %d: empty prompt", i)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d: no options", i)
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt.Text) == "" {
				return nil, fmt.Errorf("question %d option %d: empty text", i, j)
			}
			if !category.IsKey(opt.Category) {
				return nil, fmt.Errorf("question %d option %d: unknown category %q", i, j, opt.Category)
			}
		}
	}
	return bank, nil
}
