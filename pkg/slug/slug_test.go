// Copyright (c) 2026 Kinoteka. All rights reserved.
// Author: dev@kinoteka.app

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kinoteka/kinoteka/pkg/slug"
)

/*
TestFrom verifies the slug pipeline against representative catalogue inputs.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Drama", "drama"},
		{"spaces", "Science Fiction", "science-fiction"},
		{"mixed_case_hyphen", "Sci-Fi", "sci-fi"},
		{"accents", "Amélie", "amelie"},
		{"punctuation", "Rock'n'Roll!", "rock-n-roll"},
		{"leading_trailing", "  --Thriller--  ", "thriller"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
