// Copyright (c) 2026 Toma Beauty. All rights reserved.

package bilingual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomabeauty/toma/pkg/bilingual"
)

/*
TestText_Fill verifies the fallback-fill invariant: after Fill, a pair with
exactly one authored side has both sides non-empty and the authored side
unchanged.
*/
func TestText_Fill(t *testing.T) {
	tests := []struct {
		name  string
		input bilingual.Text
		want  bilingual.Text
	}{
		{
			name:  "arabic_only",
			input: bilingual.Text{Ar: "روتين الصباح"},
			want:  bilingual.Text{Ar: "روتين الصباح", En: "روتين الصباح"},
		},
		{
			name:  "english_only",
			input: bilingual.Text{En: "Morning Routine"},
			want:  bilingual.Text{Ar: "Morning Routine", En: "Morning Routine"},
		},
		{
			name:  "both_authored",
			input: bilingual.Text{Ar: "روتين", En: "Routine"},
			want:  bilingual.Text{Ar: "روتين", En: "Routine"},
		},
		{
			name:  "whitespace_counts_as_blank",
			input: bilingual.Text{Ar: "روتين", En: "   "},
			want:  bilingual.Text{Ar: "روتين", En: "روتين"},
		},
		{
			name:  "both_blank_unchanged",
			input: bilingual.Text{},
			want:  bilingual.Text{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Fill())
		})
	}
}

/*
TestText_Blank checks blank detection for validation.
*/
func TestText_Blank(t *testing.T) {
	assert.True(t, bilingual.Text{}.Blank())
	assert.True(t, bilingual.Text{Ar: "  ", En: "\t"}.Blank())
	assert.False(t, bilingual.Text{Ar: "نص"}.Blank())
	assert.False(t, bilingual.Text{En: "text"}.Blank())
}

/*
TestText_Resolve confirms language selection, including the Arabic default.
*/
func TestText_Resolve(t *testing.T) {
	text := bilingual.Text{Ar: "مقال", En: "Article"}

	assert.Equal(t, "مقال", text.Resolve(bilingual.Arabic))
	assert.Equal(t, "Article", text.Resolve(bilingual.English))
}

/*
TestParseLang checks request language tag normalization.
*/
func TestParseLang(t *testing.T) {
	tests := []struct {
		input string
		want  bilingual.Lang
	}{
		{"ar", bilingual.Arabic},
		{"en", bilingual.English},
		{"en-US", bilingual.English},
		{"EN", bilingual.English},
		{"", bilingual.Arabic},
		{"fr", bilingual.Arabic},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, bilingual.ParseLang(tt.input), tt.input)
	}
}
