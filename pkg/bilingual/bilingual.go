// Copyright (c) 2026 Toma Beauty. All rights reserved.

/*
Package bilingual models Arabic/English text pairs.

Every user-facing text field on the platform exists twice, once per language,
with independently authored values. There is no runtime translation: the
stored value is the translation. The one invariant the package enforces is
fallback-fill — a pair created with only one side authored gets the other
side copied from it, so both sides are always non-empty after creation.
*/
package bilingual

import "strings"

// Lang identifies one of the two supported content languages.
type Lang string

const (
	// Arabic is the site's primary authoring language.
	Arabic Lang = "ar"
	// English is the secondary language.
	English Lang = "en"
)

// ParseLang normalizes a language tag from a request (query parameter or
// Accept-Language prefix). Anything that is not English resolves to Arabic,
// the site default.
func ParseLang(s string) Lang {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(s)), "en") {
		return English
	}
	return Arabic
}

// Text is a bilingual pair holding the Arabic and English values of one
// logical attribute.
type Text struct {
	Ar string `json:"ar"`
	En string `json:"en"`
}

// Resolve returns the value for the requested language.
func (t Text) Resolve(lang Lang) string {
	if lang == English {
		return t.En
	}
	return t.Ar
}

// Fill returns a copy of t with each blank side replaced by the other side's
// value (fallback-fill). A pair that is blank on both sides is returned
// unchanged; callers detect that case with [Text.Blank].
func (t Text) Fill() Text {
	filled := t
	if strings.TrimSpace(filled.Ar) == "" {
		filled.Ar = filled.En
	}
	if strings.TrimSpace(filled.En) == "" {
		filled.En = filled.Ar
	}
	return filled
}

// Blank reports whether both sides are empty after trimming whitespace.
func (t Text) Blank() bool {
	return strings.TrimSpace(t.Ar) == "" && strings.TrimSpace(t.En) == ""
}
