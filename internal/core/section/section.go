// Copyright (c) 2026 Toma Beauty. All rights reserved.

// Package section serves the static bilingual page blocks (about, founder,
// mission, vision). Sections are created by the seed pass and read-only
// over HTTP.
package section

import (
	"time"

	"github.com/tomabeauty/toma/pkg/bilingual"
)

// Well-known section keys.
const (
	KeyAbout   = "about"
	KeyFounder = "founder"
	KeyMission = "mission"
	KeyVision  = "vision"
)

// Section is one static page block, addressed by its unique key.
type Section struct {
	ID        string         `json:"id"`
	Key       string         `json:"key"`
	Title     bilingual.Text `json:"title"`
	Body      bilingual.Text `json:"body"`
	ImageURL  *string        `json:"image_url"`
	CreatedAt time.Time      `json:"created_at"`
}
