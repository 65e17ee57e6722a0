// Copyright (c) 2026 Toma Beauty. All rights reserved.

// Package article manages the editorial article catalog: bilingual beauty
// write-ups, optionally carrying one ingested cover image.
package article

import (
	"time"

	"github.com/tomabeauty/toma/internal/media"
	"github.com/tomabeauty/toma/pkg/bilingual"
)

// Article is a published or draft editorial entry. Both sides of every
// bilingual pair are non-empty once the article exists.
type Article struct {
	ID        string         `json:"id"`
	Title     bilingual.Text `json:"title"`
	Summary   bilingual.Text `json:"summary"`
	Body      bilingual.Text `json:"body"`
	Category  string         `json:"category"`
	Published bool           `json:"published"`
	Image     *media.Image   `json:"image,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// CreateInput is the admin-supplied payload for creating an article.
// ImageURL, when present, is ingested into object storage before the
// article row exists; it never lands on the entity as-is.
type CreateInput struct {
	Title     bilingual.Text `json:"title"`
	Summary   bilingual.Text `json:"summary"`
	Body      bilingual.Text `json:"body"`
	Category  string         `json:"category"`
	Published bool           `json:"published"`
	ImageURL  string         `json:"image_url"`
}

// Filter holds the parameters for a paginated article listing.
type Filter struct {
	Category  string // exact match when non-empty
	Published *bool  // tri-state: nil lists drafts and published alike
}

const (
	FieldTitle    = "title"
	FieldSummary  = "summary"
	FieldBody     = "body"
	FieldCategory = "category"
	FieldImageURL = "image_url"
	FieldConfirm  = "confirm"
)
