// Copyright (c) 2026 Toma Beauty. All rights reserved.

// Package routine manages morning and evening beauty routines, each an
// ordered sequence of bilingual steps.
package routine

import (
	"time"

	"github.com/tomabeauty/toma/pkg/bilingual"
)

// Categories a routine can belong to.
const (
	CategoryMorning = "morning"
	CategoryEvening = "evening"
)

// Routine is a named sequence of steps for one part of the day.
type Routine struct {
	ID          string         `json:"id"`
	Title       bilingual.Text `json:"title"`
	Description bilingual.Text `json:"description"`
	Category    string         `json:"category"`
	Steps       []*Step        `json:"steps"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Step is one ordered entry of a routine. Position is dense and 1-based
// within the owning routine. Body is optional as a whole — many routines
// are authored as bare step titles — but when either language is supplied
// the pair is fallback-filled like every other bilingual field.
type Step struct {
	ID       string         `json:"id"`
	Position int            `json:"position"`
	Title    bilingual.Text `json:"title"`
	Body     bilingual.Text `json:"body"`
}

// CreateInput is the admin-supplied payload for creating a routine. Step
// order is taken from slice order; positions are assigned server-side.
type CreateInput struct {
	Title       bilingual.Text `json:"title"`
	Description bilingual.Text `json:"description"`
	Category    string         `json:"category"`
	Steps       []StepInput    `json:"steps"`
}

// StepInput is one step of a create payload.
type StepInput struct {
	Title bilingual.Text `json:"title"`
	Body  bilingual.Text `json:"body"`
}

// Filter holds the parameters for a paginated routine listing.
type Filter struct {
	Category string // morning or evening; empty lists both
}

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldSteps       = "steps"
	FieldConfirm     = "confirm"
)
