// Copyright (c) 2026 Toma Beauty. All rights reserved.

// Package remedy manages natural home remedies: a bilingual description,
// an ordered ingredient list, and preparation instructions.
package remedy

import (
	"time"

	"github.com/tomabeauty/toma/pkg/bilingual"
)

// Remedy is one natural recipe.
type Remedy struct {
	ID           string         `json:"id"`
	Title        bilingual.Text `json:"title"`
	Description  bilingual.Text `json:"description"`
	Instructions bilingual.Text `json:"instructions"`
	Ingredients  []*Ingredient  `json:"ingredients"`
	CreatedAt    time.Time      `json:"created_at"`
}

// Ingredient is one ordered entry of a remedy's ingredient list. Position
// is dense and 1-based within the owning remedy.
type Ingredient struct {
	ID       string         `json:"id"`
	Position int            `json:"position"`
	Name     bilingual.Text `json:"name"`
}

// CreateInput is the admin-supplied payload for creating a remedy.
// Ingredient order is taken from slice order.
type CreateInput struct {
	Title        bilingual.Text   `json:"title"`
	Description  bilingual.Text   `json:"description"`
	Instructions bilingual.Text   `json:"instructions"`
	Ingredients  []bilingual.Text `json:"ingredients"`
}

const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldInstructions = "instructions"
	FieldIngredients  = "ingredients"
	FieldConfirm      = "confirm"
)
