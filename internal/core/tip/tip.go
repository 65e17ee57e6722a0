// Copyright (c) 2026 Toma Beauty. All rights reserved.

// Package tip serves the rotating one-line beauty tips. Tips are created by
// the seed pass and read-only over HTTP.
package tip

import (
	"time"

	"github.com/tomabeauty/toma/pkg/bilingual"
)

// Tip is one short bilingual hint.
type Tip struct {
	ID        string         `json:"id"`
	Body      bilingual.Text `json:"body"`
	CreatedAt time.Time      `json:"created_at"`
}
