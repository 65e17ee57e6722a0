// Copyright (c) 2026 Toma Beauty. All rights reserved.

package tip

import "context"

type Repository interface {
	ListTips(context context.Context) ([]*Tip, error)

	// CreateTip is used by the seed pass only.
	CreateTip(context context.Context, tip *Tip) error

	// Count supports the seed pass's already-seeded check.
	Count(context context.Context) (int, error)
}
