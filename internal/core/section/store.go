// Copyright (c) 2026 Toma Beauty. All rights reserved.

package section

import "context"

type Repository interface {
	ListSections(context context.Context) ([]*Section, error)
	GetByKey(context context.Context, key string) (*Section, error)

	// UpsertSection inserts or refreshes a section by key. Used by the
	// seed pass only.
	UpsertSection(context context.Context, section *Section) error
}
