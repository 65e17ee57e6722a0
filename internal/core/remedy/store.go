// Copyright (c) 2026 Toma Beauty. All rights reserved.

package remedy

import "context"

// Repository defines the data access contract for remedies and their
// ingredients.
type Repository interface {
	// ListRemedies returns remedies with ingredients hydrated, newest first.
	ListRemedies(context context.Context, limit, offset int) ([]*Remedy, int, error)
	GetRemedy(context context.Context, id string) (*Remedy, error)

	// CreateRemedy persists the remedy and all its ingredients in one
	// transaction.
	CreateRemedy(context context.Context, remedy *Remedy) error

	// DeleteRemedy removes the remedy; ingredients cascade. Deleting an id
	// that does not exist is not an error.
	DeleteRemedy(context context.Context, id string) error
}
