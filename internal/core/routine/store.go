// Copyright (c) 2026 Toma Beauty. All rights reserved.

package routine

import "context"

// Repository defines the data access contract for routines and their steps.
type Repository interface {
	// ListRoutines returns routines with steps hydrated, newest first.
	ListRoutines(context context.Context, filter Filter, limit, offset int) ([]*Routine, int, error)
	GetRoutine(context context.Context, id string) (*Routine, error)

	// CreateRoutine persists the routine and all its steps in one
	// transaction.
	CreateRoutine(context context.Context, routine *Routine) error

	// DeleteRoutine removes the routine; steps cascade. Deleting an id
	// that does not exist is not an error.
	DeleteRoutine(context context.Context, id string) error
}
