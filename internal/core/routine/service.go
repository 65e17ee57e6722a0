// Copyright (c) 2026 Toma Beauty. All rights reserved.

package routine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/internal/platform/validate"
	"github.com/tomabeauty/toma/pkg/uuid"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListRoutines(context context.Context, filter Filter, limit, offset int) ([]*Routine, int, error) {
	return service.repo.ListRoutines(context, filter, limit, offset)
}

func (service *Service) GetRoutine(context context.Context, id string) (*Routine, error) {
	// A malformed id can never match a uuid column; treat it as absent
	// rather than letting the database reject the literal.
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Routine")
	}
	return service.repo.GetRoutine(context, id)
}

/*
CreateRoutine validates and persists a new routine with its steps.

Description: Fallback-fills every bilingual pair on the routine and each
step, assigns dense 1-based positions from the payload's slice order, and
persists everything in one transaction.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *Routine: The created entity with ids, positions, and timestamp
  - error: Validation or storage failure
*/
func (service *Service) CreateRoutine(context context.Context, input CreateInput) (*Routine, error) {
	routine := &Routine{
		ID:          uuid.New(),
		Title:       input.Title.Fill(),
		Description: input.Description.Fill(),
		Category:    input.Category,
		Steps:       make([]*Step, 0, len(input.Steps)),
	}

	validator := &validate.Validator{}
	validator.Custom(FieldTitle, routine.Title.Blank(), "At least one language is required")
	validator.Custom(FieldDescription, routine.Description.Blank(), "At least one language is required")
	validator.OneOf(FieldCategory, routine.Category, CategoryMorning, CategoryEvening)
	validator.Custom(FieldSteps, len(input.Steps) == 0, "A routine needs at least one step")

	for index, stepInput := range input.Steps {
		step := &Step{
			ID:       uuid.New(),
			Position: index + 1,
			Title:    stepInput.Title.Fill(),
			Body:     stepInput.Body.Fill(),
		}
		validator.Custom(
			fmt.Sprintf("%s[%d].%s", FieldSteps, index, FieldTitle),
			step.Title.Blank(), "At least one language is required",
		)
		routine.Steps = append(routine.Steps, step)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateRoutine(context, routine); err != nil {
		return nil, err
	}

	service.logger.Info("routine_created",
		slog.String("routine_id", routine.ID),
		slog.String("category", routine.Category),
		slog.Int("steps", len(routine.Steps)),
	)
	return routine, nil
}

func (service *Service) DeleteRoutine(context context.Context, id string) error {
	// Idempotent: an id that cannot exist is already gone.
	if !uuid.Valid(id) {
		return nil
	}
	if err := service.repo.DeleteRoutine(context, id); err != nil {
		return err
	}

	service.logger.Warn("routine_deleted", slog.String("routine_id", id))
	return nil
}
