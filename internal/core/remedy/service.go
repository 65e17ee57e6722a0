// Copyright (c) 2026 Toma Beauty. All rights reserved.

package remedy

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

func (service *Service) ListRemedies(context context.Context, limit, offset int) ([]*Remedy, int, error) {
	return service.repo.ListRemedies(context, limit, offset)
}

func (service *Service) GetRemedy(context context.Context, id string) (*Remedy, error) {
	// A malformed id can never match a uuid column; treat it as absent
	// rather than letting the database reject the literal.
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Remedy")
	}
	return service.repo.GetRemedy(context, id)
}

// CreateRemedy fallback-fills every bilingual pair, validates, assigns
// ingredient positions from slice order, and persists the remedy with its
// ingredients in one transaction.
func (service *Service) CreateRemedy(context context.Context, input CreateInput) (*Remedy, error) {
	remedy := &Remedy{
		ID:           uuid.New(),
		Title:        input.Title.Fill(),
		Description:  input.Description.Fill(),
		Instructions: input.Instructions.Fill(),
		Ingredients:  make([]*Ingredient, 0, len(input.Ingredients)),
	}

	validator := &validate.Validator{}
	validator.Custom(FieldTitle, remedy.Title.Blank(), "At least one language is required")
	validator.Custom(FieldDescription, remedy.Description.Blank(), "At least one language is required")
	validator.Custom(FieldInstructions, remedy.Instructions.Blank(), "At least one language is required")
	validator.Custom(FieldIngredients, len(input.Ingredients) == 0, "A remedy needs at least one ingredient")

	for index, name := range input.Ingredients {
		ingredient := &Ingredient{
			ID:       uuid.New(),
			Position: index + 1,
			Name:     name.Fill(),
		}
		validator.Custom(
			fmt.Sprintf("%s[%d]", FieldIngredients, index),
			ingredient.Name.Blank(), "At least one language is required",
		)
		remedy.Ingredients = append(remedy.Ingredients, ingredient)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateRemedy(context, remedy); err != nil {
		return nil, err
	}

	service.logger.Info("remedy_created",
		slog.String("remedy_id", remedy.ID),
		slog.Int("ingredients", len(remedy.Ingredients)),
	)
	return remedy, nil
}

func (service *Service) DeleteRemedy(context context.Context, id string) error {
	// Idempotent: an id that cannot exist is already gone.
	if !uuid.Valid(id) {
		return nil
	}
	if err := service.repo.DeleteRemedy(context, id); err != nil {
		return err
	}

	service.logger.Warn("remedy_deleted", slog.String("remedy_id", id))
	return nil
}
