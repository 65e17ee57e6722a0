// Copyright (c) 2026 Toma Beauty. All rights reserved.

package routine_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomabeauty/toma/internal/core/routine"
	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/pkg/bilingual"
)

type fakeRepo struct {
	created   *routine.Routine
	gotID     string
	deletedID string
}

func (repo *fakeRepo) ListRoutines(_ context.Context, _ routine.Filter, _, _ int) ([]*routine.Routine, int, error) {
	return []*routine.Routine{}, 0, nil
}

func (repo *fakeRepo) GetRoutine(_ context.Context, id string) (*routine.Routine, error) {
	repo.gotID = id
	return nil, apperr.NotFound("Routine")
}

func (repo *fakeRepo) CreateRoutine(_ context.Context, r *routine.Routine) error {
	repo.created = r
	return nil
}

func (repo *fakeRepo) DeleteRoutine(_ context.Context, id string) error {
	repo.deletedID = id
	return nil
}

func newService(repo *fakeRepo) *routine.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return routine.NewService(repo, logger)
}

/*
TestCreateRoutine_AssignsPositions verifies steps get dense 1-based
positions in payload order and inherit fallback-fill.
*/
func TestCreateRoutine_AssignsPositions(t *testing.T) {
	repo := &fakeRepo{}
	service := newService(repo)

	created, err := service.CreateRoutine(context.Background(), routine.CreateInput{
		Title:       bilingual.Text{Ar: "روتين الصباح"},
		Description: bilingual.Text{Ar: "خطوات العناية الصباحية"},
		Category:    routine.CategoryMorning,
		Steps: []routine.StepInput{
			{Title: bilingual.Text{Ar: "غسل الوجه"}, Body: bilingual.Text{Ar: "بالماء الفاتر"}},
			{Title: bilingual.Text{En: "Moisturize"}, Body: bilingual.Text{En: "Apply evenly"}},
			{Title: bilingual.Text{Ar: "واقي الشمس", En: "Sunscreen"}},
		},
	})
	require.NoError(t, err)

	require.Len(t, created.Steps, 3)
	for index, step := range created.Steps {
		assert.Equal(t, index+1, step.Position)
		assert.NotEmpty(t, step.ID)
	}

	// Fallback-fill extends to steps.
	assert.Equal(t, "غسل الوجه", created.Steps[0].Title.En)
	assert.Equal(t, "Moisturize", created.Steps[1].Title.Ar)
	assert.Equal(t, "روتين الصباح", created.Title.En)

	// A one-sided body fills; an absent body stays empty (title-only steps
	// are valid authoring).
	assert.Equal(t, "بالماء الفاتر", created.Steps[0].Body.En)
	assert.True(t, created.Steps[2].Body.Blank())

	require.NotNil(t, repo.created)
}

/*
TestCreateRoutine_Validation checks category, pair, and step requirements.
*/
func TestCreateRoutine_Validation(t *testing.T) {
	validStep := []routine.StepInput{{Title: bilingual.Text{En: "Cleanse"}, Body: bilingual.Text{En: "Gently"}}}

	tests := []struct {
		name        string
		input       routine.CreateInput
		failedField string
	}{
		{
			name: "unknown_category",
			input: routine.CreateInput{
				Title:       bilingual.Text{En: "Routine"},
				Description: bilingual.Text{En: "Desc"},
				Category:    "afternoon",
				Steps:       validStep,
			},
			failedField: routine.FieldCategory,
		},
		{
			name: "no_steps",
			input: routine.CreateInput{
				Title:       bilingual.Text{En: "Routine"},
				Description: bilingual.Text{En: "Desc"},
				Category:    routine.CategoryEvening,
			},
			failedField: routine.FieldSteps,
		},
		{
			name: "blank_step_title",
			input: routine.CreateInput{
				Title:       bilingual.Text{En: "Routine"},
				Description: bilingual.Text{En: "Desc"},
				Category:    routine.CategoryEvening,
				Steps:       []routine.StepInput{{Body: bilingual.Text{En: "Body only"}}},
			},
			failedField: "steps[0].title",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			service := newService(repo)

			_, err := service.CreateRoutine(context.Background(), tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.failedField, ae.Details[0].Field)
			assert.Nil(t, repo.created)
		})
	}
}

/*
TestDeleteRoutine_Idempotent verifies delete passes straight through.
*/
func TestDeleteRoutine_Idempotent(t *testing.T) {
	repo := &fakeRepo{}
	service := newService(repo)

	missing := "01920000-0000-7000-8000-000000000002"
	require.NoError(t, service.DeleteRoutine(context.Background(), missing))
	assert.Equal(t, missing, repo.deletedID)
}

/*
TestMalformedID_TreatedAsAbsent verifies that ids that cannot be UUIDs never
reach the store: get reports not-found and delete stays an idempotent no-op.
*/
func TestMalformedID_TreatedAsAbsent(t *testing.T) {
	repo := &fakeRepo{}
	service := newService(repo)

	_, err := service.GetRoutine(context.Background(), "some-id")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Empty(t, repo.gotID)

	require.NoError(t, service.DeleteRoutine(context.Background(), "some-id"))
	assert.Empty(t, repo.deletedID)
}
