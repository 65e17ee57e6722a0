// Copyright (c) 2026 Toma Beauty. All rights reserved.

package remedy_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomabeauty/toma/internal/core/remedy"
	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/pkg/bilingual"
)

type fakeRepo struct {
	created   *remedy.Remedy
	gotID     string
	deletedID string
}

func (repo *fakeRepo) ListRemedies(_ context.Context, _, _ int) ([]*remedy.Remedy, int, error) {
	return []*remedy.Remedy{}, 0, nil
}

func (repo *fakeRepo) GetRemedy(_ context.Context, id string) (*remedy.Remedy, error) {
	repo.gotID = id
	return nil, apperr.NotFound("Remedy")
}

func (repo *fakeRepo) CreateRemedy(_ context.Context, r *remedy.Remedy) error {
	repo.created = r
	return nil
}

func (repo *fakeRepo) DeleteRemedy(_ context.Context, id string) error {
	repo.deletedID = id
	return nil
}

func newService(repo *fakeRepo) *remedy.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return remedy.NewService(repo, logger)
}

/*
TestCreateRemedy_FillsAndOrders verifies ingredient ordering and bilingual
fallback-fill across the whole payload.
*/
func TestCreateRemedy_FillsAndOrders(t *testing.T) {
	repo := &fakeRepo{}
	service := newService(repo)

	created, err := service.CreateRemedy(context.Background(), remedy.CreateInput{
		Title:        bilingual.Text{Ar: "ماسك العسل"},
		Description:  bilingual.Text{Ar: "لترطيب البشرة"},
		Instructions: bilingual.Text{Ar: "اخلطي المكونات وضعيها لمدة ١٥ دقيقة"},
		Ingredients: []bilingual.Text{
			{Ar: "عسل"},
			{Ar: "زبادي", En: "Yogurt"},
			{En: "Lemon juice"},
		},
	})
	require.NoError(t, err)

	require.Len(t, created.Ingredients, 3)
	assert.Equal(t, 1, created.Ingredients[0].Position)
	assert.Equal(t, 3, created.Ingredients[2].Position)
	assert.Equal(t, "عسل", created.Ingredients[0].Name.En)
	assert.Equal(t, "Lemon juice", created.Ingredients[2].Name.Ar)
	assert.Equal(t, "ماسك العسل", created.Title.En)
	require.NotNil(t, repo.created)
}

/*
TestCreateRemedy_Validation checks required pairs and the non-empty
ingredient list rule.
*/
func TestCreateRemedy_Validation(t *testing.T) {
	tests := []struct {
		name        string
		input       remedy.CreateInput
		failedField string
	}{
		{
			name: "no_ingredients",
			input: remedy.CreateInput{
				Title:        bilingual.Text{En: "Honey mask"},
				Description:  bilingual.Text{En: "Hydrating"},
				Instructions: bilingual.Text{En: "Mix and apply"},
			},
			failedField: remedy.FieldIngredients,
		},
		{
			name: "blank_instructions",
			input: remedy.CreateInput{
				Title:       bilingual.Text{En: "Honey mask"},
				Description: bilingual.Text{En: "Hydrating"},
				Ingredients: []bilingual.Text{{En: "Honey"}},
			},
			failedField: remedy.FieldInstructions,
		},
		{
			name: "blank_ingredient",
			input: remedy.CreateInput{
				Title:        bilingual.Text{En: "Honey mask"},
				Description:  bilingual.Text{En: "Hydrating"},
				Instructions: bilingual.Text{En: "Mix and apply"},
				Ingredients:  []bilingual.Text{{En: "Honey"}, {Ar: "  "}},
			},
			failedField: "ingredients[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			service := newService(repo)

			_, err := service.CreateRemedy(context.Background(), tt.input)
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
TestDeleteRemedy_Idempotent verifies delete passes straight through.
*/
func TestDeleteRemedy_Idempotent(t *testing.T) {
	repo := &fakeRepo{}
	service := newService(repo)

	missing := "01920000-0000-7000-8000-000000000003"
	require.NoError(t, service.DeleteRemedy(context.Background(), missing))
	assert.Equal(t, missing, repo.deletedID)
}

/*
TestMalformedID_TreatedAsAbsent verifies that ids that cannot be UUIDs never
reach the store: get reports not-found and delete stays an idempotent no-op.
*/
func TestMalformedID_TreatedAsAbsent(t *testing.T) {
	repo := &fakeRepo{}
	service := newService(repo)

	_, err := service.GetRemedy(context.Background(), "gone-already")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Empty(t, repo.gotID)

	require.NoError(t, service.DeleteRemedy(context.Background(), "gone-already"))
	assert.Empty(t, repo.deletedID)
}
