// Copyright (c) 2026 Toma Beauty. All rights reserved.

package tip_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomabeauty/toma/internal/core/tip"
	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/pkg/bilingual"
)

type fakeRepo struct {
	tips []*tip.Tip
}

func (repo *fakeRepo) ListTips(_ context.Context) ([]*tip.Tip, error) { return repo.tips, nil }
func (repo *fakeRepo) CreateTip(_ context.Context, t *tip.Tip) error {
	repo.tips = append(repo.tips, t)
	return nil
}
func (repo *fakeRepo) Count(_ context.Context) (int, error) { return len(repo.tips), nil }

func newService(repo *fakeRepo) *tip.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return tip.NewService(repo, logger)
}

/*
TestTipOfTheDay_Deterministic verifies the rotation is stable within a day
and always picks from the stored set.
*/
func TestTipOfTheDay_Deterministic(t *testing.T) {
	repo := &fakeRepo{tips: []*tip.Tip{
		{ID: "1", Body: bilingual.Text{Ar: "اشربي الماء", En: "Drink water"}},
		{ID: "2", Body: bilingual.Text{Ar: "نامي جيدا", En: "Sleep well"}},
		{ID: "3", Body: bilingual.Text{Ar: "واقي الشمس", En: "Wear sunscreen"}},
	}}
	service := newService(repo)

	first, err := service.TipOfTheDay(context.Background())
	require.NoError(t, err)
	second, err := service.TipOfTheDay(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	ids := []string{"1", "2", "3"}
	assert.Contains(t, ids, first.ID)
}

/*
TestTipOfTheDay_Empty maps an empty tip set to NOT_FOUND.
*/
func TestTipOfTheDay_Empty(t *testing.T) {
	service := newService(&fakeRepo{})

	_, err := service.TipOfTheDay(context.Background())
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
