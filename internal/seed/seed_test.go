// Copyright (c) 2026 Toma Beauty. All rights reserved.

package seed_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomabeauty/toma/internal/core/article"
	"github.com/tomabeauty/toma/internal/core/remedy"
	"github.com/tomabeauty/toma/internal/core/routine"
	"github.com/tomabeauty/toma/internal/core/section"
	"github.com/tomabeauty/toma/internal/core/tip"
	"github.com/tomabeauty/toma/internal/media"
	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/internal/platform/config"
	"github.com/tomabeauty/toma/internal/seed"
)

type fakeSections struct {
	byKey map[string]*section.Section
}

func newFakeSections() *fakeSections {
	return &fakeSections{byKey: make(map[string]*section.Section)}
}

func (f *fakeSections) ListSections(_ context.Context) ([]*section.Section, error) {
	sections := []*section.Section{}
	for _, s := range f.byKey {
		sections = append(sections, s)
	}
	return sections, nil
}

func (f *fakeSections) GetByKey(_ context.Context, key string) (*section.Section, error) {
	s, ok := f.byKey[key]
	if !ok {
		return nil, apperr.NotFound("Section")
	}
	return s, nil
}

func (f *fakeSections) UpsertSection(_ context.Context, s *section.Section) error {
	f.byKey[s.Key] = s
	return nil
}

type fakeTips struct {
	tips []*tip.Tip
}

func (f *fakeTips) ListTips(_ context.Context) ([]*tip.Tip, error) { return f.tips, nil }

func (f *fakeTips) CreateTip(_ context.Context, t *tip.Tip) error {
	f.tips = append(f.tips, t)
	return nil
}

func (f *fakeTips) Count(_ context.Context) (int, error) { return len(f.tips), nil }

type fakeArticles struct {
	articles []*article.Article
}

func (f *fakeArticles) ListArticles(_ context.Context, _ article.Filter, _, _ int) ([]*article.Article, int, error) {
	return f.articles, len(f.articles), nil
}

func (f *fakeArticles) GetArticle(_ context.Context, id string) (*article.Article, error) {
	return nil, apperr.NotFound("Article")
}

func (f *fakeArticles) CreateArticle(_ context.Context, a *article.Article, _ *media.Image) error {
	f.articles = append(f.articles, a)
	return nil
}

func (f *fakeArticles) DeleteArticle(_ context.Context, _ string) error { return nil }

type fakeRoutines struct {
	routines []*routine.Routine
}

func (f *fakeRoutines) ListRoutines(_ context.Context, _ routine.Filter, _, _ int) ([]*routine.Routine, int, error) {
	return f.routines, len(f.routines), nil
}

func (f *fakeRoutines) GetRoutine(_ context.Context, id string) (*routine.Routine, error) {
	return nil, apperr.NotFound("Routine")
}

func (f *fakeRoutines) CreateRoutine(_ context.Context, r *routine.Routine) error {
	f.routines = append(f.routines, r)
	return nil
}

func (f *fakeRoutines) DeleteRoutine(_ context.Context, _ string) error { return nil }

type fakeRemedies struct {
	remedies []*remedy.Remedy
}

func (f *fakeRemedies) ListRemedies(_ context.Context, _, _ int) ([]*remedy.Remedy, int, error) {
	return f.remedies, len(f.remedies), nil
}

func (f *fakeRemedies) GetRemedy(_ context.Context, id string) (*remedy.Remedy, error) {
	return nil, apperr.NotFound("Remedy")
}

func (f *fakeRemedies) CreateRemedy(_ context.Context, r *remedy.Remedy) error {
	f.remedies = append(f.remedies, r)
	return nil
}

func (f *fakeRemedies) DeleteRemedy(_ context.Context, _ string) error { return nil }

type harness struct {
	seeder   *seed.Seeder
	sections *fakeSections
	tips     *fakeTips
	articles *fakeArticles
	routines *fakeRoutines
	remedies *fakeRemedies
}

func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	h := &harness{
		sections: newFakeSections(),
		tips:     &fakeTips{},
		articles: &fakeArticles{},
		routines: &fakeRoutines{},
		remedies: &fakeRemedies{},
	}
	h.seeder = seed.New(
		cfg,
		h.sections,
		h.tips,
		article.NewService(h.articles, nil, logger),
		routine.NewService(h.routines, logger),
		remedy.NewService(h.remedies, logger),
		nil,
		logger,
	)
	return h
}

func TestRun_SeedsEverything(t *testing.T) {
	h := newHarness(t, &config.Config{SeedDemoContent: true})

	require.NoError(t, h.seeder.Run(context.Background()))

	assert.Len(t, h.sections.byKey, 4)
	assert.Contains(t, h.sections.byKey, section.KeyAbout)
	assert.Contains(t, h.sections.byKey, section.KeyVision)
	assert.Len(t, h.tips.tips, 2)
	assert.NotEmpty(t, h.articles.articles)
	assert.Len(t, h.routines.routines, 2)
	assert.Len(t, h.remedies.remedies, 1)

	// Seeded content must have passed the services' fallback fill.
	for _, seeded := range h.articles.articles {
		assert.NotEmpty(t, seeded.ID)
		assert.False(t, seeded.Title.Blank())
	}
	morning := h.routines.routines[0]
	require.Len(t, morning.Steps, 4)
	assert.Equal(t, 1, morning.Steps[0].Position)
	assert.Equal(t, 4, morning.Steps[3].Position)
}

func TestRun_SkipsDemoContentWhenDisabled(t *testing.T) {
	h := newHarness(t, &config.Config{SeedDemoContent: false})

	require.NoError(t, h.seeder.Run(context.Background()))

	assert.Len(t, h.sections.byKey, 4)
	assert.Len(t, h.tips.tips, 2)
	assert.Empty(t, h.articles.articles)
	assert.Empty(t, h.routines.routines)
	assert.Empty(t, h.remedies.remedies)
}

func TestRun_IsIdempotent(t *testing.T) {
	h := newHarness(t, &config.Config{SeedDemoContent: true})

	require.NoError(t, h.seeder.Run(context.Background()))
	require.NoError(t, h.seeder.Run(context.Background()))

	assert.Len(t, h.sections.byKey, 4)
	assert.Len(t, h.tips.tips, 2)
	assert.Len(t, h.routines.routines, 2)
	assert.Len(t, h.remedies.remedies, 1)
}
