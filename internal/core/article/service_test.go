// Copyright (c) 2026 Toma Beauty. All rights reserved.

package article_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomabeauty/toma/internal/core/article"
	"github.com/tomabeauty/toma/internal/media"
	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/pkg/bilingual"
)

// fakeRepo records calls so tests can assert what reached the store.
type fakeRepo struct {
	created      *article.Article
	createdImage *media.Image
	gotID        string
	deletedID    string
	createErr    error
}

func (repo *fakeRepo) ListArticles(_ context.Context, _ article.Filter, _, _ int) ([]*article.Article, int, error) {
	return []*article.Article{}, 0, nil
}

func (repo *fakeRepo) GetArticle(_ context.Context, id string) (*article.Article, error) {
	repo.gotID = id
	return nil, apperr.NotFound("Article")
}

func (repo *fakeRepo) CreateArticle(_ context.Context, a *article.Article, image *media.Image) error {
	if repo.createErr != nil {
		return repo.createErr
	}
	repo.created = a
	repo.createdImage = image
	return nil
}

func (repo *fakeRepo) DeleteArticle(_ context.Context, id string) error {
	repo.deletedID = id
	return nil
}

// fakeIngestor returns a canned image or error.
type fakeIngestor struct {
	image  *media.Image
	err    error
	called bool
}

func (ingestor *fakeIngestor) Ingest(_ context.Context, sourceURL string) (*media.Image, error) {
	ingestor.called = true
	if ingestor.err != nil {
		return nil, ingestor.err
	}
	image := *ingestor.image
	image.SourceURL = sourceURL
	return &image, nil
}

func newService(repo *fakeRepo, ingestor *fakeIngestor) *article.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return article.NewService(repo, ingestor, logger)
}

/*
TestCreateArticle_FallbackFill verifies that a single-language payload comes
out with both sides of every pair populated.
*/
func TestCreateArticle_FallbackFill(t *testing.T) {
	repo := &fakeRepo{}
	service := newService(repo, &fakeIngestor{})

	created, err := service.CreateArticle(context.Background(), article.CreateInput{
		Title:    bilingual.Text{Ar: "روتين العناية بالبشرة"},
		Summary:  bilingual.Text{Ar: "ملخص"},
		Body:     bilingual.Text{Ar: "المحتوى الكامل"},
		Category: "skincare",
	})
	require.NoError(t, err)

	assert.Equal(t, "روتين العناية بالبشرة", created.Title.Ar)
	assert.Equal(t, "روتين العناية بالبشرة", created.Title.En)
	assert.Equal(t, "المحتوى الكامل", created.Body.En)
	assert.NotEmpty(t, created.ID)
	require.NotNil(t, repo.created)
	assert.Nil(t, repo.createdImage, "no image URL means no image row")
}

/*
TestCreateArticle_Validation checks that invalid payloads are refused before
the store is touched.
*/
func TestCreateArticle_Validation(t *testing.T) {
	tests := []struct {
		name        string
		input       article.CreateInput
		failedField string
	}{
		{
			name: "both_title_sides_blank",
			input: article.CreateInput{
				Title:    bilingual.Text{Ar: "  ", En: ""},
				Summary:  bilingual.Text{En: "summary"},
				Body:     bilingual.Text{En: "body"},
				Category: "skincare",
			},
			failedField: article.FieldTitle,
		},
		{
			name: "missing_category",
			input: article.CreateInput{
				Title:   bilingual.Text{En: "Title"},
				Summary: bilingual.Text{En: "summary"},
				Body:    bilingual.Text{En: "body"},
			},
			failedField: article.FieldCategory,
		},
		{
			name: "malformed_image_url",
			input: article.CreateInput{
				Title:    bilingual.Text{En: "Title"},
				Summary:  bilingual.Text{En: "summary"},
				Body:     bilingual.Text{En: "body"},
				Category: "skincare",
				ImageURL: "not a url",
			},
			failedField: article.FieldImageURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			ingestor := &fakeIngestor{}
			service := newService(repo, ingestor)

			_, err := service.CreateArticle(context.Background(), tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.failedField, ae.Details[0].Field)

			assert.Nil(t, repo.created, "store must not be reached on validation failure")
			assert.False(t, ingestor.called, "ingestion must not run on validation failure")
		})
	}
}

/*
TestCreateArticle_WithImage walks the full ingestion path: the image is
fetched and handed to the store alongside the article.
*/
func TestCreateArticle_WithImage(t *testing.T) {
	repo := &fakeRepo{}
	ingestor := &fakeIngestor{image: &media.Image{
		ID:        "img-1",
		PublicURL: "https://cdn.test/articles/1-ab.png",
		MimeType:  "image/png",
		Cached:    true,
	}}
	service := newService(repo, ingestor)

	_, err := service.CreateArticle(context.Background(), article.CreateInput{
		Title:    bilingual.Text{En: "Rose water benefits"},
		Summary:  bilingual.Text{En: "summary"},
		Body:     bilingual.Text{En: "body"},
		Category: "natural",
		ImageURL: "https://example.com/rose.png",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.createdImage)
	assert.Equal(t, "img-1", repo.createdImage.ID)
	assert.Equal(t, "https://example.com/rose.png", repo.createdImage.SourceURL)
}

/*
TestCreateArticle_IngestFailureAborts confirms the all-or-nothing rule: a
failed image fetch creates neither the image nor the article.
*/
func TestCreateArticle_IngestFailureAborts(t *testing.T) {
	repo := &fakeRepo{}
	ingestor := &fakeIngestor{err: apperr.ImageFetchFailed("https://example.com/gone.png", errors.New("connection refused"))}
	service := newService(repo, ingestor)

	_, err := service.CreateArticle(context.Background(), article.CreateInput{
		Title:    bilingual.Text{En: "Title"},
		Summary:  bilingual.Text{En: "summary"},
		Body:     bilingual.Text{En: "body"},
		Category: "skincare",
		ImageURL: "https://example.com/gone.png",
	})
	require.Error(t, err)
	assert.Equal(t, "IMAGE_FETCH_FAILED", apperr.As(err).Code)
	assert.Nil(t, repo.created)
}

/*
TestDeleteArticle_Idempotent verifies delete passes through regardless of
whether the row existed.
*/
func TestDeleteArticle_Idempotent(t *testing.T) {
	repo := &fakeRepo{}
	service := newService(repo, &fakeIngestor{})

	err := service.DeleteArticle(context.Background(), "01920000-0000-7000-8000-000000000001")
	require.NoError(t, err)
	assert.Equal(t, "01920000-0000-7000-8000-000000000001", repo.deletedID)
}

/*
TestMalformedID_TreatedAsAbsent verifies that ids that cannot be UUIDs never
reach the store: get reports not-found and delete stays an idempotent no-op
instead of surfacing a database literal error.
*/
func TestMalformedID_TreatedAsAbsent(t *testing.T) {
	repo := &fakeRepo{}
	service := newService(repo, &fakeIngestor{})

	_, err := service.GetArticle(context.Background(), "abc")
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Empty(t, repo.gotID)

	err = service.DeleteArticle(context.Background(), "abc")
	require.NoError(t, err)
	assert.Empty(t, repo.deletedID)
}
