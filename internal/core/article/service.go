// Copyright (c) 2026 Toma Beauty. All rights reserved.

package article

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tomabeauty/toma/internal/media"
	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/internal/platform/validate"
	"github.com/tomabeauty/toma/pkg/uuid"
)

// Ingestor pulls a remote image into object storage. Satisfied by
// [media.Ingestor]; tests substitute a fake.
type Ingestor interface {
	Ingest(context context.Context, sourceURL string) (*media.Image, error)
}

type Service struct {
	repo     Repository
	ingestor Ingestor
	logger   *slog.Logger
}

func NewService(repo Repository, ingestor Ingestor, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		ingestor: ingestor,
		logger:   logger,
	}
}

func (service *Service) ListArticles(context context.Context, filter Filter, limit, offset int) ([]*Article, int, error) {
	return service.repo.ListArticles(context, filter, limit, offset)
}

func (service *Service) GetArticle(context context.Context, id string) (*Article, error) {
	// A malformed id can never match a uuid column; treat it as absent
	// rather than letting the database reject the literal.
	if !uuid.Valid(id) {
		return nil, apperr.NotFound("Article")
	}
	return service.repo.GetArticle(context, id)
}

/*
CreateArticle validates and persists a new article.

Description: Fallback-fills every bilingual pair, validates the result
before any backend call, then — when an image URL was supplied — ingests the
image and inserts both rows transactionally. A failed ingestion aborts the
whole operation; no article is created.

Parameters:
  - context: context.Context
  - input: CreateInput (admin form payload)

Returns:
  - *Article: The created entity with server-assigned id and timestamp
  - error: Validation, ingestion, or storage failure
*/
func (service *Service) CreateArticle(context context.Context, input CreateInput) (*Article, error) {
	article := &Article{
		ID:        uuid.New(),
		Title:     input.Title.Fill(),
		Summary:   input.Summary.Fill(),
		Body:      input.Body.Fill(),
		Category:  strings.TrimSpace(input.Category),
		Published: input.Published,
	}

	imageURL := strings.TrimSpace(input.ImageURL)

	validator := &validate.Validator{}
	validator.Custom(FieldTitle, article.Title.Blank(), "At least one language is required")
	validator.Custom(FieldSummary, article.Summary.Blank(), "At least one language is required")
	validator.Custom(FieldBody, article.Body.Blank(), "At least one language is required")
	validator.Required(FieldCategory, article.Category).MaxLen(FieldCategory, article.Category, 100)
	if imageURL != "" {
		validator.URL(FieldImageURL, imageURL)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	var image *media.Image
	if imageURL != "" {
		ingested, err := service.ingestor.Ingest(context, imageURL)
		if err != nil {
			return nil, err
		}
		image = ingested
	}

	if err := service.repo.CreateArticle(context, article, image); err != nil {
		return nil, err
	}

	service.logger.Info("article_created",
		slog.String("article_id", article.ID),
		slog.String("category", article.Category),
		slog.Bool("has_image", image != nil),
	)
	return article, nil
}

func (service *Service) DeleteArticle(context context.Context, id string) error {
	// Idempotent: an id that cannot exist is already gone.
	if !uuid.Valid(id) {
		return nil
	}
	if err := service.repo.DeleteArticle(context, id); err != nil {
		return err
	}

	service.logger.Warn("article_deleted", slog.String("article_id", id))
	return nil
}
