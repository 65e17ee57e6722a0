// Copyright (c) 2026 Toma Beauty. All rights reserved.

package article

import (
	"context"

	"github.com/tomabeauty/toma/internal/media"
)

// Repository defines the data access contract for articles.
type Repository interface {
	ListArticles(context context.Context, filter Filter, limit, offset int) ([]*Article, int, error)
	GetArticle(context context.Context, id string) (*Article, error)

	// CreateArticle persists the article, and when image is non-nil inserts
	// the image reference row in the same transaction.
	CreateArticle(context context.Context, article *Article, image *media.Image) error

	// DeleteArticle removes the article. Deleting an id that does not exist
	// is not an error.
	DeleteArticle(context context.Context, id string) error
}
