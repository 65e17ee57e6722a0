// Copyright (c) 2026 Toma Beauty. All rights reserved.

package media

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tomabeauty/toma/internal/platform/database/schema"
	"github.com/tomabeauty/toma/internal/platform/dberr"
)

// Querier is the subset of pgx satisfied by both *pgxpool.Pool and pgx.Tx.
//
// Image rows are inserted inside the owning entity's transaction, so the
// insert helper must accept either.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// InsertImage persists an image reference row.
//
// # Transactionality
//
// Callers creating an article with an ingested image pass their open pgx.Tx
// here so the image row and the article row commit or roll back together.
func InsertImage(context context.Context, q Querier, image *Image) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`,
		schema.ContentImage.Table,
		schema.ContentImage.ID, schema.ContentImage.PublicURL, schema.ContentImage.SourceURL,
		schema.ContentImage.Bucket, schema.ContentImage.Key, schema.ContentImage.MimeType,
		schema.ContentImage.SizeBytes, schema.ContentImage.Cached,
		schema.ContentImage.CreatedAt,
	)

	err := q.QueryRow(context, query,
		image.ID, image.PublicURL, image.SourceURL,
		image.Bucket, image.Key, image.MimeType,
		image.SizeBytes, image.Cached,
	).Scan(&image.CreatedAt)

	return dberr.Wrap(err, "insert_image")
}
