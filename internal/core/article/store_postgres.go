// Copyright (c) 2026 Toma Beauty. All rights reserved.

package article

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tomabeauty/toma/internal/media"
	"github.com/tomabeauty/toma/internal/platform/database/schema"
	"github.com/tomabeauty/toma/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// selectClause joins the optional image reference so a single round trip
// hydrates the article together with its cover.
func selectClause() string {
	a := schema.ContentArticle
	i := schema.ContentImage
	return fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
		       i.%s, i.%s, i.%s, i.%s, i.%s, i.%s
		FROM %s a
		LEFT JOIN %s i ON i.%s = a.%s
	`,
		a.ID, a.TitleAr, a.TitleEn, a.SummaryAr, a.SummaryEn, a.BodyAr, a.BodyEn,
		a.Category, a.Published, a.CreatedAt,
		i.ID, i.PublicURL, i.MimeType, i.SizeBytes, i.Cached, i.CreatedAt,
		a.Table, i.Table, i.ID, a.ImageID,
	)
}

// scanArticle reads one joined row into an Article, attaching the image
// reference only when the join matched.
func scanArticle(row pgx.Row) (*Article, error) {
	a := &Article{}
	var (
		imageID      *string
		publicURL    *string
		mimeType     *string
		sizeBytes    *int64
		cached       *bool
		imageCreated *time.Time
	)

	err := row.Scan(
		&a.ID, &a.Title.Ar, &a.Title.En, &a.Summary.Ar, &a.Summary.En,
		&a.Body.Ar, &a.Body.En, &a.Category, &a.Published, &a.CreatedAt,
		&imageID, &publicURL, &mimeType, &sizeBytes, &cached, &imageCreated,
	)
	if err != nil {
		return nil, err
	}

	if imageID != nil {
		a.Image = &media.Image{
			ID:        *imageID,
			PublicURL: *publicURL,
			MimeType:  *mimeType,
			SizeBytes: *sizeBytes,
			Cached:    *cached,
			CreatedAt: *imageCreated,
		}
	}
	return a, nil
}

func (repository *PostgresRepository) ListArticles(context context.Context, filter Filter, limit, offset int) ([]*Article, int, error) {
	a := schema.ContentArticle

	query := selectClause()
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s a`, a.Table)

	conditions := ""
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions += andWhere(conditions) + fmt.Sprintf("a.%s = $%d", a.Category, len(args))
	}
	if filter.Published != nil {
		args = append(args, *filter.Published)
		conditions += andWhere(conditions) + fmt.Sprintf("a.%s = $%d", a.Published, len(args))
	}

	query += conditions
	countQuery += conditions
	countArgs := append([]any{}, args...)

	query += fmt.Sprintf(" ORDER BY a.%s DESC LIMIT $", a.CreatedAt) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_articles")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_articles")
	}
	defer rows.Close()

	articles := []*Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_article")
		}
		articles = append(articles, article)
	}

	return articles, total, nil
}

func (repository *PostgresRepository) GetArticle(context context.Context, id string) (*Article, error) {
	a := schema.ContentArticle
	query := selectClause() + fmt.Sprintf(` WHERE a.%s = $1`, a.ID)

	article, err := scanArticle(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_article")
	}
	return article, nil
}

func (repository *PostgresRepository) CreateArticle(context context.Context, article *Article, image *media.Image) error {
	a := schema.ContentArticle

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING %s
	`,
		a.Table, a.ID, a.TitleAr, a.TitleEn, a.SummaryAr, a.SummaryEn,
		a.BodyAr, a.BodyEn, a.Category, a.ImageID, a.Published, a.CreatedAt,
		a.CreatedAt,
	)

	var imageID *string
	if image != nil {
		imageID = &image.ID
	}

	insertArticle := func(q media.Querier) error {
		return q.QueryRow(context, insert,
			article.ID, article.Title.Ar, article.Title.En,
			article.Summary.Ar, article.Summary.En,
			article.Body.Ar, article.Body.En,
			article.Category, imageID, article.Published,
		).Scan(&article.CreatedAt)
	}

	// Without an image a single statement suffices.
	if image == nil {
		return dberr.Wrap(insertArticle(repository.db), "create_article")
	}

	// The image reference and the article must both exist or neither.
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_article")
	}
	defer func() { _ = transaction.Rollback(context) }()

	if err := media.InsertImage(context, transaction, image); err != nil {
		return err
	}
	if err := insertArticle(transaction); err != nil {
		return dberr.Wrap(err, "create_article")
	}
	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_create_article")
	}

	article.Image = image
	return nil
}

func (repository *PostgresRepository) DeleteArticle(context context.Context, id string) error {
	a := schema.ContentArticle
	i := schema.ContentImage

	// Removes the article and its owned image reference in one statement.
	// The stored object stays in the bucket; keys are never reused.
	query := fmt.Sprintf(`
		WITH removed AS (
			DELETE FROM %s WHERE %s = $1 RETURNING %s
		)
		DELETE FROM %s WHERE %s IN (SELECT %s FROM removed WHERE %s IS NOT NULL)
	`,
		a.Table, a.ID, a.ImageID,
		i.Table, i.ID, a.ImageID, a.ImageID,
	)

	// An id that matched nothing is a success: the row is gone either way.
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_article")
}

func andWhere(existing string) string {
	if existing == "" {
		return " WHERE "
	}
	return " AND "
}

func itos(i int) string {
	return strconv.Itoa(i)
}
