// Copyright (c) 2026 Toma Beauty. All rights reserved.

package tip

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tomabeauty/toma/internal/platform/database/schema"
	"github.com/tomabeauty/toma/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListTips(context context.Context) ([]*Tip, error) {
	t := schema.ContentTip

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
	`,
		t.ID, t.BodyAr, t.BodyEn, t.CreatedAt,
		t.Table, t.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tips")
	}
	defer rows.Close()

	tips := []*Tip{}
	for rows.Next() {
		tip := &Tip{}
		if err := rows.Scan(&tip.ID, &tip.Body.Ar, &tip.Body.En, &tip.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_tip")
		}
		tips = append(tips, tip)
	}

	return tips, nil
}

func (repository *PostgresRepository) CreateTip(context context.Context, tip *Tip) error {
	t := schema.ContentTip

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s
	`, t.Table, t.ID, t.BodyAr, t.BodyEn, t.CreatedAt, t.CreatedAt)

	err := repository.db.QueryRow(context, query, tip.ID, tip.Body.Ar, tip.Body.En).Scan(&tip.CreatedAt)
	return dberr.Wrap(err, "create_tip")
}

func (repository *PostgresRepository) Count(context context.Context) (int, error) {
	t := schema.ContentTip

	var total int
	err := repository.db.QueryRow(context, fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)).Scan(&total)
	if err != nil {
		return 0, dberr.Wrap(err, "count_tips")
	}
	return total, nil
}
