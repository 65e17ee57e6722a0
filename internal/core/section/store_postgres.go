// Copyright (c) 2026 Toma Beauty. All rights reserved.

package section

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

func (repository *PostgresRepository) ListSections(context context.Context) ([]*Section, error) {
	s := schema.ContentSection

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		s.ID, s.Key, s.TitleAr, s.TitleEn, s.BodyAr, s.BodyEn, s.ImageURL, s.CreatedAt,
		s.Table, s.Key,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_sections")
	}
	defer rows.Close()

	sections := []*Section{}
	for rows.Next() {
		section := &Section{}
		if err := rows.Scan(
			&section.ID, &section.Key, &section.Title.Ar, &section.Title.En,
			&section.Body.Ar, &section.Body.En, &section.ImageURL, &section.CreatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_section")
		}
		sections = append(sections, section)
	}

	return sections, nil
}

func (repository *PostgresRepository) GetByKey(context context.Context, key string) (*Section, error) {
	s := schema.ContentSection

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		s.ID, s.Key, s.TitleAr, s.TitleEn, s.BodyAr, s.BodyEn, s.ImageURL, s.CreatedAt,
		s.Table, s.Key,
	)

	section := &Section{}
	err := repository.db.QueryRow(context, query, key).Scan(
		&section.ID, &section.Key, &section.Title.Ar, &section.Title.En,
		&section.Body.Ar, &section.Body.En, &section.ImageURL, &section.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_section")
	}
	return section, nil
}

func (repository *PostgresRepository) UpsertSection(context context.Context, section *Section) error {
	s := schema.ContentSection

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s
	`,
		s.Table, s.ID, s.Key, s.TitleAr, s.TitleEn, s.BodyAr, s.BodyEn, s.ImageURL, s.CreatedAt,
		s.Key,
		s.TitleAr, s.TitleAr, s.TitleEn, s.TitleEn,
		s.BodyAr, s.BodyAr, s.BodyEn, s.BodyEn,
		s.ImageURL, s.ImageURL,
	)

	_, err := repository.db.Exec(context, query,
		section.ID, section.Key, section.Title.Ar, section.Title.En,
		section.Body.Ar, section.Body.En, section.ImageURL,
	)
	return dberr.Wrap(err, "upsert_section")
}
