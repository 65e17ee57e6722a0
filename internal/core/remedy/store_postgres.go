// Copyright (c) 2026 Toma Beauty. All rights reserved.

package remedy

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
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

func (repository *PostgresRepository) ListRemedies(context context.Context, limit, offset int) ([]*Remedy, int, error) {
	r := schema.ContentRemedy

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, r.Table)
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		r.ID, r.TitleAr, r.TitleEn, r.DescriptionAr, r.DescriptionEn,
		r.InstructionsAr, r.InstructionsEn, r.CreatedAt,
		r.Table, r.CreatedAt,
	)

	var total int
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_remedies")
	}

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_remedies")
	}
	defer rows.Close()

	remedies := []*Remedy{}
	byID := map[string]*Remedy{}
	ids := []string{}
	for rows.Next() {
		remedy := &Remedy{Ingredients: []*Ingredient{}}
		if err := rows.Scan(
			&remedy.ID, &remedy.Title.Ar, &remedy.Title.En,
			&remedy.Description.Ar, &remedy.Description.En,
			&remedy.Instructions.Ar, &remedy.Instructions.En,
			&remedy.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_remedy")
		}
		remedies = append(remedies, remedy)
		byID[remedy.ID] = remedy
		ids = append(ids, remedy.ID)
	}

	if err := repository.attachIngredients(context, byID, ids); err != nil {
		return nil, 0, err
	}

	return remedies, total, nil
}

func (repository *PostgresRepository) GetRemedy(context context.Context, id string) (*Remedy, error) {
	r := schema.ContentRemedy

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		r.ID, r.TitleAr, r.TitleEn, r.DescriptionAr, r.DescriptionEn,
		r.InstructionsAr, r.InstructionsEn, r.CreatedAt,
		r.Table, r.ID,
	)

	remedy := &Remedy{Ingredients: []*Ingredient{}}
	err := repository.db.QueryRow(context, query, id).Scan(
		&remedy.ID, &remedy.Title.Ar, &remedy.Title.En,
		&remedy.Description.Ar, &remedy.Description.En,
		&remedy.Instructions.Ar, &remedy.Instructions.En,
		&remedy.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_remedy")
	}

	byID := map[string]*Remedy{remedy.ID: remedy}
	if err := repository.attachIngredients(context, byID, []string{remedy.ID}); err != nil {
		return nil, err
	}
	return remedy, nil
}

// attachIngredients hydrates the ingredient lists of every remedy in the
// page with a single query.
func (repository *PostgresRepository) attachIngredients(context context.Context, byID map[string]*Remedy, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	i := schema.ContentRemedyIngredient
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s, %s ASC
	`,
		i.ID, i.RemedyID, i.Position, i.NameAr, i.NameEn,
		i.Table, i.RemedyID, i.RemedyID, i.Position,
	)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "list_remedy_ingredients")
	}
	defer rows.Close()

	for rows.Next() {
		ingredient := &Ingredient{}
		var remedyID string
		if err := rows.Scan(
			&ingredient.ID, &remedyID, &ingredient.Position,
			&ingredient.Name.Ar, &ingredient.Name.En,
		); err != nil {
			return dberr.Wrap(err, "scan_remedy_ingredient")
		}
		if remedy, ok := byID[remedyID]; ok {
			remedy.Ingredients = append(remedy.Ingredients, ingredient)
		}
	}
	return nil
}

func (repository *PostgresRepository) CreateRemedy(context context.Context, remedy *Remedy) error {
	r := schema.ContentRemedy
	i := schema.ContentRemedyIngredient

	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_remedy")
	}
	defer func() { _ = transaction.Rollback(context) }()

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING %s
	`,
		r.Table, r.ID, r.TitleAr, r.TitleEn, r.DescriptionAr, r.DescriptionEn,
		r.InstructionsAr, r.InstructionsEn, r.CreatedAt,
		r.CreatedAt,
	)
	err = transaction.QueryRow(context, insert,
		remedy.ID, remedy.Title.Ar, remedy.Title.En,
		remedy.Description.Ar, remedy.Description.En,
		remedy.Instructions.Ar, remedy.Instructions.En,
	).Scan(&remedy.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_remedy")
	}

	if len(remedy.Ingredients) > 0 {
		batch := &pgx.Batch{}
		for _, ingredient := range remedy.Ingredients {
			batch.Queue(fmt.Sprintf(`
				INSERT INTO %s (%s, %s, %s, %s, %s)
				VALUES ($1, $2, $3, $4, $5)
			`, i.Table, i.ID, i.RemedyID, i.Position, i.NameAr, i.NameEn),
				ingredient.ID, remedy.ID, ingredient.Position,
				ingredient.Name.Ar, ingredient.Name.En,
			)
		}

		result := transaction.SendBatch(context, batch)
		for range remedy.Ingredients {
			if _, err := result.Exec(); err != nil {
				_ = result.Close()
				return dberr.Wrap(err, "create_remedy_ingredients")
			}
		}
		if err := result.Close(); err != nil {
			return dberr.Wrap(err, "create_remedy_ingredients")
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_create_remedy")
	}
	return nil
}

func (repository *PostgresRepository) DeleteRemedy(context context.Context, id string) error {
	r := schema.ContentRemedy
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, r.Table, r.ID)

	// Ingredients cascade at the schema level; a missing id is a success.
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_remedy")
}
