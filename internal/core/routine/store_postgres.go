// Copyright (c) 2026 Toma Beauty. All rights reserved.

package routine

import (
	"context"
	"fmt"
	"strconv"

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

func (repository *PostgresRepository) ListRoutines(context context.Context, filter Filter, limit, offset int) ([]*Routine, int, error) {
	r := schema.ContentRoutine

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		r.ID, r.TitleAr, r.TitleEn, r.DescriptionAr, r.DescriptionEn, r.Category, r.CreatedAt,
		r.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, r.Table)

	args := []any{}
	countArgs := []any{}

	if filter.Category != "" {
		query += fmt.Sprintf(` WHERE %s = $1`, r.Category)
		countQuery += fmt.Sprintf(` WHERE %s = $1`, r.Category)
		args = append(args, filter.Category)
		countArgs = append(countArgs, filter.Category)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", r.CreatedAt) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_routines")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_routines")
	}
	defer rows.Close()

	routines := []*Routine{}
	byID := map[string]*Routine{}
	ids := []string{}
	for rows.Next() {
		routine := &Routine{Steps: []*Step{}}
		if err := rows.Scan(
			&routine.ID, &routine.Title.Ar, &routine.Title.En,
			&routine.Description.Ar, &routine.Description.En,
			&routine.Category, &routine.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_routine")
		}
		routines = append(routines, routine)
		byID[routine.ID] = routine
		ids = append(ids, routine.ID)
	}

	if err := repository.attachSteps(context, byID, ids); err != nil {
		return nil, 0, err
	}

	return routines, total, nil
}

func (repository *PostgresRepository) GetRoutine(context context.Context, id string) (*Routine, error) {
	r := schema.ContentRoutine

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		r.ID, r.TitleAr, r.TitleEn, r.DescriptionAr, r.DescriptionEn, r.Category, r.CreatedAt,
		r.Table, r.ID,
	)

	routine := &Routine{Steps: []*Step{}}
	err := repository.db.QueryRow(context, query, id).Scan(
		&routine.ID, &routine.Title.Ar, &routine.Title.En,
		&routine.Description.Ar, &routine.Description.En,
		&routine.Category, &routine.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_routine")
	}

	byID := map[string]*Routine{routine.ID: routine}
	if err := repository.attachSteps(context, byID, []string{routine.ID}); err != nil {
		return nil, err
	}
	return routine, nil
}

// attachSteps hydrates the steps of every routine in the page with a single
// query, appending them in position order.
func (repository *PostgresRepository) attachSteps(context context.Context, byID map[string]*Routine, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	s := schema.ContentRoutineStep
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s, %s ASC
	`,
		s.ID, s.RoutineID, s.Position, s.TitleAr, s.TitleEn, s.BodyAr, s.BodyEn,
		s.Table, s.RoutineID, s.RoutineID, s.Position,
	)

	rows, err := repository.db.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "list_routine_steps")
	}
	defer rows.Close()

	for rows.Next() {
		step := &Step{}
		var routineID string
		if err := rows.Scan(
			&step.ID, &routineID, &step.Position,
			&step.Title.Ar, &step.Title.En, &step.Body.Ar, &step.Body.En,
		); err != nil {
			return dberr.Wrap(err, "scan_routine_step")
		}
		if routine, ok := byID[routineID]; ok {
			routine.Steps = append(routine.Steps, step)
		}
	}
	return nil
}

func (repository *PostgresRepository) CreateRoutine(context context.Context, routine *Routine) error {
	r := schema.ContentRoutine
	s := schema.ContentRoutineStep

	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_routine")
	}
	defer func() { _ = transaction.Rollback(context) }()

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING %s
	`,
		r.Table, r.ID, r.TitleAr, r.TitleEn, r.DescriptionAr, r.DescriptionEn, r.Category, r.CreatedAt,
		r.CreatedAt,
	)
	err = transaction.QueryRow(context, insert,
		routine.ID, routine.Title.Ar, routine.Title.En,
		routine.Description.Ar, routine.Description.En, routine.Category,
	).Scan(&routine.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create_routine")
	}

	// Steps are pipelined in one batch within the transaction.
	if len(routine.Steps) > 0 {
		batch := &pgx.Batch{}
		for _, step := range routine.Steps {
			batch.Queue(fmt.Sprintf(`
				INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			`, s.Table, s.ID, s.RoutineID, s.Position, s.TitleAr, s.TitleEn, s.BodyAr, s.BodyEn),
				step.ID, routine.ID, step.Position,
				step.Title.Ar, step.Title.En, step.Body.Ar, step.Body.En,
			)
		}

		result := transaction.SendBatch(context, batch)
		for range routine.Steps {
			if _, err := result.Exec(); err != nil {
				_ = result.Close()
				return dberr.Wrap(err, "create_routine_steps")
			}
		}
		if err := result.Close(); err != nil {
			return dberr.Wrap(err, "create_routine_steps")
		}
	}

	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "commit_create_routine")
	}
	return nil
}

func (repository *PostgresRepository) DeleteRoutine(context context.Context, id string) error {
	r := schema.ContentRoutine
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, r.Table, r.ID)

	// Steps cascade at the schema level; a missing id is a success.
	_, err := repository.db.Exec(context, query, id)
	return dberr.Wrap(err, "delete_routine")
}

func itos(i int) string {
	return strconv.Itoa(i)
}
