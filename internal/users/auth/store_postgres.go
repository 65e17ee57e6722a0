// Copyright (c) 2026 Toma Beauty. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tomabeauty/toma/internal/platform/database/schema"
	"github.com/tomabeauty/toma/internal/platform/dberr"
)

// # Account Repository (Postgres)

type PostgresAccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func accountSelect() string {
	a := schema.UsersAccount
	return fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		a.ID, a.Email, a.PasswordHash, a.DisplayName, a.Role, a.CreatedAt, a.UpdatedAt,
		a.Table,
	)
}

func scanAccount(row interface{ Scan(dest ...any) error }) (*Account, error) {
	account := &Account{}
	err := row.Scan(
		&account.ID, &account.Email, &account.PasswordHash,
		&account.DisplayName, &account.Role, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*Account, error) {
	a := schema.UsersAccount
	query := accountSelect() + fmt.Sprintf(` WHERE %s = $1`, a.ID)

	account, err := scanAccount(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "find_account_by_id")
	}
	return account, nil
}

func (repository *PostgresAccountRepository) FindByEmail(context context.Context, email string) (*Account, error) {
	a := schema.UsersAccount
	query := accountSelect() + fmt.Sprintf(` WHERE lower(%s) = lower($1)`, a.Email)

	account, err := scanAccount(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "find_account_by_email")
	}
	return account, nil
}

func (repository *PostgresAccountRepository) Create(context context.Context, account *Account) error {
	a := schema.UsersAccount

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		a.Table, a.ID, a.Email, a.PasswordHash, a.DisplayName, a.Role, a.CreatedAt, a.UpdatedAt,
		a.CreatedAt, a.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		account.ID, account.Email, account.PasswordHash, account.DisplayName, account.Role,
	).Scan(&account.CreatedAt, &account.UpdatedAt)
	return dberr.Wrap(err, "create_account")
}

// # Session Repository (Postgres)

type PostgresSessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (repository *PostgresSessionRepository) Create(context context.Context, session *Session) error {
	s := schema.UsersSession

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, false, NOW())
		RETURNING %s
	`,
		s.Table, s.ID, s.UserID, s.TokenHash, s.UserAgent, s.IPAddress,
		s.ExpiresAt, s.IsRevoked, s.CreatedAt,
		s.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		session.ID, session.UserID, session.TokenHash,
		session.UserAgent, session.IPAddress, session.ExpiresAt,
	).Scan(&session.CreatedAt)
	return dberr.Wrap(err, "create_session")
}

func (repository *PostgresSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {
	s := schema.UsersSession

	// Only live sessions match; revoked or expired rows behave as absent.
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = false AND %s > NOW()
	`,
		s.ID, s.UserID, s.TokenHash, s.UserAgent, s.IPAddress,
		s.ExpiresAt, s.IsRevoked, s.CreatedAt,
		s.Table, s.TokenHash, s.IsRevoked, s.ExpiresAt,
	)

	session := &Session{}
	err := repository.db.QueryRow(context, query, tokenHash).Scan(
		&session.ID, &session.UserID, &session.TokenHash, &session.UserAgent,
		&session.IPAddress, &session.ExpiresAt, &session.IsRevoked, &session.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_session_by_token_hash")
	}
	return session, nil
}

func (repository *PostgresSessionRepository) Revoke(context context.Context, sessionID string) error {
	s := schema.UsersSession
	query := fmt.Sprintf(`UPDATE %s SET %s = true WHERE %s = $1`, s.Table, s.IsRevoked, s.ID)

	_, err := repository.db.Exec(context, query, sessionID)
	return dberr.Wrap(err, "revoke_session")
}

func (repository *PostgresSessionRepository) DeleteExpired(context context.Context) error {
	s := schema.UsersSession
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s <= NOW()`, s.Table, s.ExpiresAt)

	_, err := repository.db.Exec(context, query)
	return dberr.Wrap(err, "delete_expired_sessions")
}
