// Copyright (c) 2026 Toma Beauty. All rights reserved.

package auth

import (
	"context"
	"time"
)

// # Account Data Access

// AccountRepository defines the data access contract for user accounts.
type AccountRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Account: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByID(context context.Context, id string) (*Account, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *Account: Hydrated entity
		  - error: Database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*Account, error)

	/*
		Create persists a brand-new account to the storage.

		Parameters:
		  - context: context.Context
		  - account: *Account

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, account *Account) error
}

// # Session Data Access

// SessionRepository defines the data access contract for refresh sessions.
type SessionRepository interface {

	// Create persists a new session row.
	Create(context context.Context, session *Session) error

	// FindByTokenHash returns the live (unrevoked, unexpired) session
	// matching the hash, or a not-found error.
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	// Revoke marks a session unusable. Revocation is permanent.
	Revoke(context context.Context, sessionID string) error

	// DeleteExpired removes sessions past their expiry. Called by the
	// startup housekeeping pass.
	DeleteExpired(context context.Context) error
}

// SessionCache fronts the session table with a TTL-bounded lookaside
// cache keyed by token hash. A miss falls through to Postgres.
type SessionCache interface {
	Get(context context.Context, tokenHash string) (*Session, error)
	Set(context context.Context, session *Session, ttl time.Duration) error
	Delete(context context.Context, tokenHash string) error
}
