// Copyright (c) 2026 Toma Beauty. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tomabeauty/toma/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Classification
//
//   - pgx.ErrNoRows            → NOT_FOUND
//   - SQLSTATE 22P02           → NOT_FOUND (malformed uuid literal in an id
//     position can never match a row)
//   - SQLSTATE 23505           → CONFLICT (unique violation)
//   - SQLSTATE 23503 / 23514   → UNPROCESSABLE (referential / check violation)
//   - timeouts and dial errors → SERVICE_UNAVAILABLE
//   - anything else            → INTERNAL_ERROR
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.InvalidTextRepresentation:
			return ErrNotFound
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("A record with the same unique value already exists")
		case pgerrcode.ForeignKeyViolation, pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return apperr.Unprocessable("The request conflicts with a data constraint")
		}
	}

	if isUnavailable(err) {
		return apperr.ServiceUnavailable("The data store is temporarily unreachable")
	}

	return apperr.Internal(err)
}

// isUnavailable reports whether the error indicates the database could not be
// reached at all, as opposed to rejecting the statement.
func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}
