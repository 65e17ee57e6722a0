// Copyright (c) 2026 Toma Beauty. All rights reserved.

package dberr_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/internal/platform/dberr"
)

/*
TestWrap_Classification verifies the SQLSTATE and sentinel mapping.
*/
func TestWrap_Classification(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"nil_passthrough", nil, ""},
		{"no_rows", pgx.ErrNoRows, "NOT_FOUND"},
		{"malformed_uuid_literal", &pgconn.PgError{Code: "22P02"}, "NOT_FOUND"},
		{"unique_violation", &pgconn.PgError{Code: "23505"}, "CONFLICT"},
		{"fk_violation", &pgconn.PgError{Code: "23503"}, "UNPROCESSABLE"},
		{"check_violation", &pgconn.PgError{Code: "23514"}, "UNPROCESSABLE"},
		{"deadline", context.DeadlineExceeded, "SERVICE_UNAVAILABLE"},
		{"unknown", errors.New("boom"), "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "test_action")

			if tt.wantCode == "" {
				assert.NoError(t, wrapped)
				return
			}

			appErr := apperr.As(wrapped)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}
