// Copyright (c) 2026 Toma Beauty. All rights reserved.

/*
Package auth implements the admin gate: password sign-in, RS256 access
tokens, rotated refresh-token sessions, and the development-only static
admin bearer.

# Architecture

  - Service: Orchestrates login, logout, and session rotation.
  - Repositories: Postgres for accounts and sessions, Redis as a
    session cache in front of the session table.
  - Security: bcrypt password hashes, RSA-signed JWTs, hashed refresh
    tokens (the plaintext token never touches storage).

Write permission on content is enforced here and in the authorization
middleware, never by client state.
*/
package auth

import (
	"time"

	"github.com/tomabeauty/toma/internal/platform/sec"
)

// # Domain Entities

// Account represents a registered user of the platform. Every mutation
// endpoint requires an account whose role is admin.
type Account struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string       `json:"display_name"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Session represents an active refresh-token session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"` // Hashed value of the refresh token. Omitted for security.
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	IsRevoked bool      `json:"is_revoked"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldDisplayName = "display_name"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldUser        = "user"
)
