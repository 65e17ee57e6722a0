// Copyright (c) 2026 Toma Beauty. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/internal/platform/sec"
	"github.com/tomabeauty/toma/internal/platform/validate"
	"github.com/tomabeauty/toma/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating signed access tokens.
type TokenProvider interface {
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements the admin authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing or login
// logic must be reviewed before merging.
type Service struct {
	accounts      AccountRepository
	sessions      SessionRepository
	sessionCache  SessionCache
	tokenProvider TokenProvider
	logger        *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	accounts AccountRepository,
	sessions SessionRepository,
	sessionCache SessionCache,
	tokenProvider TokenProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		accounts:      accounts,
		sessions:      sessions,
		sessionCache:  sessionCache,
		tokenProvider: tokenProvider,
		logger:        logger,
	}
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession represents a successfully established admin session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	Account               *Account
}

/*
Login validates credentials and issues security tokens.

Description: Verifies identity with a constant-time bcrypt comparison and
initializes a new refresh session. Both the unknown-email and wrong-password
paths return the same generic message to prevent account enumeration.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session identifiers
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	account, err := service.accounts.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	session, err := service.issueSession(context, account, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	service.logger.Info("admin_login", slog.String("user_id", account.ID))
	return session, nil
}

/*
Logout permanently revokes the caller's active session.

Description: Ensures that a tracked refresh token can never be used again.
Logging out with an unknown or already-revoked token succeeds (idempotent).

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - error: Revocation failures
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {
	tokenHash := sec.HashToken(refreshToken)

	session, err := service.sessions.FindByTokenHash(context, tokenHash)
	if err != nil {
		return nil
	}

	if err := service.sessions.Revoke(context, session.ID); err != nil {
		return fmt.Errorf("auth: logout failed: %w", err)
	}
	service.evictCached(context, tokenHash)

	return nil
}

/*
RefreshSession implements the refresh token rotation mechanism.

Description: Verifies the existing refresh token, revokes it to prevent
reuse, and issues a fresh pair of rotated tokens.

Parameters:
  - context: context.Context
  - refreshToken: string
  - userAgent: string
  - ipAddress: string

Returns:
  - *LoginSession: New session credentials
  - error: Unauthorized or storage failures
*/
func (service *Service) RefreshSession(context context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	tokenHash := sec.HashToken(refreshToken)

	session, err := service.findSession(context, tokenHash)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// Rotation: revoke the old session so a replayed token is worthless.
	if err := service.sessions.Revoke(context, session.ID); err != nil {
		return nil, fmt.Errorf("auth: refresh revoke failed: %w", err)
	}
	service.evictCached(context, tokenHash)

	account, err := service.accounts.FindByID(context, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Account not found or suspended")
	}

	return service.issueSession(context, account, userAgent, ipAddress)
}

// Me returns the account behind the given authenticated user id. The
// synthetic dev-fallback identity resolves without touching the database.
func (service *Service) Me(context context.Context, userID string) (*Account, error) {
	if userID == DevAdminID {
		return &Account{
			ID:          DevAdminID,
			Email:       "dev-admin@localhost",
			DisplayName: "Development Admin",
			Role:        sec.RoleAdmin,
		}, nil
	}
	return service.accounts.FindByID(context, userID)
}

/*
EnsureAdmin guarantees a bootstrap administrator account exists.

Description: Looks the account up by email; creates it with role admin when
missing. Called once at startup by the seed pass, so a fresh deployment is
administrable without manual SQL.

Parameters:
  - context: context.Context
  - email: string
  - password: string (plaintext, hashed here)
  - displayName: string

Returns:
  - *Account: The existing or newly created account
  - error: Validation or storage failures
*/
func (service *Service) EnsureAdmin(context context.Context, email, password, displayName string) (*Account, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Email(FieldEmail, email)
	validator.Required(FieldPassword, password).MinLen(FieldPassword, password, 8)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if existing, err := service.accounts.FindByEmail(context, email); err == nil {
		return existing, nil
	}

	passwordHash, err := sec.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("auth: bootstrap hash failed: %w", err)
	}

	account := &Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
		Role:         sec.RoleAdmin,
	}
	if err := service.accounts.Create(context, account); err != nil {
		return nil, err
	}

	service.logger.Info("bootstrap_admin_created", slog.String("user_id", account.ID))
	return account, nil
}

// issueSession produces the access/refresh token pair and persists the
// refresh session.
func (service *Service) issueSession(context context.Context, account *Account, userAgent, ipAddress string) (*LoginSession, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(account.ID, account.Email, string(account.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth: token generation failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth: refresh token generation failed: %w", err)
	}

	expiresAt := time.Now().Add(RefreshTokenTTL)
	session := &Session{
		ID:        uuid.New(),
		UserID:    account.ID,
		TokenHash: sec.HashToken(refreshToken),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: expiresAt,
	}

	if err := service.sessions.Create(context, session); err != nil {
		return nil, fmt.Errorf("auth: session creation failed: %w", err)
	}
	service.cacheSession(context, session)

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Account:               account,
	}, nil
}

// findSession resolves a session by token hash, consulting the cache first.
func (service *Service) findSession(context context.Context, tokenHash string) (*Session, error) {
	if service.sessionCache != nil {
		if session, err := service.sessionCache.Get(context, tokenHash); err == nil {
			if !session.IsRevoked && time.Now().Before(session.ExpiresAt) {
				return session, nil
			}
		}
	}

	session, err := service.sessions.FindByTokenHash(context, tokenHash)
	if err != nil {
		return nil, err
	}
	service.cacheSession(context, session)
	return session, nil
}

// cacheSession writes through to the cache. Failures are logged, never fatal.
func (service *Service) cacheSession(context context.Context, session *Session) {
	if service.sessionCache == nil {
		return
	}
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return
	}
	if err := service.sessionCache.Set(context, session, ttl); err != nil {
		service.logger.Warn("session_cache_set_failed", slog.String("error", err.Error()))
	}
}

func (service *Service) evictCached(context context.Context, tokenHash string) {
	if service.sessionCache == nil {
		return
	}
	if err := service.sessionCache.Delete(context, tokenHash); err != nil {
		service.logger.Warn("session_cache_evict_failed", slog.String("error", err.Error()))
	}
}
