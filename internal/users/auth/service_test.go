// Copyright (c) 2026 Toma Beauty. All rights reserved.

package auth_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomabeauty/toma/internal/platform/apperr"
	"github.com/tomabeauty/toma/internal/platform/sec"
	"github.com/tomabeauty/toma/internal/users/auth"
)

// # Test Doubles

type fakeAccounts struct {
	byEmail map[string]*auth.Account
	byID    map[string]*auth.Account
	created []*auth.Account
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byEmail: map[string]*auth.Account{}, byID: map[string]*auth.Account{}}
}

func (repo *fakeAccounts) add(account *auth.Account) {
	repo.byEmail[account.Email] = account
	repo.byID[account.ID] = account
}

func (repo *fakeAccounts) FindByID(_ context.Context, id string) (*auth.Account, error) {
	if account, ok := repo.byID[id]; ok {
		return account, nil
	}
	return nil, apperr.NotFound("Account")
}

func (repo *fakeAccounts) FindByEmail(_ context.Context, email string) (*auth.Account, error) {
	if account, ok := repo.byEmail[email]; ok {
		return account, nil
	}
	return nil, apperr.NotFound("Account")
}

func (repo *fakeAccounts) Create(_ context.Context, account *auth.Account) error {
	repo.add(account)
	repo.created = append(repo.created, account)
	return nil
}

type fakeSessions struct {
	byHash  map[string]*auth.Session
	revoked map[string]bool
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{byHash: map[string]*auth.Session{}, revoked: map[string]bool{}}
}

func (repo *fakeSessions) Create(_ context.Context, session *auth.Session) error {
	repo.byHash[session.TokenHash] = session
	return nil
}

func (repo *fakeSessions) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	session, ok := repo.byHash[tokenHash]
	if !ok || repo.revoked[session.ID] || time.Now().After(session.ExpiresAt) {
		return nil, apperr.NotFound("Session")
	}
	return session, nil
}

func (repo *fakeSessions) Revoke(_ context.Context, sessionID string) error {
	repo.revoked[sessionID] = true
	return nil
}

func (repo *fakeSessions) DeleteExpired(_ context.Context) error { return nil }

type fakeTokenProvider struct{}

func (fakeTokenProvider) GenerateAccessToken(userID, _, _ string, _ time.Duration) (string, error) {
	return "signed-jwt-for-" + userID, nil
}

func newService(accounts *fakeAccounts, sessions *fakeSessions) *auth.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return auth.NewService(accounts, sessions, nil, fakeTokenProvider{}, logger)
}

func adminAccount(t *testing.T, password string) *auth.Account {
	t.Helper()
	hash, err := sec.HashPassword(password)
	require.NoError(t, err)
	return &auth.Account{
		ID:           "0192aaaa-0000-7000-8000-000000000001",
		Email:        "admin@tomabeauty.app",
		PasswordHash: hash,
		DisplayName:  "Toma Admin",
		Role:         sec.RoleAdmin,
	}
}

// # Tests

/*
TestLogin_Success issues both tokens and persists the session.
*/
func TestLogin_Success(t *testing.T) {
	accounts := newFakeAccounts()
	sessions := newFakeSessions()
	accounts.add(adminAccount(t, "correct-horse-battery"))
	service := newService(accounts, sessions)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "admin@tomabeauty.app",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, session.AccessToken)
	assert.NotEmpty(t, session.RefreshToken)
	assert.True(t, session.RefreshTokenExpiresAt.After(time.Now()))
	assert.Equal(t, sec.RoleAdmin, session.Account.Role)
	assert.Len(t, sessions.byHash, 1, "refresh session must be persisted")

	// The plaintext refresh token must never be stored.
	for hash := range sessions.byHash {
		assert.NotEqual(t, session.RefreshToken, hash)
	}
}

/*
TestLogin_GenericFailures verifies unknown email and bad password produce
the same message, preventing account enumeration.
*/
func TestLogin_GenericFailures(t *testing.T) {
	accounts := newFakeAccounts()
	accounts.add(adminAccount(t, "correct-horse-battery"))
	service := newService(accounts, newFakeSessions())

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"unknown_email", "nobody@tomabeauty.app", "whatever"},
		{"wrong_password", "admin@tomabeauty.app", "guess"},
	}

	var messages []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Login(context.Background(), auth.LoginInput{Email: tt.email, Password: tt.password})
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "UNAUTHORIZED", ae.Code)
			messages = append(messages, ae.Message)
		})
	}

	require.Len(t, messages, 2)
	assert.Equal(t, messages[0], messages[1])
}

/*
TestRefreshSession_Rotation verifies the old token dies when a new one is
born, and a replay of the old token is refused.
*/
func TestRefreshSession_Rotation(t *testing.T) {
	accounts := newFakeAccounts()
	sessions := newFakeSessions()
	accounts.add(adminAccount(t, "correct-horse-battery"))
	service := newService(accounts, sessions)

	login, err := service.Login(context.Background(), auth.LoginInput{
		Email:    "admin@tomabeauty.app",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	rotated, err := service.RefreshSession(context.Background(), login.RefreshToken, "ua", "127.0.0.1")
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)

	// Replaying the first token now fails.
	_, err = service.RefreshSession(context.Background(), login.RefreshToken, "ua", "127.0.0.1")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", apperr.As(err).Code)
}

/*
TestLogout_Idempotent accepts unknown tokens silently.
*/
func TestLogout_Idempotent(t *testing.T) {
	service := newService(newFakeAccounts(), newFakeSessions())

	assert.NoError(t, service.Logout(context.Background(), "never-issued"))
}

/*
TestEnsureAdmin covers bootstrap creation and the existing-account path.
*/
func TestEnsureAdmin(t *testing.T) {
	accounts := newFakeAccounts()
	service := newService(accounts, newFakeSessions())

	created, err := service.EnsureAdmin(context.Background(), "admin@tomabeauty.app", "bootstrap-secret", "Toma Admin")
	require.NoError(t, err)
	assert.Equal(t, sec.RoleAdmin, created.Role)
	assert.NotEqual(t, "bootstrap-secret", created.PasswordHash)
	require.Len(t, accounts.created, 1)

	// Second call finds the same account instead of creating another.
	again, err := service.EnsureAdmin(context.Background(), "admin@tomabeauty.app", "bootstrap-secret", "Toma Admin")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Len(t, accounts.created, 1)
}

/*
TestEnsureAdmin_Validation refuses weak bootstrap credentials.
*/
func TestEnsureAdmin_Validation(t *testing.T) {
	service := newService(newFakeAccounts(), newFakeSessions())

	_, err := service.EnsureAdmin(context.Background(), "not-an-email", "short", "X")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
}

/*
TestMe_DevFallbackIdentity resolves the synthetic dev admin without a
database account.
*/
func TestMe_DevFallbackIdentity(t *testing.T) {
	service := newService(newFakeAccounts(), newFakeSessions())

	account, err := service.Me(context.Background(), auth.DevAdminID)
	require.NoError(t, err)
	assert.Equal(t, sec.RoleAdmin, account.Role)
}
