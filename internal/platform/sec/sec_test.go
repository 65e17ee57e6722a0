// Copyright (c) 2026 Toma Beauty. All rights reserved.

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomabeauty/toma/internal/platform/sec"
)

/*
TestHashPassword verifies the bcrypt round-trip and rejection of wrong passwords.
*/
func TestHashPassword(t *testing.T) {
	hash, err := sec.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, sec.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, sec.CheckPasswordHash("wrong password", hash))
}

/*
TestGenerateSecureToken checks token length and uniqueness.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	// 32 bytes hex-encoded
	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}

/*
TestHashToken ensures token hashing is deterministic and one-way shaped.
*/
func TestHashToken(t *testing.T) {
	hash := sec.HashToken("refresh-token-value")

	assert.Equal(t, hash, sec.HashToken("refresh-token-value"))
	assert.NotEqual(t, hash, sec.HashToken("other-token"))
	assert.Len(t, hash, 64) // sha256 hex
}

/*
TestUserRole_AtLeast verifies the role hierarchy used by the admin gate.
*/
func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleMember))
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleAdmin))
	assert.False(t, sec.RoleMember.AtLeast(sec.RoleAdmin))
	assert.False(t, sec.UserRole("unknown").AtLeast(sec.RoleMember))
}
