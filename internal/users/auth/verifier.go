// Copyright (c) 2026 Toma Beauty. All rights reserved.

package auth

import (
	"github.com/tomabeauty/toma/internal/platform/constants"
	"github.com/tomabeauty/toma/internal/platform/middleware"
	"github.com/tomabeauty/toma/internal/platform/sec"
)

// DevAdminID is the synthetic account id carried by dev-fallback claims.
// It never collides with real accounts, which are UUIDs.
const DevAdminID = "dev-admin"

// DevFallbackVerifier wraps the real JWT verifier and, when (and only
// when) the development fallback is active, accepts the static bearer
// [constants.DevAdminToken] as an admin identity. Config wiring refuses to
// enable it outside the development environment, so production builds
// always hit the inner verifier.
type DevFallbackVerifier struct {
	inner   middleware.TokenVerifier
	enabled bool
}

func NewDevFallbackVerifier(inner middleware.TokenVerifier, enabled bool) *DevFallbackVerifier {
	return &DevFallbackVerifier{inner: inner, enabled: enabled}
}

func (verifier *DevFallbackVerifier) VerifyToken(tokenString string) (*sec.AuthClaims, error) {
	if verifier.enabled && tokenString == constants.DevAdminToken {
		return &sec.AuthClaims{
			UserID:   DevAdminID,
			Username: DevAdminID,
			Role:     string(sec.RoleAdmin),
		}, nil
	}
	return verifier.inner.VerifyToken(tokenString)
}
