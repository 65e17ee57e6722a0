// Copyright (c) 2026 Toma Beauty. All rights reserved.

package schema

// UsersSessionTable represents the 'users.session' table tracking refresh tokens.
type UsersSessionTable struct {
	Table     string
	ID        string
	UserID    string
	TokenHash string
	UserAgent string
	IPAddress string
	ExpiresAt string
	IsRevoked string
	CreatedAt string
}

// UsersSession is the schema definition for users.session.
var UsersSession = UsersSessionTable{
	Table:     "users.session",
	ID:        "id",
	UserID:    "user_id",
	TokenHash: "token_hash",
	UserAgent: "user_agent",
	IPAddress: "ip_address",
	ExpiresAt: "expires_at",
	IsRevoked: "is_revoked",
	CreatedAt: "created_at",
}

func (t UsersSessionTable) Columns() []string {
	return []string{
		t.ID, t.UserID, t.TokenHash, t.UserAgent, t.IPAddress,
		t.ExpiresAt, t.IsRevoked, t.CreatedAt,
	}
}
