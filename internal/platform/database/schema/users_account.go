// Copyright (c) 2026 Toma Beauty. All rights reserved.

package schema

// UsersAccountTable represents the 'users.account' table.
type UsersAccountTable struct {
	Table        string
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
	CreatedAt    string
	UpdatedAt    string
}

// UsersAccount is the schema definition for users.account.
var UsersAccount = UsersAccountTable{
	Table:        "users.account",
	ID:           "id",
	Email:        "email",
	PasswordHash: "password_hash",
	DisplayName:  "display_name",
	Role:         "role",
	CreatedAt:    "created_at",
	UpdatedAt:    "updated_at",
}

func (t UsersAccountTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.PasswordHash, t.DisplayName, t.Role, t.CreatedAt, t.UpdatedAt,
	}
}
