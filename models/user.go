package models

import "time"

// Role is the coarse access-control attribute assigned to every account.
// It is embedded into issued tokens, so a role change only takes effect
// once the user re-authenticates and receives a fresh token.
type Role string

const (
	// RoleUser is the default role: access limited to owned resources.
	RoleUser Role = "user"

	// RoleAdmin grants access to every user's resources and to the
	// user-listing endpoint.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique public handle chosen at registration
	// (3-30 characters, letters, digits and underscores).
	Username string `json:"username"`

	// Email is the unique, normalized (trimmed, lowercased) email address.
	Email string `json:"email"`

	// PasswordHash is the bcrypt digest of the user's password. The salt and
	// cost factor are embedded in the digest itself. It is excluded from JSON
	// on every serialization path.
	PasswordHash string `json:"-"`

	// Role is the RBAC role of the account.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// AuthUser is the authenticated identity attached to a request context by the
// authentication middleware. It is a snapshot of the token claims, not a full
// account record.
type AuthUser struct {
	ID   int64
	Role Role
}
