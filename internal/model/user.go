package model

import "time"

// Application roles. The portal distinguishes only between SHG admins and
// ordinary members; the JWT "role" claim carries one of these values.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User mirrors the 'users' table. It is the identity record: credentials,
// display name and role. Everything else about a person lives in the
// profiles table.
type User struct {
	ID           uint64    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshToken models a row in 'refresh_tokens'. Only the SHA-256 hash of
// the token is stored; the raw value goes back to the client once.
type RefreshToken struct {
	ID        uint64
	UserID    uint64
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// PasswordReset models a row in 'password_resets'. Tokens are single-use
// and stored hashed, like refresh tokens.
type PasswordReset struct {
	ID        uint64
	UserID    uint64
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}
