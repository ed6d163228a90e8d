package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a staff account in the users table.
type User struct {
	ID           uuid.UUID `db:"id"`            // Primary key
	Username     string    `db:"username"`      // Unique login name, used as token subject
	Email        string    `db:"email"`         // Unique email
	FullName     string    `db:"full_name"`     // Display name
	PasswordHash string    `db:"password_hash"` // bcrypt hash, never serialized
	IsActive     bool      `db:"is_active"`     // Inactive users cannot use the API
	IsAdmin      bool      `db:"is_admin"`      // Admins can review submissions
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
	UpdatedAt    time.Time `db:"updated_at"`    // Last update timestamp
}

// UserPatch holds the fields of a partial user update. Nil fields are left unchanged.
type UserPatch struct {
	Username     *string
	Email        *string
	FullName     *string
	PasswordHash *string
	IsActive     *bool
	IsAdmin      *bool
}
