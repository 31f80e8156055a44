package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the RBAC label attached to every user.
type Role string

// Supported roles
const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// Valid reports whether r is one of the supported roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleModerator:
		return true
	}
	return false
}

// UserDB represents a user record in the database
type UserDB struct {
	ID           uuid.UUID `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique, case-sensitive login key
	PasswordHash string    `json:"-" db:"hashed_password"`     // bcrypt digest, never serialised
	Role         Role      `json:"role" db:"role"`             // user, admin or moderator
	IsActive     bool      `json:"is_active" db:"is_active"`   // Flipped by login/logout
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
