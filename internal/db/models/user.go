package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// User represents an account in the system.
// Every user optionally carries one primary role (users.role_id) plus an
// auxiliary many-to-many set of secondary roles through role_user. A user
// without a primary role is denied administrator access by construction.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Name is the user's full name.
	Name string `gorm:"size:255;not null" json:"name"`
	// Email is the unique login identifier.
	Email string `gorm:"size:255;unique;not null" json:"email"`
	// Password is the Argon2id hashed password. Never serialized.
	Password string `gorm:"size:255" json:"-"`
	// RoleID is the primary role; nullable, set null when the role is deleted.
	RoleID *uint `gorm:"column:role_id;constraint:OnDelete:SET NULL" json:"role_id"`
	// Role is the associated primary role.
	Role *Role `gorm:"foreignKey:RoleID;references:ID" json:"role,omitempty"`
	// Roles are the optional secondary roles.
	Roles []Role `gorm:"many2many:role_user" json:"-"`
	// Assignments are the shift functions scheduled for this user.
	Assignments []Assignment `gorm:"foreignKey:UserID" json:"-"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user's primary role is administrador.
// Users with no primary role are never administrators.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role.IsAdmin()
}

// IsEmployee reports whether the user's primary role is empleado.
func (u *User) IsEmployee() bool {
	return u != nil && u.Role.IsEmployee()
}

// HasRole reports whether the user holds the named role, either as the
// primary role or among the preloaded secondary roles.
func (u *User) HasRole(name RoleName) bool {
	if u == nil {
		return false
	}

	if u.Role != nil && u.Role.Name == name {
		return true
	}

	for i := range u.Roles {
		if u.Roles[i].Name == name {
			return true
		}
	}

	return false
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// This function should be used when creating or updating user passwords.
// It uses the default Argon2id parameters for secure password hashing.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored hashed password.
// It uses constant-time comparison to prevent timing attacks.
// Returns true if the password matches, false otherwise.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
