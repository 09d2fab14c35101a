// Package user provides lookup and listing operations for user accounts.
package user

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/mcap-hotel/staffdesk/internal/db/models"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrEmptyIdentifier is returned for an empty id-or-email lookup input.
	ErrEmptyIdentifier = errors.New("user identifier cannot be empty")
)

// GetByID retrieves a user by ID with the primary role preloaded.
func GetByID(db *gorm.DB, id uint64) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var u models.User

	result := db.Preload("Role").First(&u, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &u, nil
}

// GetByEmail retrieves a user by email with the primary role preloaded.
func GetByEmail(db *gorm.DB, email string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if email == "" {
		return nil, ErrEmptyIdentifier
	}

	var u models.User

	result := db.Preload("Role").Where("email = ?", email).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, result.Error
	}

	return &u, nil
}

// FindByIDOrEmail resolves a user from a console-style identifier: a numeric
// parse is tried first, falling back to an email lookup.
func FindByIDOrEmail(db *gorm.DB, identifier string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if identifier == "" {
		return nil, ErrEmptyIdentifier
	}

	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		return GetByID(db, id)
	}

	return GetByEmail(db, identifier)
}

// ListWithRoles retrieves all users with their primary role preloaded,
// ordered by id.
func ListWithRoles(db *gorm.DB) ([]models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var users []models.User

	result := db.Preload("Role").Order("id ASC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// Employees retrieves the users whose primary role is empleado, ordered by
// id. Used by the interactive assignment picker.
func Employees(db *gorm.DB) ([]models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var users []models.User

	result := db.Preload("Role").
		Joins("JOIN roles ON roles.id = users.role_id").
		Where("roles.name = ?", models.RoleEmpleado).
		Order("users.id ASC").
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// AssignRole sets a user's primary role.
func AssignRole(db *gorm.DB, userID uint64, roleID uint) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("role_id", roleID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}
