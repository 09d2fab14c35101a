package models

import "time"

// RoleName identifies one of the closed set of access-control roles.
// Role names are compared against the two constants below, never against
// free-form strings.
type RoleName string

const (
	// RoleAdministrador is the only role allowed to log into the system.
	RoleAdministrador RoleName = "administrador"
	// RoleEmpleado is a staff member whose shift functions are managed here.
	RoleEmpleado RoleName = "empleado"
)

// Role represents an access-control classification of a user.
// Exactly two roles exist (administrador, empleado); they are seeded once at
// setup and effectively immutable afterwards. Role is independent of the
// operational Function assigned per shift.
type Role struct {
	// ID is the unique identifier for the role.
	ID uint `gorm:"primaryKey"`
	// Name is the unique machine name of the role.
	Name RoleName `gorm:"type:varchar(100);unique;not null"`
	// DisplayName is the human-readable label ("Administrador", "Empleado").
	DisplayName string `gorm:"size:255;not null"`
	// Description provides a human-readable description of the role's purpose.
	Description string `gorm:"size:255"`
	// CreatedAt is the timestamp when the role was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the role was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Role model.
// This overrides GORM's default pluralized table naming.
func (Role) TableName() string {
	return "roles"
}

// IsAdmin reports whether this is the administrator role.
func (r *Role) IsAdmin() bool {
	return r != nil && r.Name == RoleAdministrador
}

// IsEmployee reports whether this is the employee role.
func (r *Role) IsEmployee() bool {
	return r != nil && r.Name == RoleEmpleado
}
