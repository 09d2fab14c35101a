package models

import "time"

// RoleUser is the pivot row linking a user to a secondary role.
// The primary role lives on users.role_id; this table only carries the
// optional extra roles a user may hold.
type RoleUser struct {
	ID     uint64 `gorm:"primaryKey"`
	UserID uint64 `gorm:"not null;uniqueIndex:idx_role_user;constraint:OnDelete:CASCADE"`
	RoleID uint   `gorm:"not null;uniqueIndex:idx_role_user;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for the RoleUser model.
func (RoleUser) TableName() string {
	return "role_user"
}
