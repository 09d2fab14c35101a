package models

import "time"

// Assignment binds one employee to one function on one calendar date,
// optionally timed, with an active/inactive flag. Inactive rows are retained
// for history and excluded from current-schedule queries; Active to Inactive
// is the only allowed state transition. Deletion is a separate, unrelated
// hard-delete operation.
type Assignment struct {
	// ID is the unique identifier for the assignment.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// UserID is the assigned employee; rows cascade away with the user.
	UserID uint64 `gorm:"not null;index:idx_user_date;constraint:OnDelete:CASCADE" json:"user_id"`
	// User is the assigned employee.
	User *User `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	// Function is the machine key of the assigned duty.
	Function FunctionKey `gorm:"type:varchar(100);not null;index:idx_function_date" json:"function"`
	// DisplayName is the human label for the duty.
	DisplayName string `gorm:"size:255;not null" json:"display_name"`
	// Date is the calendar day of the shift, normalized to midnight UTC.
	Date time.Time `gorm:"type:date;not null;index:idx_user_date;index:idx_function_date" json:"date"`
	// StartTime is the optional shift start as "HH:MM".
	// StartTime and EndTime are independent; a one-sided window is stored as given.
	StartTime *string `gorm:"size:5" json:"start_time"`
	// EndTime is the optional shift end as "HH:MM".
	EndTime *string `gorm:"size:5" json:"end_time"`
	// Notes is optional free text.
	Notes *string `gorm:"type:text" json:"notes"`
	// IsActive flags whether the assignment is currently in effect.
	IsActive bool `gorm:"not null;default:true" json:"is_active"`
	// CreatedAt is the timestamp when the assignment was created (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the timestamp when the assignment was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the database table name for the Assignment model.
func (Assignment) TableName() string {
	return "assignments"
}

// DateOnly truncates t to its calendar day in UTC. All assignment dates are
// stored in this normalized form so equality and range scopes behave across
// engines.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day normalized like DateOnly.
func Today() time.Time {
	return DateOnly(time.Now().UTC())
}
