// Package assignment provides query scopes and CRUD operations for managing
// employee shift-function assignments.
package assignment

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mcap-hotel/staffdesk/internal/db/models"
)

// CreateInput carries the fields needed to create an assignment.
type CreateInput struct {
	UserID      uint64
	Function    models.FunctionKey
	DisplayName string
	Date        time.Time
	StartTime   *string
	EndTime     *string
	Notes       *string
}

// UpdateInput carries a partial update; nil fields are left unchanged.
// Setting StartTime, EndTime or Notes to an empty string clears the column.
type UpdateInput struct {
	Function    *models.FunctionKey
	DisplayName *string
	Date        *time.Time
	StartTime   *string
	EndTime     *string
	Notes       *string
	IsActive    *bool
}

func (in *CreateInput) validate() error {
	if !in.Function.Valid() {
		return ErrInvalidFunction
	}

	if err := validateClockTime(in.StartTime); err != nil {
		return err
	}

	return validateClockTime(in.EndTime)
}

// validateClockTime accepts nil or a parseable "HH:MM" string.
func validateClockTime(v *string) error {
	if v == nil || *v == "" {
		return nil
	}

	if _, err := time.Parse("15:04", *v); err != nil {
		return ErrInvalidTime
	}

	return nil
}

func emptyToNil(v *string) *string {
	if v != nil && *v == "" {
		return nil
	}

	return v
}

// Create inserts a new active assignment without any conflict probing.
// When the database enforces the single-active partial unique index, a
// duplicate active row for the same employee and day surfaces as
// ErrActiveConflict.
func Create(db *gorm.DB, in CreateInput) (*models.Assignment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	displayName := in.DisplayName
	if displayName == "" {
		displayName = in.Function.DisplayName()
	}

	row := &models.Assignment{
		UserID:      in.UserID,
		Function:    in.Function,
		DisplayName: displayName,
		Date:        models.DateOnly(in.Date),
		StartTime:   emptyToNil(in.StartTime),
		EndTime:     emptyToNil(in.EndTime),
		Notes:       emptyToNil(in.Notes),
		IsActive:    true,
	}

	result := db.Create(row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrActiveConflict
		}

		return nil, result.Error
	}

	return row, nil
}

// FindActive retrieves the active assignment for the given employee and day.
// Returns ErrAssignmentNotFound when the pair has no active assignment.
func FindActive(db *gorm.DB, userID uint64, date time.Time) (*models.Assignment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var row models.Assignment

	result := db.Scopes(Active, ForDate(date)).
		Where("user_id = ?", userID).
		Order("id ASC").
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}

		return nil, result.Error
	}

	return &row, nil
}

// ReplaceActive deactivates any active assignment for the employee and day
// and inserts the new one, in a single transaction. Callers that want the
// replace-or-cancel confirmation flow probe with FindActive first; this
// function is the committed half of that sequence.
func ReplaceActive(db *gorm.DB, in CreateInput) (*models.Assignment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	var created *models.Assignment

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Assignment{}).
			Where("user_id = ? AND date = ? AND is_active = ?", in.UserID, models.DateOnly(in.Date), true).
			Update("is_active", false)
		if result.Error != nil {
			return result.Error
		}

		row, err := Create(tx, in)
		if err != nil {
			return err
		}

		created = row

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetByID retrieves an assignment by its ID with the user preloaded.
func GetByID(db *gorm.DB, id uint64) (*models.Assignment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var row models.Assignment

	result := db.Preload("User").First(&row, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}

		return nil, result.Error
	}

	return &row, nil
}

// ListForDate retrieves the active assignments for a day, optionally filtered
// by function, ordered by function then id for reproducible listings.
func ListForDate(db *gorm.DB, date time.Time, function models.FunctionKey) ([]models.Assignment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if function != "" && !function.Valid() {
		return nil, ErrInvalidFunction
	}

	tx := db.Preload("User").Scopes(Active, ForDate(date))
	if function != "" {
		tx = tx.Scopes(ByFunction(function))
	}

	var rows []models.Assignment

	result := tx.Order("function ASC, id ASC").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// WhoIsOn retrieves the assignment covering a function on a given day.
// Returns ErrAssignmentNotFound when nobody holds the function that day.
func WhoIsOn(db *gorm.DB, function models.FunctionKey, date time.Time) (*models.Assignment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if !function.Valid() {
		return nil, ErrInvalidFunction
	}

	var row models.Assignment

	result := db.Preload("User").
		Scopes(Active, ForDate(date), ByFunction(function)).
		Order("id ASC").
		First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}

		return nil, result.Error
	}

	return &row, nil
}

// FutureForUser retrieves an employee's active assignments dated today or
// later, ordered by date then id.
func FutureForUser(db *gorm.DB, userID uint64) ([]models.Assignment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []models.Assignment

	result := db.Scopes(Active, Future).
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// MonthlyCalendar retrieves the active assignments within the given month,
// first to last day inclusive, grouped by "YYYY-MM-DD" date key. Rows within
// a day keep date, function, id order.
func MonthlyCalendar(db *gorm.DB, year, month int) (map[string][]models.Assignment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	if year < 1 {
		return nil, ErrInvalidYear
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var rows []models.Assignment

	result := db.Preload("User").
		Scopes(Active).
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC, function ASC, id ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	grouped := make(map[string][]models.Assignment)
	for _, row := range rows {
		key := row.Date.Format("2006-01-02")
		grouped[key] = append(grouped[key], row)
	}

	return grouped, nil
}

// Update applies a partial update to a single assignment. It has no
// cross-row effects and does not re-run conflict detection; the partial
// unique index reports a duplicate-active situation as ErrActiveConflict.
// Reactivating an inactive assignment is rejected.
func Update(db *gorm.DB, id uint64, in UpdateInput) (*models.Assignment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if in.Function != nil && !in.Function.Valid() {
		return nil, ErrInvalidFunction
	}

	if err := validateClockTime(in.StartTime); err != nil {
		return nil, err
	}

	if err := validateClockTime(in.EndTime); err != nil {
		return nil, err
	}

	var row models.Assignment

	result := db.First(&row, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}

		return nil, result.Error
	}

	if in.IsActive != nil && *in.IsActive && !row.IsActive {
		return nil, ErrReactivationNotAllowed
	}

	updates := map[string]interface{}{}

	if in.Function != nil {
		updates["function"] = *in.Function
	}

	if in.DisplayName != nil {
		updates["display_name"] = *in.DisplayName
	}

	if in.Date != nil {
		updates["date"] = models.DateOnly(*in.Date)
	}

	if in.StartTime != nil {
		updates["start_time"] = emptyToNil(in.StartTime)
	}

	if in.EndTime != nil {
		updates["end_time"] = emptyToNil(in.EndTime)
	}

	if in.Notes != nil {
		updates["notes"] = emptyToNil(in.Notes)
	}

	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	if len(updates) == 0 {
		return GetByID(db, id)
	}

	result = db.Model(&row).Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrActiveConflict
		}

		return nil, result.Error
	}

	return GetByID(db, id)
}

// Deactivate flips an assignment to inactive. Flipping an already inactive
// row is a no-op.
func Deactivate(db *gorm.DB, id uint64) (*models.Assignment, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var row models.Assignment

	result := db.First(&row, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}

		return nil, result.Error
	}

	if !row.IsActive {
		return &row, nil
	}

	result = db.Model(&row).Update("is_active", false)
	if result.Error != nil {
		return nil, result.Error
	}

	return &row, nil
}

// Delete removes an assignment permanently.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Assignment{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}

	return nil
}
