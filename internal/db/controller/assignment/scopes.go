package assignment

import (
	"time"

	"gorm.io/gorm"

	"github.com/mcap-hotel/staffdesk/internal/db/models"
)

// Query scopes over the assignments table. Scopes compose by AND via
// db.Scopes(...); no read path needs OR composition.

// Active keeps only assignments currently in effect.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// Today keeps only assignments for the current calendar day.
func Today(db *gorm.DB) *gorm.DB {
	return db.Where("date = ?", models.Today())
}

// ForDate keeps only assignments for the given calendar day.
func ForDate(date time.Time) func(*gorm.DB) *gorm.DB {
	day := models.DateOnly(date)

	return func(db *gorm.DB) *gorm.DB {
		return db.Where("date = ?", day)
	}
}

// ByFunction keeps only assignments for the given function key.
func ByFunction(function models.FunctionKey) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("function = ?", function)
	}
}

// Future keeps assignments dated today or later.
func Future(db *gorm.DB) *gorm.DB {
	return db.Where("date >= ?", models.Today())
}

// Past keeps assignments dated strictly before today.
func Past(db *gorm.DB) *gorm.DB {
	return db.Where("date < ?", models.Today())
}
