package assignment

import "errors"

var (
	// ErrAssignmentNotFound is returned when an assignment is not found.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrInvalidFunction is returned for a function key outside the known set.
	ErrInvalidFunction = errors.New("unknown function key")
	// ErrInvalidTime is returned when a start or end time is not HH:MM.
	ErrInvalidTime = errors.New("time must be in HH:MM format")
	// ErrInvalidMonth is returned for a calendar month outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	// ErrInvalidYear is returned for a non-positive calendar year.
	ErrInvalidYear = errors.New("year must be positive")
	// ErrActiveConflict is returned when an insert or update would leave two
	// active assignments for the same employee and day.
	ErrActiveConflict = errors.New("an active assignment already exists for this employee and date")
	// ErrReactivationNotAllowed is returned when an update tries to flip an
	// inactive assignment back to active.
	ErrReactivationNotAllowed = errors.New("inactive assignments can not be reactivated")
)
