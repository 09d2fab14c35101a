// Package assignment exposes the JSON API for managing shift-function
// assignments.
package assignment

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mcap-hotel/staffdesk/internal/config"
	assignmentctl "github.com/mcap-hotel/staffdesk/internal/db/controller/assignment"
	userctl "github.com/mcap-hotel/staffdesk/internal/db/controller/user"
	"github.com/mcap-hotel/staffdesk/internal/db/models"
	"github.com/mcap-hotel/staffdesk/internal/web/handler"
)

const (
	// Path is the base path for the assignments API.
	Path = handler.APIPath + "/assignments"

	// SchedulePath is the employee future-schedule endpoint.
	SchedulePath = handler.APIPath + "/employees/:id/schedule"

	dateLayout = "2006-01-02"
)

// Service provides CRUD operations for assignments.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the exported instance.
var Handler = Service{}

// Init registers routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	// report validation errors under the json field names
	s.validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0] //nolint:mnd
		if name == "-" {
			return ""
		}

		return name
	})

	app.Get(Path+"/today", s.Today)
	app.Get(Path+"/whoson", s.WhoIsOn)
	app.Get(Path+"/calendar", s.MonthlyCalendar)
	app.Get(Path, s.ByDate)
	app.Post(Path, s.Create)
	app.Patch(Path+"/:id", s.Update)
	app.Put(Path+"/:id", s.Update)
	app.Delete(Path+"/:id", s.Delete)

	app.Get(SchedulePath, s.EmployeeSchedule)
}

// Today lists today's active assignments with their users.
func (s *Service) Today(c *fiber.Ctx) error {
	rows, err := assignmentctl.ListForDate(s.db, models.Today(), "")
	if err != nil {
		log.Error().Err(err).Msg("query today's assignments failed")
		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to load assignments")
	}

	return c.JSON(rows)
}

// ByDate lists active assignments for the day given in the date query
// parameter, defaulting to today.
func (s *Service) ByDate(c *fiber.Ctx) error {
	date := models.Today()

	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return handler.JSONValidationError(c, "invalid date", handler.ValidationErrors{
				"date": {"date must be formatted as YYYY-MM-DD"},
			})
		}

		date = parsed
	}

	rows, err := assignmentctl.ListForDate(s.db, date, "")
	if err != nil {
		log.Error().Err(err).Msg("query assignments by date failed")
		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to load assignments")
	}

	return c.JSON(rows)
}

// Create validates and inserts a new assignment.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(createRequest)

	if err := c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "malformed request body")
	}

	if errs := s.validateStruct(req); errs != nil {
		return handler.JSONValidationError(c, "validation failed", errs)
	}

	function := models.FunctionKey(req.Function)
	if !function.Valid() {
		return handler.JSONValidationError(c, "validation failed", handler.ValidationErrors{
			"function": {"unknown function key"},
		})
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return handler.JSONValidationError(c, "validation failed", handler.ValidationErrors{
			"date": {"date must be formatted as YYYY-MM-DD"},
		})
	}

	if _, err = userctl.GetByID(s.db, req.UserID); err != nil {
		if errors.Is(err, userctl.ErrUserNotFound) {
			return handler.JSONValidationError(c, "validation failed", handler.ValidationErrors{
				"user_id": {"employee not found"},
			})
		}

		log.Error().Err(err).Msg("create assignment user lookup failed")

		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to create assignment")
	}

	row, err := assignmentctl.Create(s.db, assignmentctl.CreateInput{
		UserID:      req.UserID,
		Function:    function,
		DisplayName: req.DisplayName,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Notes:       req.Notes,
	})
	if err != nil {
		if errors.Is(err, assignmentctl.ErrActiveConflict) {
			return handler.JSONError(c, fiber.StatusConflict, err.Error())
		}

		log.Error().Err(err).Msg("create assignment failed")

		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to create assignment")
	}

	created, err := assignmentctl.GetByID(s.db, row.ID)
	if err != nil {
		log.Error().Err(err).Msg("reload created assignment failed")
		created = row
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Asignación creada exitosamente",
		"assignment": created,
	})
}

// Update applies a partial update to one assignment.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	req := new(updateRequest)

	if err = c.BodyParser(req); err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "malformed request body")
	}

	if errs := s.validateStruct(req); errs != nil {
		return handler.JSONValidationError(c, "validation failed", errs)
	}

	in := assignmentctl.UpdateInput{
		DisplayName: req.DisplayName,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Notes:       req.Notes,
		IsActive:    req.IsActive,
	}

	if req.Function != nil {
		function := models.FunctionKey(*req.Function)
		if !function.Valid() {
			return handler.JSONValidationError(c, "validation failed", handler.ValidationErrors{
				"function": {"unknown function key"},
			})
		}

		in.Function = &function
	}

	if req.Date != nil {
		date, parseErr := time.Parse(dateLayout, *req.Date)
		if parseErr != nil {
			return handler.JSONValidationError(c, "validation failed", handler.ValidationErrors{
				"date": {"date must be formatted as YYYY-MM-DD"},
			})
		}

		in.Date = &date
	}

	row, err := assignmentctl.Update(s.db, id, in)
	if err != nil {
		switch {
		case errors.Is(err, assignmentctl.ErrAssignmentNotFound):
			return handler.JSONNotFound(c, "assignment not found")
		case errors.Is(err, assignmentctl.ErrActiveConflict):
			return handler.JSONError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, assignmentctl.ErrReactivationNotAllowed):
			return handler.JSONValidationError(c, "validation failed", handler.ValidationErrors{
				"is_active": {err.Error()},
			})
		}

		log.Error().Err(err).Uint64("id", id).Msg("update assignment failed")

		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to update assignment")
	}

	return c.JSON(fiber.Map{
		"message":    "Asignación actualizada exitosamente",
		"assignment": row,
	})
}

// Delete removes one assignment permanently.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	if err = assignmentctl.Delete(s.db, id); err != nil {
		if errors.Is(err, assignmentctl.ErrAssignmentNotFound) {
			return handler.JSONNotFound(c, "assignment not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("delete assignment failed")

		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to delete assignment")
	}

	return c.JSON(fiber.Map{
		"message": "Asignación eliminada exitosamente",
	})
}

// WhoIsOn answers which employee holds a function today.
func (s *Service) WhoIsOn(c *fiber.Ctx) error {
	function := models.FunctionKey(c.Query("function"))
	if !function.Valid() {
		return handler.JSONValidationError(c, "validation failed", handler.ValidationErrors{
			"function": {"unknown function key"},
		})
	}

	row, err := assignmentctl.WhoIsOn(s.db, function, models.Today())
	if err != nil {
		if errors.Is(err, assignmentctl.ErrAssignmentNotFound) {
			return handler.JSONNotFound(c, "No hay empleado asignado a esta función hoy")
		}

		log.Error().Err(err).Msg("whoson query failed")

		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to load assignment")
	}

	return c.JSON(fiber.Map{
		"function":   row.DisplayName,
		"employee":   row.User.Name,
		"assignment": row,
	})
}

// EmployeeSchedule returns an employee's future active assignments.
func (s *Service) EmployeeSchedule(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, "invalid employee id")
	}

	employee, err := userctl.GetByID(s.db, id)
	if err != nil {
		if errors.Is(err, userctl.ErrUserNotFound) {
			return handler.JSONNotFound(c, "employee not found")
		}

		log.Error().Err(err).Uint64("id", id).Msg("schedule user lookup failed")

		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to load schedule")
	}

	rows, err := assignmentctl.FutureForUser(s.db, id)
	if err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("schedule query failed")
		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to load schedule")
	}

	return c.JSON(fiber.Map{
		"employee":    employee.Name,
		"assignments": rows,
	})
}

// MonthlyCalendar returns the month's active assignments grouped by date.
// Out-of-range month or year values are rejected, not clamped.
func (s *Service) MonthlyCalendar(c *fiber.Ctx) error {
	now := time.Now().UTC()
	month := c.QueryInt("month", int(now.Month()))
	year := c.QueryInt("year", now.Year())

	grouped, err := assignmentctl.MonthlyCalendar(s.db, year, month)
	if err != nil {
		switch {
		case errors.Is(err, assignmentctl.ErrInvalidMonth):
			return handler.JSONValidationError(c, "validation failed", handler.ValidationErrors{
				"month": {err.Error()},
			})
		case errors.Is(err, assignmentctl.ErrInvalidYear):
			return handler.JSONValidationError(c, "validation failed", handler.ValidationErrors{
				"year": {err.Error()},
			})
		}

		log.Error().Err(err).Msg("calendar query failed")

		return handler.JSONError(c, fiber.StatusInternalServerError, "failed to load calendar")
	}

	return c.JSON(fiber.Map{
		"month":       month,
		"year":        year,
		"assignments": grouped,
	})
}

// validateStruct runs the request through the validator and flattens the
// result into the field-scoped error map.
func (s *Service) validateStruct(req interface{}) handler.ValidationErrors {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return handler.ValidationErrors{"body": {"invalid request"}}
	}

	errs := handler.ValidationErrors{}
	for _, fe := range fieldErrors {
		field := fe.Field()
		errs[field] = append(errs[field], "failed on rule: "+fe.Tag())
	}

	return errs
}

func parseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}
