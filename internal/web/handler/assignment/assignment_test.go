package assignment

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mcap-hotel/staffdesk/internal/config"
	assignmentctl "github.com/mcap-hotel/staffdesk/internal/db/controller/assignment"
	"github.com/mcap-hotel/staffdesk/internal/db/models"
)

// setupTest builds a Fiber app with the assignment routes over an in-memory
// SQLite database carrying the single-active unique index.
func setupTest(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Role{}, &models.User{}, &models.Assignment{})
	require.NoError(t, err, "failed to migrate test database")

	err = db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_assignments_active_user_date
		 ON assignments (user_id, date) WHERE is_active`,
	).Error
	require.NoError(t, err, "failed to create single-active index")

	app := fiber.New()
	cfg := &config.Config{Title: "MCAP Hotel"}

	var s Service
	s.Init(app, cfg, db)

	return app, db
}

func seedEmployee(t *testing.T, db *gorm.DB, name, email string) *models.User {
	t.Helper()

	role := &models.Role{}
	err := db.Where("name = ?", models.RoleEmpleado).
		FirstOrCreate(role, models.Role{Name: models.RoleEmpleado, DisplayName: "Empleado"}).Error
	require.NoError(t, err, "failed to seed role")

	u := &models.User{Name: name, Email: email, RoleID: &role.ID}
	require.NoError(t, db.Create(u).Error, "failed to seed user")

	return u
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err, "app.Test failed")

	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	defer func() {
		_ = resp.Body.Close()
	}()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// validationReply mirrors the 422 payload shape.
type validationReply struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func TestCreate(t *testing.T) {
	app, db := setupTest(t)
	ana := seedEmployee(t, db, "Ana Torres", "ana@mcap.com")

	testCases := []struct {
		name           string
		body           string
		expectedStatus int
		expectedField  string
	}{
		{
			name:           "malformed body",
			body:           `{`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing required fields",
			body:           `{"user_id": 1}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "function",
		},
		{
			name:           "unknown function",
			body:           fmt.Sprintf(`{"user_id":%d,"function":"portero","display_name":"Portero","date":"2026-03-10"}`, ana.ID),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "function",
		},
		{
			name:           "bad date format",
			body:           fmt.Sprintf(`{"user_id":%d,"function":"cocina","display_name":"Cocina","date":"10/03/2026"}`, ana.ID),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "date",
		},
		{
			name:           "bad start time",
			body:           fmt.Sprintf(`{"user_id":%d,"function":"cocina","display_name":"Cocina","date":"2026-03-10","start_time":"8am"}`, ana.ID),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "start_time",
		},
		{
			name:           "unknown employee",
			body:           `{"user_id":9999,"function":"cocina","display_name":"Cocina","date":"2026-03-10"}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedField:  "user_id",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, Path, tc.body)

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			if tc.expectedField != "" {
				var reply validationReply
				decodeBody(t, resp, &reply)
				assert.Contains(t, reply.Errors, tc.expectedField)
			} else {
				_ = resp.Body.Close()
			}
		})
	}

	t.Run("successful create", func(t *testing.T) {
		body := fmt.Sprintf(
			`{"user_id":%d,"function":"recepcion","display_name":"Recepción","date":"2026-03-10","start_time":"08:00","end_time":"16:00","notes":"turno de mañana"}`,
			ana.ID,
		)
		resp := doJSON(t, app, http.MethodPost, Path, body)

		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var reply struct {
			Message    string            `json:"message"`
			Assignment models.Assignment `json:"assignment"`
		}
		decodeBody(t, resp, &reply)

		assert.Equal(t, "Asignación creada exitosamente", reply.Message)
		assert.NotZero(t, reply.Assignment.ID)
		assert.Equal(t, models.FunctionRecepcion, reply.Assignment.Function)
		assert.True(t, reply.Assignment.IsActive)
		require.NotNil(t, reply.Assignment.User, "created reply carries the employee")
		assert.Equal(t, "Ana Torres", reply.Assignment.User.Name)
		require.NotNil(t, reply.Assignment.StartTime)
		assert.Equal(t, "08:00", *reply.Assignment.StartTime)
	})

	t.Run("second active assignment on the same day conflicts", func(t *testing.T) {
		body := fmt.Sprintf(
			`{"user_id":%d,"function":"cocina","display_name":"Cocina","date":"2026-03-10"}`,
			ana.ID,
		)
		resp := doJSON(t, app, http.MethodPost, Path, body)

		defer func() {
			_ = resp.Body.Close()
		}()

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestTodayAndByDate(t *testing.T) {
	app, db := setupTest(t)
	ana := seedEmployee(t, db, "Ana Torres", "ana@mcap.com")
	maria := seedEmployee(t, db, "María López", "maria@mcap.com")

	today := models.Today()
	other := today.AddDate(0, 0, 5)

	for _, row := range []models.Assignment{
		{UserID: maria.ID, Function: models.FunctionRecepcion, DisplayName: "Recepción", Date: today, IsActive: true},
		{UserID: ana.ID, Function: models.FunctionCocina, DisplayName: "Cocina", Date: today, IsActive: true},
		{UserID: ana.ID, Function: models.FunctionLimpieza, DisplayName: "Limpieza", Date: other, IsActive: true},
	} {
		require.NoError(t, db.Create(&row).Error)
	}

	t.Run("today", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, Path+"/today", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var rows []models.Assignment
		decodeBody(t, resp, &rows)

		require.Len(t, rows, 2)
		assert.Equal(t, models.FunctionCocina, rows[0].Function, "function order")
		require.NotNil(t, rows[0].User)
	})

	t.Run("explicit date", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, Path+"?date="+other.Format("2006-01-02"), "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var rows []models.Assignment
		decodeBody(t, resp, &rows)

		require.Len(t, rows, 1)
		assert.Equal(t, models.FunctionLimpieza, rows[0].Function)
	})

	t.Run("bad date parameter", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, Path+"?date=hoy", "")

		defer func() {
			_ = resp.Body.Close()
		}()

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestWhoIsOn(t *testing.T) {
	app, db := setupTest(t)
	ana := seedEmployee(t, db, "Ana Torres", "ana@mcap.com")

	row := models.Assignment{
		UserID: ana.ID, Function: models.FunctionRecepcion, DisplayName: "Recepción",
		Date: models.Today(), IsActive: true,
	}
	require.NoError(t, db.Create(&row).Error)

	t.Run("unknown function", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, Path+"/whoson?function=portero", "")

		defer func() {
			_ = resp.Body.Close()
		}()

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("nobody on duty", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, Path+"/whoson?function=cocina", "")
		require.Equal(t, http.StatusNotFound, resp.StatusCode)

		var reply struct {
			Message string `json:"message"`
		}
		decodeBody(t, resp, &reply)
		assert.Equal(t, "No hay empleado asignado a esta función hoy", reply.Message)
	})

	t.Run("holder found", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, Path+"/whoson?function=recepcion", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var reply struct {
			Function string `json:"function"`
			Employee string `json:"employee"`
		}
		decodeBody(t, resp, &reply)
		assert.Equal(t, "Recepción", reply.Function)
		assert.Equal(t, "Ana Torres", reply.Employee)
	})
}

func TestUpdate(t *testing.T) {
	app, db := setupTest(t)
	ana := seedEmployee(t, db, "Ana Torres", "ana@mcap.com")

	created, err := assignmentctl.Create(db, assignmentctl.CreateInput{
		UserID:   ana.ID,
		Function: models.FunctionRecepcion,
		Date:     time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	target := fmt.Sprintf("%s/%d", Path, created.ID)

	t.Run("invalid id", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, Path+"/abc", `{}`)

		defer func() {
			_ = resp.Body.Close()
		}()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, Path+"/9999", `{"display_name":"x"}`)

		defer func() {
			_ = resp.Body.Close()
		}()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("partial update leaves absent fields alone", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, target, `{"function":"cocina","start_time":"14:00"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var reply struct {
			Assignment models.Assignment `json:"assignment"`
		}
		decodeBody(t, resp, &reply)

		assert.Equal(t, models.FunctionCocina, reply.Assignment.Function)
		require.NotNil(t, reply.Assignment.StartTime)
		assert.Equal(t, "14:00", *reply.Assignment.StartTime)
		assert.True(t, reply.Assignment.IsActive)
	})

	t.Run("reactivation rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodPatch, target, `{"is_active":false}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		resp = doJSON(t, app, http.MethodPatch, target, `{"is_active":true}`)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var reply validationReply
		decodeBody(t, resp, &reply)
		assert.Contains(t, reply.Errors, "is_active")
	})
}

func TestDelete(t *testing.T) {
	app, db := setupTest(t)
	ana := seedEmployee(t, db, "Ana Torres", "ana@mcap.com")

	created, err := assignmentctl.Create(db, assignmentctl.CreateInput{
		UserID:   ana.ID,
		Function: models.FunctionLimpieza,
		Date:     time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	t.Run("not found", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, Path+"/9999", "")

		defer func() {
			_ = resp.Body.Close()
		}()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("hard delete", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodDelete, fmt.Sprintf("%s/%d", Path, created.ID), "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var reply struct {
			Message string `json:"message"`
		}
		decodeBody(t, resp, &reply)
		assert.Equal(t, "Asignación eliminada exitosamente", reply.Message)

		var count int64
		db.Model(&models.Assignment{}).Where("id = ?", created.ID).Count(&count)
		assert.Zero(t, count)
	})
}

func TestEmployeeSchedule(t *testing.T) {
	app, db := setupTest(t)
	ana := seedEmployee(t, db, "Ana Torres", "ana@mcap.com")

	today := models.Today()

	for _, row := range []models.Assignment{
		{UserID: ana.ID, Function: models.FunctionCocina, DisplayName: "Cocina", Date: today.AddDate(0, 0, -2), IsActive: true},
		{UserID: ana.ID, Function: models.FunctionRecepcion, DisplayName: "Recepción", Date: today, IsActive: true},
		{UserID: ana.ID, Function: models.FunctionLimpieza, DisplayName: "Limpieza", Date: today.AddDate(0, 0, 4), IsActive: true},
	} {
		require.NoError(t, db.Create(&row).Error)
	}

	t.Run("unknown employee", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, "/api/employees/9999/schedule", "")

		defer func() {
			_ = resp.Body.Close()
		}()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("future assignments in date order", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/employees/%d/schedule", ana.ID), "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var reply struct {
			Employee    string              `json:"employee"`
			Assignments []models.Assignment `json:"assignments"`
		}
		decodeBody(t, resp, &reply)

		assert.Equal(t, "Ana Torres", reply.Employee)
		require.Len(t, reply.Assignments, 2, "past assignments excluded")
		assert.Equal(t, models.FunctionRecepcion, reply.Assignments[0].Function)
		assert.Equal(t, models.FunctionLimpieza, reply.Assignments[1].Function)
	})
}

func TestMonthlyCalendar(t *testing.T) {
	app, db := setupTest(t)
	ana := seedEmployee(t, db, "Ana Torres", "ana@mcap.com")

	for _, row := range []models.Assignment{
		{UserID: ana.ID, Function: models.FunctionRecepcion, DisplayName: "Recepción", Date: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), IsActive: true},
		{UserID: ana.ID, Function: models.FunctionCocina, DisplayName: "Cocina", Date: time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), IsActive: true},
		{UserID: ana.ID, Function: models.FunctionLimpieza, DisplayName: "Limpieza", Date: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), IsActive: true},
	} {
		require.NoError(t, db.Create(&row).Error)
	}

	t.Run("out-of-range month is rejected, not clamped", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, Path+"/calendar?month=13&year=2026", "")
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		var reply validationReply
		decodeBody(t, resp, &reply)
		assert.Contains(t, reply.Errors, "month")
	})

	t.Run("out-of-range year is rejected", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, Path+"/calendar?month=2&year=0", "")

		defer func() {
			_ = resp.Body.Close()
		}()

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})

	t.Run("month grouped by date", func(t *testing.T) {
		resp := doJSON(t, app, http.MethodGet, Path+"/calendar?month=2&year=2026", "")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var reply struct {
			Month       int                            `json:"month"`
			Year        int                            `json:"year"`
			Assignments map[string][]models.Assignment `json:"assignments"`
		}
		decodeBody(t, resp, &reply)

		assert.Equal(t, 2, reply.Month)
		assert.Equal(t, 2026, reply.Year)
		assert.Len(t, reply.Assignments, 2)
		assert.Contains(t, reply.Assignments, "2026-02-01")
		assert.Contains(t, reply.Assignments, "2026-02-28")
		assert.NotContains(t, reply.Assignments, "2026-03-01")
	})
}
