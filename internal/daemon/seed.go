package daemon

import (
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mcap-hotel/staffdesk/internal/config"
	"github.com/mcap-hotel/staffdesk/internal/db/models"
)

func seed(_ *config.Config, db *gorm.DB) {
	// Seed initial data if the roles table is empty.

	var count int64

	db.Model(&models.Role{}).Count(&count)
	if count > 0 {
		return
	}

	adminRole := models.Role{
		Name:        models.RoleAdministrador,
		DisplayName: "Administrador",
		Description: "Usuario con acceso completo al sistema",
	}
	employeeRole := models.Role{
		Name:        models.RoleEmpleado,
		DisplayName: "Empleado",
		Description: "Usuario empleado con funciones asignables por turno",
	}

	db.Create(&adminRole)
	db.Create(&employeeRole)

	// Default admin account. Change the password after first login.
	db.Create(&models.User{
		Name:     "Administrador Principal",
		Email:    "admin@mcap.com",
		Password: models.HashPassword("changeme"),
		RoleID:   &adminRole.ID,
	})

	employees := []models.User{
		{Name: "María González", Email: "maria@mcap.com"},
		{Name: "Ana Martínez", Email: "ana@mcap.com"},
		{Name: "Carmen López", Email: "carmen@mcap.com"},
	}

	for i := range employees {
		employees[i].Password = models.HashPassword("changeme")
		employees[i].RoleID = &employeeRole.ID
		db.Create(&employees[i])
	}

	seedExampleAssignments(db, employees)
	seedHabitaciones(db)

	log.Info().Msg("seeded roles, example users and assignments")
}

// seedExampleAssignments creates a rotating week of example shifts so a fresh
// install has something to show.
func seedExampleAssignments(db *gorm.DB, employees []models.User) {
	functions := []models.FunctionKey{
		models.FunctionRecepcion,
		models.FunctionLimpieza,
		models.FunctionCocina,
	}

	start := "08:00"
	end := "16:00"
	today := models.Today()
	idx := 0

	for day := 0; day < 7; day++ {
		for _, fn := range functions {
			employee := employees[idx%len(employees)]
			notes := "Turno de " + fn.DisplayName()

			db.Create(&models.Assignment{
				UserID:      employee.ID,
				Function:    fn,
				DisplayName: fn.DisplayName(),
				Date:        today.AddDate(0, 0, day),
				StartTime:   &start,
				EndTime:     &end,
				Notes:       &notes,
				IsActive:    true,
			})

			idx++
		}
	}
}

func seedHabitaciones(db *gorm.DB) {
	rooms := []models.Habitacion{
		{Numero: "101", Tipo: "sencilla", PrecioBase: decimal.NewFromInt(45), Estado: "disponible"},
		{Numero: "102", Tipo: "doble", PrecioBase: decimal.NewFromInt(70), Estado: "disponible"},
		{Numero: "201", Tipo: "suite", PrecioBase: decimal.NewFromFloat(120.50), Estado: "mantenimiento"},
	}

	for i := range rooms {
		db.Create(&rooms[i])
	}
}
