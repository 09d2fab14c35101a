// Package dashboard renders the landing page with today's duty roster.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mcap-hotel/staffdesk/internal/config"
	"github.com/mcap-hotel/staffdesk/internal/db/controller/assignment"
	"github.com/mcap-hotel/staffdesk/internal/db/models"
	"github.com/mcap-hotel/staffdesk/internal/web/handler"
)

const (
	// Path is the path to the dashboard page.
	Path = "/dashboard"
)

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db

	app.Get(Path, s.Get)
}

// Get renders the dashboard with today's active assignments.
func (s *Service) Get(c *fiber.Ctx) error {
	today := models.Today()

	rows, err := assignment.ListForDate(s.db, today, "")
	if err != nil {
		log.Error().Err(err).Msg("failed to load today's assignments")
		rows = nil
	}

	return c.Render("dashboard", fiber.Map{
		"Title":       s.cfg.Title,
		"Date":        today.Format("02/01/2006"),
		"Assignments": rows,
	}, handler.BaseLayout)
}
