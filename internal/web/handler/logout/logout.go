// Package logout clears the login session.
package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/mcap-hotel/staffdesk/internal/config"
	"github.com/mcap-hotel/staffdesk/internal/web/handler"
	"github.com/mcap-hotel/staffdesk/internal/web/handler/login"
	"github.com/mcap-hotel/staffdesk/internal/web/session"
)

// Service is the logout handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config) {
	if app == nil || cfg == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg

	app.Get(handler.RootPath+"logout", s.Logout)
	app.Post(handler.RootPath+"logout", s.Logout)
}

// Logout handles user logout by clearing the session.
func (s *Service) Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies(handler.SessionCookie)
	if sessionID != "" {
		if err := session.Destroy(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     handler.SessionCookie,
		Value:    "",
		MaxAge:   -1,
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect(login.Path)
}
