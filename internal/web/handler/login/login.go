package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/mcap-hotel/staffdesk/internal/config"
	"github.com/mcap-hotel/staffdesk/internal/db/controller/user"
	"github.com/mcap-hotel/staffdesk/internal/web/handler"
	"github.com/mcap-hotel/staffdesk/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"
)

// credentials is the login form/JSON body.
type credentials struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New("app or db is nil")
	}

	s.db = db
	s.cfg = cfg

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title": s.cfg.Title,
	})
}

// Post handles the login form submission. Credential verification and the
// administrator role check form one step: no session is written until both
// have passed, so a non-administrator principal is never observable as
// authenticated, not even transiently.
func (s *Service) Post(c *fiber.Ctx) error {
	creds := new(credentials)

	if err := c.BodyParser(creds); err != nil {
		return s.reject(c, InvalidCredentialsMessage)
	}

	dbUser, err := user.GetByEmail(s.db, creds.Email)
	if err != nil {
		if !errors.Is(err, user.ErrUserNotFound) && !errors.Is(err, user.ErrEmptyIdentifier) {
			log.Error().Err(err).Msg("login user lookup failed")
		}

		return s.reject(c, InvalidCredentialsMessage)
	}

	if !dbUser.VerifyPassword(creds.Password) {
		return s.reject(c, InvalidCredentialsMessage)
	}

	// Authorization gate: valid credentials are not enough. A missing role
	// is treated exactly like a non-administrator role.
	if !dbUser.IsAdmin() {
		s.tearDownSession(c)

		return s.reject(c, RoleGateMessage)
	}

	sessionID, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session ID")
		return handler.JSONError(c, fiber.StatusInternalServerError, ErrInternalServerError.Error())
	}

	userSession := &session.Data{
		User: *dbUser,
	}

	if err = userSession.Write(sessionID, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")
		return handler.JSONError(c, fiber.StatusInternalServerError, ErrInternalServerError.Error())
	}

	// set login cookie
	cookieSettings := &fiber.Cookie{
		Name:     handler.SessionCookie,
		Value:    sessionID,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	if c.Is("json") {
		return c.JSON(fiber.Map{
			"message": "Sesión iniciada.",
			"user":    dbUser,
		})
	}

	return c.Redirect("/dashboard")
}

// tearDownSession invalidates any session presented with the request and
// clears the cookie, so a denied principal ends the request unauthenticated.
func (s *Service) tearDownSession(c *fiber.Ctx) {
	if sessionID := c.Cookies(handler.SessionCookie); sessionID != "" {
		if err := session.Destroy(sessionID); err != nil {
			log.Error().Err(err).Msg("failed to destroy session")
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
}

// reject answers a failed login with a field-scoped validation error on the
// email field.
func (s *Service) reject(c *fiber.Ctx, message string) error {
	if c.Is("json") {
		return handler.JSONValidationError(c, message, handler.ValidationErrors{
			"email": {message},
		})
	}

	return c.Status(fiber.StatusUnprocessableEntity).Render("login", fiber.Map{
		"Title": s.cfg.Title,
		"error": message,
	})
}
