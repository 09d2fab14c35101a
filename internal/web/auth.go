package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mcap-hotel/staffdesk/internal/web/handler"
	"github.com/mcap-hotel/staffdesk/internal/web/handler/login"
	"github.com/mcap-hotel/staffdesk/internal/web/session"
)

// AuthMiddleware is a Fiber middleware that checks for user authentication.
// JSON API routes answer 401; page routes redirect to the login page.
func AuthMiddleware(c *fiber.Ctx) error {
	var (
		isLoginPage   = IsLoginPage(c)
		sessDataValid bool
	)

	originalURL := strings.ToLower(c.OriginalURL())
	if strings.HasPrefix(originalURL, "/static") {
		return c.Next()
	}

	// get session cookie
	loginCookie := c.Cookies(handler.SessionCookie)

	if loginCookie != "" {
		sessData := new(session.Data)
		_ = sessData.Read(loginCookie)

		// valid data in session
		if sessData.User.ID > 0 {
			sessDataValid = true
		}
	}

	if sessDataValid {
		if isLoginPage {
			return c.Redirect("/dashboard")
		}

		return c.Next()
	}

	if isLoginPage {
		return c.Next()
	}

	if strings.HasPrefix(originalURL, handler.APIPath) {
		return handler.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	return c.Redirect(login.Path)
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, login.Path)
}
