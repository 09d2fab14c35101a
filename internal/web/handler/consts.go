// Package handler holds the shared contract and constants for web handlers.
package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path of the route group.
	RootPath = "/"

	// APIPath is the prefix for the JSON API routes.
	APIPath = "/api"

	// RouterRootPath is the root path within a route group.
	RouterRootPath = "/"

	// SessionCookie is the name of the login session cookie.
	SessionCookie = "session"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)
