package configs

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var sessionStore *session.Store

// SetupSession creates (once) the cookie-backed session store used for
// flash messages and the remembered locale.
func SetupSession() *session.Store {
	if sessionStore != nil {
		return sessionStore
	}
	sessionStore = session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:practice_session",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	})
	return sessionStore
}

// SetupCSRF returns the CSRF middleware protecting form POSTs. The token is
// exposed through locals so templates can embed it as a hidden field.
func SetupCSRF() fiber.Handler {
	return csrf.New(csrf.Config{
		KeyLookup:      "form:_token",
		CookieName:     "practice_csrf",
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     1 * time.Hour,
		ContextKey:     "csrf",
	})
}
