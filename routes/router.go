package routes

import (
	"github.com/bumbaRasch/medical-practice-site-sub000/configs"
	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/i18n"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// SetupRoutes wires the global middleware chain and all site routes.
func SetupRoutes(app *fiber.App) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(securityHeaders())
	app.Use(initializeSessionAndLocals())
	app.Use(configs.SetupCSRF())

	registerSiteRoutes(app)

	app.Use(notFoundHandler)
}

// initializeSessionAndLocals attaches the session store and resolves the
// per-request locale and theme before any handler runs.
func initializeSessionAndLocals() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		resolveLocale(c, sessionStore)
		resolveTheme(c)
		return c.Next()
	}
}

// resolveLocale applies the resolution order: lang query parameter, stored
// session value, Accept-Language header, fixed default. The result is
// written back to the session and threaded through locals plus the request
// context so downstream code never consults globals.
func resolveLocale(c *fiber.Ctx, store *session.Store) {
	var chosen i18n.Locale

	if raw := c.Query("lang"); raw != "" {
		if loc, ok := i18n.FromString(raw); ok {
			chosen = loc
		} else {
			configslog.SLog.Debugf("Ignoring unsupported lang parameter %q", raw)
		}
	}

	sess, sessErr := store.Get(c)

	if chosen == "" && sessErr == nil {
		if raw, ok := sess.Get("locale").(string); ok {
			if loc, ok := i18n.FromString(raw); ok {
				chosen = loc
			}
		}
	}

	if chosen == "" {
		if loc, ok := i18n.MatchHeader(c.Get(fiber.HeaderAcceptLanguage)); ok {
			chosen = loc
		}
	}

	if chosen == "" {
		chosen = i18n.DefaultLocale
	}

	if sessErr == nil {
		sess.Set("locale", string(chosen))
		_ = sess.Save()
	}

	c.Locals("Locale", chosen)
	c.SetUserContext(i18n.WithLocale(c.UserContext(), chosen))
}

// resolveTheme applies cookie, then the color-scheme client hint, then the
// light default. No server state is kept beyond the cookie itself.
func resolveTheme(c *fiber.Ctx) {
	theme := c.Cookies("theme")
	if theme != "light" && theme != "dark" {
		if c.Get("Sec-CH-Prefers-Color-Scheme") == "dark" {
			theme = "dark"
		} else {
			theme = "light"
		}
	}
	c.Locals("Theme", theme)
}

// securityHeaders sets the static response headers for every route.
func securityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	default:
		loc, _ := c.Locals("Locale").(i18n.Locale)
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title":  "404",
			"Locale": loc,
		}, "layouts/error")
	}
}
