package routes

import (
	"github.com/bumbaRasch/medical-practice-site-sub000/handlers/site"

	"github.com/gofiber/fiber/v2"
)

// registerSiteRoutes defines every public route of the practice site.
func registerSiteRoutes(app *fiber.App) {
	pages := site.NewPageHandler()
	contact := site.NewContactHandler()
	sitemap := site.NewSitemapHandler()

	app.Get("/", pages.Home)
	app.Get("/leistungen", pages.Services)
	app.Get("/team", pages.Team)
	app.Get("/faq", pages.FAQ)
	app.Get("/kontakt", pages.Contact)
	app.Post("/kontakt", contact.SubmitContact)
	app.Get("/impressum", pages.Imprint)
	app.Get("/datenschutz", pages.Privacy)
	app.Get("/agb", pages.Terms)

	app.Get("/sitemap.xml", sitemap.Sitemap)
}
