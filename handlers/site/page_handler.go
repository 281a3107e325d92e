package site

import (
	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/flashmessages"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/i18n"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/renderer"
	"github.com/bumbaRasch/medical-practice-site-sub000/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const mainLayout = "layouts/main"

// PageHandler renders the informational pages and the contact form.
type PageHandler struct {
	content services.IContentService
	reasons services.IContactReasonService
}

// NewPageHandler wires the handler with default services.
func NewPageHandler() *PageHandler {
	return &PageHandler{
		content: services.NewContentService(),
		reasons: services.NewContactReasonService(),
	}
}

// NewPageHandlerWithDeps wires explicit services (tests).
func NewPageHandlerWithDeps(content services.IContentService, reasons services.IContactReasonService) *PageHandler {
	return &PageHandler{content: content, reasons: reasons}
}

// localeOf reads the locale the middleware resolved for this request.
func localeOf(c *fiber.Ctx) i18n.Locale {
	if loc, ok := c.Locals("Locale").(i18n.Locale); ok {
		return loc
	}
	return i18n.DefaultLocale
}

func (h *PageHandler) baseData(c *fiber.Ctx, titleKey string) fiber.Map {
	loc := localeOf(c)
	return fiber.Map{
		"Title": i18n.T(loc, titleKey),
		"Nav":   h.content.Navigation(loc),
	}
}

// Home renders the start page with services preview and opening hours.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	loc := localeOf(c)
	data := h.baseData(c, "page.home.title")
	data["Services"] = h.content.Services(loc)
	data["OpeningHours"] = h.content.OpeningHours(loc)
	return renderer.Render(c, "pages/home", mainLayout, data)
}

// Services renders the service list page.
func (h *PageHandler) Services(c *fiber.Ctx) error {
	data := h.baseData(c, "page.services.title")
	data["Services"] = h.content.Services(localeOf(c))
	return renderer.Render(c, "pages/services", mainLayout, data)
}

// Team renders the team roster page.
func (h *PageHandler) Team(c *fiber.Ctx) error {
	data := h.baseData(c, "page.team.title")
	data["Team"] = h.content.Team(localeOf(c))
	return renderer.Render(c, "pages/team", mainLayout, data)
}

// FAQ renders the question/answer page.
func (h *PageHandler) FAQ(c *fiber.Ctx) error {
	data := h.baseData(c, "page.faq.title")
	data["FAQ"] = h.content.FAQ(localeOf(c))
	return renderer.Render(c, "pages/faq", mainLayout, data)
}

// Contact renders the contact form with the active reason options, any
// flashed field errors and the preserved previous input.
func (h *PageHandler) Contact(c *fiber.Ctx) error {
	loc := localeOf(c)
	data := h.baseData(c, "page.contact.title")

	options, err := h.reasons.ReasonOptions(c.UserContext(), loc)
	if err != nil {
		configslog.Log.Error("Contact: failed to load reason options", zap.Error(err))
		options = nil
	}
	labels := make(map[string]string)
	for _, field := range []string{"full_name", "email", "contact_reason_id", "phone", "preferred_datetime", "message"} {
		labels[field] = i18n.T(loc, "form.label."+field)
	}

	data["ReasonOptions"] = options
	data["Labels"] = labels
	data["SubmitLabel"] = i18n.T(loc, "form.submit")
	data["OpeningHours"] = h.content.OpeningHours(loc)
	data["FormData"] = flashmessages.GetFlashFormData(c)
	data["FieldErrors"] = flashmessages.GetFlashFieldErrors(c)
	renderer.SetFlashMessages(data, flashmessages.GetFlashMessages(c))

	return renderer.Render(c, "pages/contact", mainLayout, data)
}

// Imprint renders the legal imprint page.
func (h *PageHandler) Imprint(c *fiber.Ctx) error {
	return renderer.Render(c, "pages/imprint", mainLayout, h.baseData(c, "page.imprint.title"))
}

// Privacy renders the privacy policy page.
func (h *PageHandler) Privacy(c *fiber.Ctx) error {
	return renderer.Render(c, "pages/privacy", mainLayout, h.baseData(c, "page.privacy.title"))
}

// Terms renders the terms and conditions page.
func (h *PageHandler) Terms(c *fiber.Ctx) error {
	return renderer.Render(c, "pages/terms", mainLayout, h.baseData(c, "page.terms.title"))
}
