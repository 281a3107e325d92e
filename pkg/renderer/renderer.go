// Package renderer centralizes view rendering: it merges per-request locals
// (locale, theme, CSRF token) and flash messages into the template data so
// handlers only pass page-specific values.
package renderer

import (
	"net/http"

	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// Template data keys for flash messages.
const (
	FlashSuccessKeyView = "Success"
	FlashErrorKeyView   = "Error"
)

// SetFlashMessages copies flash data into the render map under the view keys.
func SetFlashMessages(data fiber.Map, flash flashmessages.FlashData) {
	if flash.Success != "" {
		data[FlashSuccessKeyView] = flash.Success
	}
	if flash.Error != "" {
		data[FlashErrorKeyView] = flash.Error
	}
}

// Render renders view inside layout with the merged request data.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status ...int) error {
	if data == nil {
		data = fiber.Map{}
	}
	if loc := c.Locals("Locale"); loc != nil {
		data["Locale"] = loc
	}
	if theme := c.Locals("Theme"); theme != nil {
		data["Theme"] = theme
	}
	if token := c.Locals("csrf"); token != nil {
		data["CsrfToken"] = token
	}

	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}
	return c.Status(code).Render(view, data, layout)
}
