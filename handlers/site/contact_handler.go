package site

import (
	"errors"

	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/flashmessages"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/forms"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/i18n"
	"github.com/bumbaRasch/medical-practice-site-sub000/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const contactPath = "/kontakt"

// ContactHandler processes contact form submissions.
type ContactHandler struct {
	service services.IFormRequestService
}

// NewContactHandler wires the handler with the default service.
func NewContactHandler() *ContactHandler {
	return &ContactHandler{service: services.NewFormRequestService()}
}

// NewContactHandlerWithDeps wires an explicit service (tests).
func NewContactHandlerWithDeps(service services.IFormRequestService) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitContact handles POST /kontakt. Exactly two flash outcomes exist:
// the localized success message (record saved, regardless of mail outcome)
// or the localized generic error (record not saved).
func (h *ContactHandler) SubmitContact(c *fiber.Ctx) error {
	loc := localeOf(c)

	var input forms.ContactFormInput
	if err := c.BodyParser(&input); err != nil {
		configslog.SLog.Warnf("SubmitContact: unparsable form body: %v", err)
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, i18n.T(loc, "flash.contact.error"))
		return c.Redirect(contactPath, fiber.StatusSeeOther)
	}

	record, fieldErrs, err := h.service.Submit(c.UserContext(), input)

	if fieldErrs.Any() {
		translated := make(map[string]string, len(fieldErrs))
		for field, messageKey := range fieldErrs {
			translated[field] = i18n.T(loc, messageKey)
		}
		_ = flashmessages.SetFlashFieldErrors(c, translated)
		_ = flashmessages.SetFlashFormData(c, preservedInput(input))
		return c.Redirect(contactPath, fiber.StatusSeeOther)
	}

	if err != nil {
		if errors.Is(err, services.ErrNotificationFailed) {
			// Local configuration only: the record is saved, the mail is not.
			configslog.SLog.Warnf("SubmitContact: notification failure propagated (record %d saved)", record.ID)
		} else {
			configslog.SecurityEvent(configslog.EventUnexpectedFailure,
				zap.String("endpoint", "POST /kontakt"),
				zap.Error(err),
			)
		}
		_ = flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, i18n.T(loc, "flash.contact.error"))
		_ = flashmessages.SetFlashFormData(c, preservedInput(input))
		return c.Redirect(contactPath, fiber.StatusSeeOther)
	}

	_ = flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, i18n.T(loc, "flash.contact.success"))
	return c.Redirect(contactPath, fiber.StatusFound)
}

// preservedInput returns the submitted values for re-display. The CSRF
// token is not part of ContactFormInput and therefore never preserved.
func preservedInput(input forms.ContactFormInput) map[string]string {
	return map[string]string{
		"full_name":          input.FullName,
		"email":              input.Email,
		"contact_reason_id":  input.ContactReasonID,
		"phone":              input.Phone,
		"preferred_datetime": input.PreferredDatetime,
		"message":            input.Message,
	}
}
