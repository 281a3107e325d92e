// Package flashmessages stores one-time, redirect-surviving messages and
// repopulation data in the session: a success or error line, field-keyed
// validation errors and the user's submitted form values.
package flashmessages

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	FlashSuccessKey = "success"
	FlashErrorKey   = "error"

	sessionPrefix       = "flash_"
	formDataSessionKey  = "flash_form_data"
	fieldErrsSessionKey = "flash_field_errors"
)

// FlashData carries the one-time messages read for the current request.
type FlashData struct {
	Success string
	Error   string
}

func getSession(c *fiber.Ctx) (*session.Session, error) {
	store, ok := c.Locals("session_store").(*session.Store)
	if !ok || store == nil {
		return nil, fiber.ErrInternalServerError
	}
	return store.Get(c)
}

// SetFlashMessage stores a one-time message under FlashSuccessKey or
// FlashErrorKey.
func SetFlashMessage(c *fiber.Ctx, key, message string) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	sess.Set(sessionPrefix+key, message)
	return sess.Save()
}

// GetFlashMessages reads and clears both flash message slots.
func GetFlashMessages(c *fiber.Ctx) FlashData {
	sess, err := getSession(c)
	if err != nil {
		return FlashData{}
	}
	data := FlashData{}
	if v, ok := sess.Get(sessionPrefix + FlashSuccessKey).(string); ok {
		data.Success = v
		sess.Delete(sessionPrefix + FlashSuccessKey)
	}
	if v, ok := sess.Get(sessionPrefix + FlashErrorKey).(string); ok {
		data.Error = v
		sess.Delete(sessionPrefix + FlashErrorKey)
	}
	_ = sess.Save()
	return data
}

// SetFlashFormData preserves submitted values for re-display after a
// redirect. Security fields (CSRF token) must not be included by callers.
func SetFlashFormData(c *fiber.Ctx, values map[string]string) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return err
	}
	sess.Set(formDataSessionKey, string(encoded))
	return sess.Save()
}

// GetFlashFormData reads and clears preserved form values.
func GetFlashFormData(c *fiber.Ctx) map[string]string {
	sess, err := getSession(c)
	if err != nil {
		return map[string]string{}
	}
	values := map[string]string{}
	if raw, ok := sess.Get(formDataSessionKey).(string); ok {
		_ = json.Unmarshal([]byte(raw), &values)
		sess.Delete(formDataSessionKey)
		_ = sess.Save()
	}
	return values
}

// SetFlashFieldErrors preserves field-keyed error messages for re-display.
func SetFlashFieldErrors(c *fiber.Ctx, errs map[string]string) error {
	sess, err := getSession(c)
	if err != nil {
		return err
	}
	encoded, err := json.Marshal(errs)
	if err != nil {
		return err
	}
	sess.Set(fieldErrsSessionKey, string(encoded))
	return sess.Save()
}

// GetFlashFieldErrors reads and clears field-keyed error messages.
func GetFlashFieldErrors(c *fiber.Ctx) map[string]string {
	sess, err := getSession(c)
	if err != nil {
		return map[string]string{}
	}
	errs := map[string]string{}
	if raw, ok := sess.Get(fieldErrsSessionKey).(string); ok {
		_ = json.Unmarshal([]byte(raw), &errs)
		sess.Delete(fieldErrsSessionKey)
		_ = sess.Save()
	}
	return errs
}
