// Package forms contains the contact form value object and its fallible
// factory. ContactFormData is the single boundary between untrusted form
// input and trusted domain data: its fields are unexported and the only way
// to obtain an instance is Parse, which returns field-keyed validation
// errors instead of a partially valid object.
package forms

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field length limits for optional free-text input.
const (
	MaxPhoneLength   = 50
	MaxMessageLength = 1000
)

// datetimeLayouts accepted for preferred_datetime. HTML datetime-local
// first, second precision and RFC 3339 as fallbacks.
var datetimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

var validate = validator.New()

// ContactFormInput is the raw, untrusted request body of POST /kontakt.
type ContactFormInput struct {
	FullName          string `form:"full_name"`
	Email             string `form:"email"`
	ContactReasonID   string `form:"contact_reason_id"`
	Phone             string `form:"phone"`
	PreferredDatetime string `form:"preferred_datetime"`
	Message           string `form:"message"`
}

// ValidationErrors maps field names to message catalog keys. Translation
// into the request locale happens at render time.
type ValidationErrors map[string]string

// Add records the first error per field; later errors for the same field
// are ignored so users see one message per input.
func (v ValidationErrors) Add(field, messageKey string) {
	if _, exists := v[field]; !exists {
		v[field] = messageKey
	}
}

// Has reports whether a field carries an error.
func (v ValidationErrors) Has(field string) bool {
	_, ok := v[field]
	return ok
}

// Any reports whether at least one field failed.
func (v ValidationErrors) Any() bool {
	return len(v) > 0
}

// ContactFormData is the validated submission value object. Every exposed
// field has passed the validation rules; absent optional fields are nil.
type ContactFormData struct {
	fullName          string
	email             string
	contactReasonID   uint
	phone             *string
	preferredDatetime *time.Time
	message           *string
}

// Parse trims and validates raw input against the server clock `now`.
// On failure it returns nil data and at least one field error; no side
// effects have occurred at that point. The existence/active check for the
// contact reason id is a persistence concern and stays with the service
// layer, which merges its result into the same error map.
func Parse(in ContactFormInput, now time.Time) (*ContactFormData, ValidationErrors) {
	errs := ValidationErrors{}

	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		errs.Add("full_name", "validation.full_name.required")
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs.Add("email", "validation.email.required")
	case validate.Var(email, "email") != nil:
		errs.Add("email", "validation.email.invalid")
	}

	var reasonID uint
	rawReason := strings.TrimSpace(in.ContactReasonID)
	if rawReason == "" {
		errs.Add("contact_reason_id", "validation.contact_reason_id.required")
	} else if parsed, err := strconv.ParseUint(rawReason, 10, 32); err != nil || parsed == 0 {
		errs.Add("contact_reason_id", "validation.contact_reason_id.invalid")
	} else {
		reasonID = uint(parsed)
	}

	var phone *string
	if p := strings.TrimSpace(in.Phone); p != "" {
		if utf8.RuneCountInString(p) > MaxPhoneLength {
			errs.Add("phone", "validation.phone.too_long")
		} else {
			phone = &p
		}
	}

	var preferredAt *time.Time
	if raw := strings.TrimSpace(in.PreferredDatetime); raw != "" {
		parsed, ok := parseDatetime(raw)
		switch {
		case !ok:
			errs.Add("preferred_datetime", "validation.preferred_datetime.invalid")
		case !parsed.After(now):
			errs.Add("preferred_datetime", "validation.preferred_datetime.not_future")
		default:
			utc := parsed.UTC()
			preferredAt = &utc
		}
	}

	var message *string
	if m := strings.TrimSpace(in.Message); m != "" {
		if utf8.RuneCountInString(m) > MaxMessageLength {
			errs.Add("message", "validation.message.too_long")
		} else {
			message = &m
		}
	}

	if errs.Any() {
		return nil, errs
	}

	return &ContactFormData{
		fullName:          fullName,
		email:             email,
		contactReasonID:   reasonID,
		phone:             phone,
		preferredDatetime: preferredAt,
		message:           message,
	}, nil
}

func parseDatetime(raw string) (time.Time, bool) {
	for _, layout := range datetimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FullName returns the trimmed submitter name.
func (d *ContactFormData) FullName() string { return d.fullName }

// Email returns the trimmed submitter email address.
func (d *ContactFormData) Email() string { return d.email }

// ContactReasonID returns the referenced reason id.
func (d *ContactFormData) ContactReasonID() uint { return d.contactReasonID }

// Phone returns the optional phone number, nil when absent.
func (d *ContactFormData) Phone() *string { return d.phone }

// PreferredDatetime returns the optional preferred slot in UTC, nil when absent.
func (d *ContactFormData) PreferredDatetime() *time.Time { return d.preferredDatetime }

// Message returns the optional free-text message, nil when absent.
func (d *ContactFormData) Message() *string { return d.message }

// Map serializes the value object back to its field values. Absent optional
// fields map to nil; present ones reproduce the parsed values exactly.
func (d *ContactFormData) Map() map[string]any {
	m := map[string]any{
		"full_name":          d.fullName,
		"email":              d.email,
		"contact_reason_id":  d.contactReasonID,
		"phone":              nil,
		"preferred_datetime": nil,
		"message":            nil,
	}
	if d.phone != nil {
		m["phone"] = *d.phone
	}
	if d.preferredDatetime != nil {
		m["preferred_datetime"] = *d.preferredDatetime
	}
	if d.message != nil {
		m["message"] = *d.message
	}
	return m
}
