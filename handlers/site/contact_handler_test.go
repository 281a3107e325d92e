package site

import (
	"context"
	"errors"
	"fmt"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bumbaRasch/medical-practice-site-sub000/models"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/i18n"
	"github.com/bumbaRasch/medical-practice-site-sub000/services"
)

type stubMailer struct {
	calls      int
	lastLocale i18n.Locale
	err        error
}

func (m *stubMailer) SendFormRequestNotification(_ context.Context, loc i18n.Locale, _ *models.FormRequest, _ *models.ContactReason) error {
	m.calls++
	m.lastLocale = loc
	return m.err
}

type contactFixture struct {
	app      *fiber.App
	db       *gorm.DB
	mailer   *stubMailer
	reasonID uint
}

func newContactFixture(t *testing.T, loc i18n.Locale) *contactFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:contact_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ContactReason{}, &models.FormRequest{}))

	reason := models.ContactReason{Key: models.ReasonKeyTermin, NameDE: "Terminanfrage", NameEN: "Appointment request", SortOrder: 10, IsActive: true}
	require.NoError(t, db.Create(&reason).Error)

	mailer := &stubMailer{}
	svc := services.NewFormRequestServiceWithDeps(db, mailer, time.Now, false)
	handler := NewContactHandlerWithDeps(svc)

	app := fiber.New()
	store := session.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("session_store", store)
		c.Locals("Locale", loc)
		c.SetUserContext(i18n.WithLocale(c.UserContext(), loc))
		return c.Next()
	})
	app.Post("/kontakt", handler.SubmitContact)

	return &contactFixture{app: app, db: db, mailer: mailer, reasonID: reason.ID}
}

func (f *contactFixture) submit(t *testing.T, values url.Values) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/kontakt", strings.NewReader(values.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode, resp.Header.Get(fiber.HeaderLocation)
}

func (f *contactFixture) requestCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&models.FormRequest{}).Count(&count).Error)
	return count
}

func TestSubmitContact_ValidSubmissionRedirectsWithSuccess(t *testing.T) {
	f := newContactFixture(t, i18n.LocaleDE)

	status, location := f.submit(t, url.Values{
		"full_name":         {"Maria Mustermann"},
		"email":             {"maria@example.com"},
		"contact_reason_id": {fmt.Sprintf("%d", f.reasonID)},
	})

	assert.Equal(t, fiber.StatusFound, status)
	assert.Equal(t, "/kontakt", location)
	assert.EqualValues(t, 1, f.requestCount(t))
	assert.Equal(t, 1, f.mailer.calls)
}

func TestSubmitContact_InvalidInputRedirectsWithoutPersisting(t *testing.T) {
	f := newContactFixture(t, i18n.LocaleDE)

	status, location := f.submit(t, url.Values{
		"full_name":         {"Maria Mustermann"},
		"email":             {"not-an-email"},
		"contact_reason_id": {fmt.Sprintf("%d", f.reasonID)},
	})

	assert.Equal(t, fiber.StatusSeeOther, status)
	assert.Equal(t, "/kontakt", location)
	assert.EqualValues(t, 0, f.requestCount(t))
	assert.Equal(t, 0, f.mailer.calls)
}

func TestSubmitContact_MailFailureStillSucceedsForUser(t *testing.T) {
	f := newContactFixture(t, i18n.LocaleDE)
	f.mailer.err = errors.New("smtp: connection refused")

	status, _ := f.submit(t, url.Values{
		"full_name":         {"Maria Mustermann"},
		"email":             {"maria@example.com"},
		"contact_reason_id": {fmt.Sprintf("%d", f.reasonID)},
	})

	assert.Equal(t, fiber.StatusFound, status)
	assert.EqualValues(t, 1, f.requestCount(t))
}

func TestSubmitContact_NotificationRendersInRequestLocale(t *testing.T) {
	f := newContactFixture(t, i18n.LocaleEN)

	status, _ := f.submit(t, url.Values{
		"full_name":         {"John Doe"},
		"email":             {"john@example.com"},
		"contact_reason_id": {fmt.Sprintf("%d", f.reasonID)},
	})

	assert.Equal(t, fiber.StatusFound, status)
	assert.Equal(t, i18n.LocaleEN, f.mailer.lastLocale)
}

func TestSubmitContact_UnparsableBodyRedirectsWithError(t *testing.T) {
	f := newContactFixture(t, i18n.LocaleDE)

	req := httptest.NewRequest("POST", "/kontakt", strings.NewReader("{"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/kontakt", resp.Header.Get(fiber.HeaderLocation))
	assert.EqualValues(t, 0, f.requestCount(t))
}
