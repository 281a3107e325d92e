package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bumbaRasch/medical-practice-site-sub000/models"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/forms"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/i18n"
)

var testClock = func() time.Time {
	return time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:practice_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ContactReason{}, &models.FormRequest{}))
	return db
}

type seededReasons struct {
	termin   models.ContactReason
	rezept   models.ContactReason
	inactive models.ContactReason
}

func seedReasons(t *testing.T, db *gorm.DB) seededReasons {
	t.Helper()
	s := seededReasons{
		termin:   models.ContactReason{Key: models.ReasonKeyTermin, NameDE: "Terminanfrage", NameEN: "Appointment request", SortOrder: 10, IsActive: true},
		rezept:   models.ContactReason{Key: models.ReasonKeyRezept, NameDE: "Rezeptbestellung", NameEN: "Prescription order", SortOrder: 20, IsActive: true},
		inactive: models.ContactReason{Key: models.ReasonKeyNotfall, NameDE: "Notfall", NameEN: "Emergency", SortOrder: 60, IsActive: false},
	}
	require.NoError(t, db.Create(&s.termin).Error)
	require.NoError(t, db.Create(&s.rezept).Error)
	require.NoError(t, db.Create(&s.inactive).Error)
	return s
}

type fakeMailer struct {
	calls      int
	lastLocale i18n.Locale
	lastReq    *models.FormRequest
	lastReason *models.ContactReason
	err        error
}

func (m *fakeMailer) SendFormRequestNotification(_ context.Context, loc i18n.Locale, request *models.FormRequest, reason *models.ContactReason) error {
	m.calls++
	m.lastLocale = loc
	m.lastReq = request
	m.lastReason = reason
	return m.err
}

func countRequests(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.FormRequest{}).Count(&count).Error)
	return count
}

func validSubmission(reasonID uint) forms.ContactFormInput {
	return forms.ContactFormInput{
		FullName:        "Maria Mustermann",
		Email:           "maria@example.com",
		ContactReasonID: fmt.Sprintf("%d", reasonID),
	}
}

func TestSubmit_PersistsRecordAndNotifiesOnce(t *testing.T) {
	db := newTestDB(t)
	reasons := seedReasons(t, db)
	mailer := &fakeMailer{}
	svc := NewFormRequestServiceWithDeps(db, mailer, testClock, false)

	record, verrs, err := svc.Submit(context.Background(), validSubmission(reasons.termin.ID))
	require.NoError(t, err)
	require.Nil(t, verrs)
	require.NotNil(t, record)
	assert.NotZero(t, record.ID)

	assert.EqualValues(t, 1, countRequests(t, db))
	assert.Equal(t, 1, mailer.calls)
	assert.Equal(t, record.ID, mailer.lastReq.ID)
	assert.Equal(t, models.ReasonKeyTermin, mailer.lastReason.Key)

	var stored models.FormRequest
	require.NoError(t, db.Preload("ContactReason").First(&stored, record.ID).Error)
	assert.Equal(t, "Maria Mustermann", stored.FullName)
	assert.Equal(t, "maria@example.com", stored.Email)
	assert.Equal(t, reasons.termin.ID, stored.ContactReasonID)
	assert.Equal(t, models.ReasonKeyTermin, stored.ContactReason.Key)
	assert.Nil(t, stored.Phone)
	assert.Nil(t, stored.PreferredDatetime)
	assert.Nil(t, stored.Message)
}

func TestSubmit_PersistsOptionalFields(t *testing.T) {
	db := newTestDB(t)
	reasons := seedReasons(t, db)
	svc := NewFormRequestServiceWithDeps(db, &fakeMailer{}, testClock, false)

	in := validSubmission(reasons.rezept.ID)
	in.Phone = "030 123456"
	in.PreferredDatetime = testClock().Add(72 * time.Hour).Format("2006-01-02T15:04")
	in.Message = "Bitte um Rückruf am Vormittag."

	record, verrs, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	require.Nil(t, verrs)

	var stored models.FormRequest
	require.NoError(t, db.First(&stored, record.ID).Error)
	require.NotNil(t, stored.Phone)
	assert.Equal(t, "030 123456", *stored.Phone)
	require.NotNil(t, stored.PreferredDatetime)
	assert.True(t, stored.PreferredDatetime.After(testClock()))
	assert.True(t, stored.PreferredDatetime.Equal(*record.PreferredDatetime),
		"preferred datetime must survive the database round trip")
	require.NotNil(t, stored.Message)
	assert.Equal(t, "Bitte um Rückruf am Vormittag.", *stored.Message)
}

func TestSubmit_ValidationFailureWritesNothing(t *testing.T) {
	db := newTestDB(t)
	seedReasons(t, db)
	mailer := &fakeMailer{}
	svc := NewFormRequestServiceWithDeps(db, mailer, testClock, false)

	in := forms.ContactFormInput{
		FullName:        " ",
		Email:           "not-an-email",
		ContactReasonID: "",
	}
	record, verrs, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Nil(t, record)
	require.True(t, verrs.Any())
	assert.True(t, verrs.Has("full_name"))
	assert.Equal(t, "validation.email.invalid", verrs["email"])
	assert.True(t, verrs.Has("contact_reason_id"))

	assert.EqualValues(t, 0, countRequests(t, db))
	assert.Equal(t, 0, mailer.calls)
}

func TestSubmit_InactiveReasonIsRejected(t *testing.T) {
	db := newTestDB(t)
	reasons := seedReasons(t, db)
	mailer := &fakeMailer{}
	svc := NewFormRequestServiceWithDeps(db, mailer, testClock, false)

	record, verrs, err := svc.Submit(context.Background(), validSubmission(reasons.inactive.ID))
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.Equal(t, "validation.contact_reason_id.invalid", verrs["contact_reason_id"])

	assert.EqualValues(t, 0, countRequests(t, db))
	assert.Equal(t, 0, mailer.calls)
}

func TestSubmit_UnknownReasonIsRejected(t *testing.T) {
	db := newTestDB(t)
	seedReasons(t, db)
	svc := NewFormRequestServiceWithDeps(db, &fakeMailer{}, testClock, false)

	record, verrs, err := svc.Submit(context.Background(), validSubmission(9999))
	require.NoError(t, err)
	assert.Nil(t, record)
	assert.Equal(t, "validation.contact_reason_id.invalid", verrs["contact_reason_id"])
	assert.EqualValues(t, 0, countRequests(t, db))
}

func TestSubmit_ReasonErrorJoinsFieldErrors(t *testing.T) {
	db := newTestDB(t)
	reasons := seedReasons(t, db)
	svc := NewFormRequestServiceWithDeps(db, &fakeMailer{}, testClock, false)

	in := validSubmission(reasons.inactive.ID)
	in.Email = "broken"
	_, verrs, err := svc.Submit(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "validation.email.invalid", verrs["email"])
	assert.Equal(t, "validation.contact_reason_id.invalid", verrs["contact_reason_id"])
}

func TestSubmit_MailFailureKeepsRecordInProduction(t *testing.T) {
	db := newTestDB(t)
	reasons := seedReasons(t, db)
	mailer := &fakeMailer{err: errors.New("smtp: connection refused")}
	svc := NewFormRequestServiceWithDeps(db, mailer, testClock, false)

	record, verrs, err := svc.Submit(context.Background(), validSubmission(reasons.termin.ID))
	require.NoError(t, err)
	require.Nil(t, verrs)
	require.NotNil(t, record)

	// The transaction committed before the mail attempt, so the record
	// survives the delivery failure and the user still sees success.
	assert.EqualValues(t, 1, countRequests(t, db))
	assert.Equal(t, 1, mailer.calls)
}

func TestSubmit_MailFailureSurfacesInLocalMode(t *testing.T) {
	db := newTestDB(t)
	reasons := seedReasons(t, db)
	mailer := &fakeMailer{err: errors.New("smtp: connection refused")}
	svc := NewFormRequestServiceWithDeps(db, mailer, testClock, true)

	record, verrs, err := svc.Submit(context.Background(), validSubmission(reasons.termin.ID))
	require.ErrorIs(t, err, ErrNotificationFailed)
	assert.Nil(t, verrs)
	require.NotNil(t, record)
	assert.EqualValues(t, 1, countRequests(t, db))
}

func TestSubmit_NotificationUsesRequestLocale(t *testing.T) {
	db := newTestDB(t)
	reasons := seedReasons(t, db)
	mailer := &fakeMailer{}
	svc := NewFormRequestServiceWithDeps(db, mailer, testClock, false)

	ctx := i18n.WithLocale(context.Background(), i18n.LocaleEN)
	_, _, err := svc.Submit(ctx, validSubmission(reasons.termin.ID))
	require.NoError(t, err)
	assert.Equal(t, i18n.LocaleEN, mailer.lastLocale)
}

func TestSubmit_DefaultsToGermanWithoutLocale(t *testing.T) {
	db := newTestDB(t)
	reasons := seedReasons(t, db)
	mailer := &fakeMailer{}
	svc := NewFormRequestServiceWithDeps(db, mailer, testClock, false)

	_, _, err := svc.Submit(context.Background(), validSubmission(reasons.termin.ID))
	require.NoError(t, err)
	assert.Equal(t, i18n.LocaleDE, mailer.lastLocale)
}
