package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bumbaRasch/medical-practice-site-sub000/configs"
	"github.com/bumbaRasch/medical-practice-site-sub000/configs/configslog"
	"github.com/bumbaRasch/medical-practice-site-sub000/models"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/forms"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/i18n"
	"github.com/bumbaRasch/medical-practice-site-sub000/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FormRequestServiceError is the typed error for submission failures.
type FormRequestServiceError string

func (e FormRequestServiceError) Error() string { return string(e) }

const (
	// ErrSubmissionFailed covers persistence-layer failures: the record was
	// NOT saved and the user must see the generic error message.
	ErrSubmissionFailed FormRequestServiceError = "form request could not be saved"
	// ErrNotificationFailed is only surfaced in local configuration; the
	// record IS saved when this is returned.
	ErrNotificationFailed FormRequestServiceError = "notification email could not be sent"
)

// IFormRequestService runs the contact form submission pipeline:
// validate, persist in a transaction, then notify the practice.
type IFormRequestService interface {
	Submit(ctx context.Context, input forms.ContactFormInput) (*models.FormRequest, forms.ValidationErrors, error)
}

// FormRequestService implements IFormRequestService.
type FormRequestService struct {
	db       *gorm.DB
	requests repositories.IFormRequestRepository
	reasons  repositories.IContactReasonRepository
	mailer   Mailer
	now      func() time.Time
	// failOnNotifyError propagates mail failures to the caller. Enabled in
	// local configuration for debugging visibility; in production a saved
	// record always counts as success.
	failOnNotifyError bool
}

// NewFormRequestService wires the service with the shared DB connection and
// the SMTP mailer.
func NewFormRequestService() IFormRequestService {
	db := configs.GetDB()
	cfg := configs.Get()
	return &FormRequestService{
		db:                db,
		requests:          repositories.NewFormRequestRepository(db),
		reasons:           repositories.NewContactReasonRepository(db),
		mailer:            NewSMTPMailer(cfg),
		now:               time.Now,
		failOnNotifyError: cfg.IsLocal(),
	}
}

// NewFormRequestServiceWithDeps wires the service with explicit
// collaborators. Used by tests and callers that manage their own connection.
func NewFormRequestServiceWithDeps(db *gorm.DB, mailer Mailer, now func() time.Time, failOnNotifyError bool) *FormRequestService {
	if now == nil {
		now = time.Now
	}
	return &FormRequestService{
		db:                db,
		requests:          repositories.NewFormRequestRepository(db),
		reasons:           repositories.NewContactReasonRepository(db),
		mailer:            mailer,
		now:               now,
		failOnNotifyError: failOnNotifyError,
	}
}

// Submit runs one submission through the pipeline. Outcomes:
//   - validation failure: (nil, field errors, nil) — nothing persisted.
//   - persistence failure: (nil, nil, ErrSubmissionFailed).
//   - success: (record, nil, nil); a failed notification is logged with
//     data_safe=true and does not change the outcome (except in local
//     configuration, where it is returned as ErrNotificationFailed).
func (s *FormRequestService) Submit(ctx context.Context, input forms.ContactFormInput) (*models.FormRequest, forms.ValidationErrors, error) {
	now := s.now()

	data, verrs := forms.Parse(input, now)

	// The reason existence/active check needs the reference table but is
	// still validation: it runs alongside the field rules so the user gets
	// all errors at once, and it causes no writes.
	var reason *models.ContactReason
	if rawID, err := strconv.ParseUint(strings.TrimSpace(input.ContactReasonID), 10, 32); err == nil && rawID > 0 {
		found, lookupErr := s.reasons.FindActiveByID(ctx, uint(rawID))
		switch {
		case lookupErr == nil:
			reason = found
		case errors.Is(lookupErr, repositories.ErrNotFound):
			if verrs == nil {
				verrs = forms.ValidationErrors{}
			}
			verrs.Add("contact_reason_id", "validation.contact_reason_id.invalid")
		default:
			configslog.Log.Error("Submit: contact reason lookup failed", zap.Uint64("contact_reason_id", rawID), zap.Error(lookupErr))
			return nil, nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, lookupErr)
		}
	}

	if verrs.Any() {
		return nil, verrs, nil
	}

	record := &models.FormRequest{
		FullName:          data.FullName(),
		Email:             data.Email(),
		ContactReasonID:   data.ContactReasonID(),
		Phone:             data.Phone(),
		PreferredDatetime: data.PreferredDatetime(),
		Message:           data.Message(),
	}

	// The transaction covers the insert and nothing else; it commits before
	// the notification attempt so a mail failure can never jeopardize the
	// durable record.
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		return repositories.NewFormRequestRepositoryTx(tx).Create(ctx, record)
	})
	if txErr != nil {
		configslog.Log.Error("Submit: form request persistence failed", zap.Error(txErr))
		configslog.SecurityEvent(configslog.EventSubmissionFailed,
			zap.String("stage", "persist"),
			zap.Error(txErr),
		)
		return nil, nil, fmt.Errorf("%w: %v", ErrSubmissionFailed, txErr)
	}

	loc := i18n.FromContext(ctx)
	if mailErr := s.mailer.SendFormRequestNotification(ctx, loc, record, reason); mailErr != nil {
		configslog.Log.Error("Submit: notification failed",
			zap.Uint("form_request_id", record.ID),
			zap.Bool("data_safe", true),
			zap.String("impact", "practice_not_notified"),
			zap.Error(mailErr),
		)
		if s.failOnNotifyError {
			return record, nil, fmt.Errorf("%w: %v", ErrNotificationFailed, mailErr)
		}
	} else {
		configslog.Log.Info("Submit: notification sent",
			zap.Uint("form_request_id", record.ID),
			zap.String("locale", string(loc)),
		)
	}

	configslog.SLog.Infof("Form request %d submitted (reason: %s)", record.ID, reason.Key)
	return record, nil, nil
}

var _ IFormRequestService = (*FormRequestService)(nil)
