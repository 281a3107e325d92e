package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"github.com/bumbaRasch/medical-practice-site-sub000/configs"
	"github.com/bumbaRasch/medical-practice-site-sub000/models"
	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/i18n"
)

// ErrMailboxNotConfigured means no practice mailbox is set. The submission
// service handles it like any other delivery failure: the record is already
// committed, so it is logged and the user still sees success.
var ErrMailboxNotConfigured = errors.New("practice mailbox is not configured")

// Mailer sends the staff notification for a persisted form request,
// rendered in the locale active at submission time.
type Mailer interface {
	SendFormRequestNotification(ctx context.Context, loc i18n.Locale, request *models.FormRequest, reason *models.ContactReason) error
}

// SMTPMailer delivers notifications over plain SMTP.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	to       string
}

// NewSMTPMailer builds a mailer from the application config.
func NewSMTPMailer(cfg *configs.Config) *SMTPMailer {
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFromEmail,
		to:       cfg.PracticeMailbox,
	}
}

const notificationTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>{{.Heading}}</title></head>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.Heading}}</h2>
  <table cellpadding="6">
    <tr><td><strong>{{.Labels.name}}:</strong></td><td>{{.FullName}}</td></tr>
    <tr><td><strong>{{.Labels.email}}:</strong></td><td>{{.Email}}</td></tr>
    <tr><td><strong>{{.Labels.reason}}:</strong></td><td>{{.Reason}}</td></tr>
    {{if .Phone}}<tr><td><strong>{{.Labels.phone}}:</strong></td><td>{{.Phone}}</td></tr>{{end}}
    {{if .PreferredAt}}<tr><td><strong>{{.Labels.preferred_at}}:</strong></td><td>{{.PreferredAt}}</td></tr>{{end}}
  </table>
  {{if .Message}}<p><strong>{{.Labels.message}}:</strong></p>
  <blockquote style="border-left: 3px solid #0066cc; padding-left: 10px;">{{.Message}}</blockquote>{{end}}
  <p style="color: #888; font-size: 12px;">{{.Footer}}</p>
</body>
</html>`

var notificationTmpl = template.Must(template.New("notification").Parse(notificationTemplate))

type notificationData struct {
	Heading     string
	Labels      map[string]string
	FullName    string
	Email       string
	Reason      string
	Phone       string
	PreferredAt string
	Message     string
	Footer      string
}

// IsConfigured reports whether SMTP delivery can be attempted at all.
func (m *SMTPMailer) IsConfigured() bool {
	return m.host != "" && m.to != ""
}

// SendFormRequestNotification renders and dispatches one notification mail
// to the configured practice mailbox.
func (m *SMTPMailer) SendFormRequestNotification(ctx context.Context, loc i18n.Locale, request *models.FormRequest, reason *models.ContactReason) error {
	if m.to == "" {
		return ErrMailboxNotConfigured
	}
	if m.host == "" {
		return errors.New("SMTP host is not configured")
	}

	data := notificationData{
		Heading: i18n.T(loc, "mail.heading"),
		Labels: map[string]string{
			"name":         i18n.T(loc, "mail.label.name"),
			"email":        i18n.T(loc, "mail.label.email"),
			"reason":       i18n.T(loc, "mail.label.reason"),
			"phone":        i18n.T(loc, "mail.label.phone"),
			"preferred_at": i18n.T(loc, "mail.label.preferred_at"),
			"message":      i18n.T(loc, "mail.label.message"),
		},
		FullName: request.FullName,
		Email:    request.Email,
		Reason:   reason.LocalizedName(loc),
		Footer:   i18n.T(loc, "mail.footer"),
	}
	if request.Phone != nil {
		data.Phone = *request.Phone
	}
	if request.PreferredDatetime != nil {
		data.PreferredAt = request.PreferredDatetime.Format(time.RFC1123)
	}
	if request.Message != nil {
		data.Message = *request.Message
	}

	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render notification template: %w", err)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		m.from, m.to, request.Email, i18n.T(loc, "mail.subject"), body.String(),
	))

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.from, []string{m.to}, msg); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}

var _ Mailer = (*SMTPMailer)(nil)
