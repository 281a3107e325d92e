package configslog

import (
	"go.uber.org/zap"
)

// SecurityEventType classifies security-relevant events so they can be
// filtered apart from ordinary operational logs.
type SecurityEventType string

const (
	EventSubmissionFailed  SecurityEventType = "submission_failed"
	EventValidationFailed  SecurityEventType = "validation_failed"
	EventInvalidLocale     SecurityEventType = "invalid_locale"
	EventUnexpectedFailure SecurityEventType = "unexpected_failure"
)

// SecurityEvent emits a structured security log entry. Subject values must
// already be free of PII; callers pass identifiers, never raw form content.
func SecurityEvent(event SecurityEventType, fields ...zap.Field) {
	all := make([]zap.Field, 0, len(fields)+2)
	all = append(all, zap.String("log_type", "security"), zap.String("event", string(event)))
	all = append(all, fields...)
	Log.Warn("security event", all...)
}
