package models

import (
	"fmt"

	"github.com/bumbaRasch/medical-practice-site-sub000/pkg/i18n"

	"gorm.io/gorm"
)

// ContactReason is the reference table behind the contact form's reason
// selector. Rows are seeded out of band and read-only for the public site;
// only active reasons are offered to users.
type ContactReason struct {
	BaseModel
	Key       string `gorm:"type:varchar(50);uniqueIndex;not null"`
	NameDE    string `gorm:"type:varchar(100);not null"`
	NameEN    string `gorm:"type:varchar(100);not null"`
	SortOrder int    `gorm:"not null;default:0;index"`
	// No default tag: GORM drops zero-valued fields with a default from the
	// INSERT, which would silently turn IsActive:false into an active row.
	IsActive bool `gorm:"not null;index"`
}

// The fixed set of allowed reason keys. A reason outside this set is
// rejected at write time.
const (
	ReasonKeyTermin       = "termin"
	ReasonKeyRezept       = "rezept"
	ReasonKeyUeberweisung = "ueberweisung"
	ReasonKeyFrage        = "frage"
	ReasonKeyBeschwerde   = "beschwerde"
	ReasonKeyNotfall      = "notfall"
	ReasonKeySonstiges    = "sonstiges"
)

var allowedReasonKeys = map[string]struct{}{
	ReasonKeyTermin:       {},
	ReasonKeyRezept:       {},
	ReasonKeyUeberweisung: {},
	ReasonKeyFrage:        {},
	ReasonKeyBeschwerde:   {},
	ReasonKeyNotfall:      {},
	ReasonKeySonstiges:    {},
}

// IsAllowedReasonKey reports whether key belongs to the enumerated set.
func IsAllowedReasonKey(key string) bool {
	_, ok := allowedReasonKeys[key]
	return ok
}

// BeforeSave enforces the allowed-key invariant for create and update.
func (r *ContactReason) BeforeSave(_ *gorm.DB) error {
	if !IsAllowedReasonKey(r.Key) {
		return fmt.Errorf("contact reason key %q is not in the allowed set", r.Key)
	}
	return nil
}

// LocalizedName returns the display name for the given locale.
func (r *ContactReason) LocalizedName(loc i18n.Locale) string {
	if loc == i18n.LocaleEN {
		return r.NameEN
	}
	return r.NameDE
}
