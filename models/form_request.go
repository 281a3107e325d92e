package models

import (
	"time"
)

// FormRequest is one persisted contact/appointment inquiry. Created exactly
// once per successful submission, never updated by the public site and
// soft-deleted if removed administratively.
type FormRequest struct {
	BaseModel
	FullName          string     `gorm:"type:varchar(255);not null"`
	Email             string     `gorm:"type:varchar(255);not null;index"`
	ContactReasonID   uint       `gorm:"not null;index"`
	Phone             *string    `gorm:"type:varchar(50)"`
	PreferredDatetime *time.Time `gorm:"index"`
	Message           *string    `gorm:"type:text"`

	ContactReason ContactReason `gorm:"foreignKey:ContactReasonID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}
