package models

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel is embedded by every persisted entity: numeric primary key,
// timestamps and soft delete.
type BaseModel struct {
	ID        uint           `gorm:"primarykey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
