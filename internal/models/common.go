package models

import (
	"time"
)

// AuditFields holds the audit columns shared by mutable tables.
type AuditFields struct {
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
	CreatedBy     string    `gorm:"column:created_by;not null" validate:"max=64"`
	LastUpdatedAt time.Time `gorm:"column:last_updated_at;not null"`
	LastUpdatedBy string    `gorm:"column:last_updated_by;not null" validate:"max=64"`
}
