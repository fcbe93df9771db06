package model

import (
	"time"

	"gorm.io/gorm"
)

// AuditFields are the audit columns every soft-deletable entity embeds.
// A row with non-null DeletedAt is invisible to normal queries but stays
// physically present and referenceable by historical rows.
type AuditFields struct {
	CreatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index"                              json:"deleted_at,omitempty"`
}
