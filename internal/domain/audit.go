package domain

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TenantID    uuid.UUID      `gorm:"type:uuid;index"`
	Action      string         `gorm:"size:60;index"`
	Entity      string         `gorm:"size:60"`
	EntityID    string         `gorm:"size:60"`
	PerformedBy uuid.UUID      `gorm:"type:uuid"`
	Details     map[string]any `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time
}
