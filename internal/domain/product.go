package domain

import (
	"time"

	"github.com/google/uuid"
)

type Promotion struct {
	IsActive           bool       `gorm:"column:promotion_active;default:false"`
	DiscountPercentage float64    `gorm:"column:promotion_discount_pct;type:decimal(5,2);default:0"`
	Reason             string     `gorm:"column:promotion_reason;size:140"`
	StartDate          *time.Time `gorm:"column:promotion_start"`
	EndDate            *time.Time `gorm:"column:promotion_end"`
	DurationDays       int        `gorm:"column:promotion_duration_days;default:0"`
	AutoDeactivate     bool       `gorm:"column:promotion_auto_deactivate;default:false"`
}

type Product struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	TenantID           uuid.UUID `gorm:"type:uuid;index"`
	Name               string    `gorm:"size:180"`
	Category           string    `gorm:"size:100;index"`
	Subcategory        string    `gorm:"size:100"`
	Brand              string    `gorm:"size:100;index"`
	Active             bool      `gorm:"default:true;index"`
	HasActivePromotion bool      `gorm:"default:false"`
	Promotion          Promotion `gorm:"embedded"`
	Variants           []Variant
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Variant struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	SKU       string    `gorm:"size:120;index"`
	BasePrice float64   `gorm:"type:decimal(12,2)"`
	CostPrice float64   `gorm:"type:decimal(12,2);default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductStatusFilter controla qué productos entran en una selección masiva.
type ProductStatusFilter string

const (
	ProductStatusActive   ProductStatusFilter = "active"
	ProductStatusInactive ProductStatusFilter = "inactive"
	ProductStatusAll      ProductStatusFilter = "all"
)

type ProductCriteria struct {
	Status      ProductStatusFilter
	Category    string
	Subcategory string
	Brand       string
	IDs         []uuid.UUID
}
