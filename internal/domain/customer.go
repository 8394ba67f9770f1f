package domain

import (
	"time"

	"github.com/google/uuid"
)

type Tier string

const (
	TierDiamante Tier = "diamante"
	TierOro      Tier = "oro"
	TierPlata    Tier = "plata"
	TierBronce   Tier = "bronce"
)

type CustomerType string

const (
	CustomerTypeBusiness   CustomerType = "business"
	CustomerTypeIndividual CustomerType = "individual"
	CustomerTypeSupplier   CustomerType = "supplier"
)

// Loyalty duplica tier y fecha de upgrade para los consumidores legacy que
// leen el subdocumento en vez del campo raíz.
type Loyalty struct {
	Tier          Tier       `gorm:"column:loyalty_tier;type:varchar(10)"`
	LastUpgradeAt *time.Time `gorm:"column:loyalty_last_upgrade_at"`
}

type Customer struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID    `gorm:"type:uuid;index"`
	CustomerType CustomerType `gorm:"type:varchar(20);index"`
	Name         string       `gorm:"size:140"`
	Email        string       `gorm:"size:140"`
	Phone        string       `gorm:"size:60"`
	Tier         Tier         `gorm:"type:varchar(10);index"`
	LoyaltyScore float64      `gorm:"type:decimal(8,2);default:0"`
	Loyalty      Loyalty      `gorm:"embedded"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ScorableCustomerTypes excluye proveedores del cálculo de tiers.
var ScorableCustomerTypes = []CustomerType{CustomerTypeBusiness, CustomerTypeIndividual}
