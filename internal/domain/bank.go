package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReconciliationStatus string

const (
	ReconciliationPending         ReconciliationStatus = "pending"
	ReconciliationMatched         ReconciliationStatus = "matched"
	ReconciliationManuallyMatched ReconciliationStatus = "manually_matched"
)

type BankTransaction struct {
	ID                   uuid.UUID            `gorm:"type:uuid;primaryKey"`
	TenantID             uuid.UUID            `gorm:"type:uuid;index"`
	BankAccountID        uuid.UUID            `gorm:"type:uuid;index"`
	Amount               float64              `gorm:"type:decimal(14,2)"`
	TransactionDate      time.Time            `gorm:"index"`
	Description          string               `gorm:"size:255"`
	Reference            string               `gorm:"size:140"`
	Reconciled           bool                 `gorm:"default:false;index"`
	ReconciledAt         *time.Time
	ReconciliationStatus ReconciliationStatus `gorm:"type:varchar(20);default:pending"`
	StatementImportID    *uuid.UUID           `gorm:"type:uuid;index"`
	ImportedFrom         string               `gorm:"size:30"`
	BankReference        string               `gorm:"size:140"`
	BankDescription      string               `gorm:"size:255"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// StatementRow es una fila del extracto bancario ya parseada. No se persiste
// por sí sola: las no conciliadas quedan embebidas en el import.
type StatementRow struct {
	TransactionDate time.Time `json:"transactionDate"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description"`
	Reference       string    `json:"reference"`
}

type StatementImport struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey"`
	TenantID         uuid.UUID      `gorm:"type:uuid;index"`
	BankAccountID    uuid.UUID      `gorm:"type:uuid;index"`
	OriginalFilename string         `gorm:"size:255"`
	TotalRows        int            `gorm:"default:0"`
	MatchedRows      int            `gorm:"default:0"`
	UnmatchedRows    int            `gorm:"default:0"`
	StatementDate    time.Time
	StartingBalance  float64        `gorm:"type:decimal(14,2)"`
	EndingBalance    float64        `gorm:"type:decimal(14,2)"`
	Currency         string         `gorm:"size:10;default:VES"`
	Unmatched        []StatementRow `gorm:"type:jsonb;serializer:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
