package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("no encontrado")

type CustomerRepo interface {
	DistinctTenants(ctx context.Context) ([]uuid.UUID, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID, types []CustomerType) ([]Customer, error)
	UpdateLoyalty(ctx context.Context, id uuid.UUID, tier Tier, score float64, upgradedAt time.Time) error
}

type OrderRepo interface {
	ListByTenant(ctx context.Context, tenantID uuid.UUID, statuses []OrderStatus) ([]Order, error)
}

type BankTransactionRepo interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*BankTransaction, error)
	FindUnreconciled(ctx context.Context, tenantID, accountID uuid.UUID, amount float64, date time.Time) (*BankTransaction, error)
	Save(ctx context.Context, tx *BankTransaction) error
}

type StatementImportRepo interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*StatementImport, error)
	Save(ctx context.Context, imp *StatementImport) error
}

type ProductRepo interface {
	FindByCriteria(ctx context.Context, tenantID uuid.UUID, c ProductCriteria) ([]Product, error)
	Save(ctx context.Context, p *Product) error
}

type AuditLogRepo interface {
	Create(ctx context.Context, entry *AuditLog) error
}
