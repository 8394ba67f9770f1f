package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartkubik/backoffice/internal/domain"
)

type BankTransactionRepo struct{ db *gorm.DB }

func NewBankTransactionRepo(db *gorm.DB) *BankTransactionRepo {
	return &BankTransactionRepo{db: db}
}

func (r *BankTransactionRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.BankTransaction, error) {
	var tx domain.BankTransaction
	err := r.db.WithContext(ctx).
		First(&tx, "id = ? AND tenant_id = ?", id, tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// FindUnreconciled busca un movimiento pendiente del mismo monto cuya fecha
// caiga en el mismo día calendario.
func (r *BankTransactionRepo) FindUnreconciled(ctx context.Context, tenantID, accountID uuid.UUID, amount float64, date time.Time) (*domain.BankTransaction, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var tx domain.BankTransaction
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND bank_account_id = ?", tenantID, accountID).
		Where("amount = ?", amount).
		Where("transaction_date >= ? AND transaction_date < ?", dayStart, dayEnd).
		Where("reconciled = false").
		Order("transaction_date").
		First(&tx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *BankTransactionRepo) Save(ctx context.Context, tx *domain.BankTransaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}

type StatementImportRepo struct{ db *gorm.DB }

func NewStatementImportRepo(db *gorm.DB) *StatementImportRepo {
	return &StatementImportRepo{db: db}
}

func (r *StatementImportRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.StatementImport, error) {
	var imp domain.StatementImport
	err := r.db.WithContext(ctx).
		First(&imp, "id = ? AND tenant_id = ?", id, tenantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &imp, nil
}

func (r *StatementImportRepo) Save(ctx context.Context, imp *domain.StatementImport) error {
	return r.db.WithContext(ctx).Save(imp).Error
}
