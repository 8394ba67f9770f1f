package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartkubik/backoffice/internal/domain"
)

// ReconcileUC concilia movimientos bancarios contra extractos importados.
type ReconcileUC struct {
	Transactions domain.BankTransactionRepo
	Imports      domain.StatementImportRepo
	Now          func() time.Time
}

func (uc *ReconcileUC) now() time.Time {
	if uc.Now != nil {
		return uc.Now()
	}
	return time.Now().UTC()
}

type ImportInput struct {
	TenantID         uuid.UUID
	BankAccountID    uuid.UUID
	OriginalFilename string
	StatementDate    time.Time
	StartingBalance  float64
	EndingBalance    float64
	Currency         string
}

// ImportStatement registra el extracto y matchea cada fila contra un
// movimiento no conciliado del mismo monto y fecha. Las filas sin match
// quedan embebidas en el import para conciliación manual posterior.
func (uc *ReconcileUC) ImportStatement(ctx context.Context, in ImportInput, rows []domain.StatementRow) (*domain.StatementImport, error) {
	if in.BankAccountID == uuid.Nil {
		return nil, errors.New("cuenta bancaria requerida")
	}
	if len(rows) == 0 {
		return nil, errors.New("archivo sin movimientos válidos")
	}

	currency := in.Currency
	if currency == "" {
		currency = "VES"
	}
	imp := &domain.StatementImport{
		ID:               uuid.New(),
		TenantID:         in.TenantID,
		BankAccountID:    in.BankAccountID,
		OriginalFilename: in.OriginalFilename,
		TotalRows:        len(rows),
		StatementDate:    in.StatementDate,
		StartingBalance:  in.StartingBalance,
		EndingBalance:    in.EndingBalance,
		Currency:         currency,
	}

	matched := 0
	var unmatched []domain.StatementRow
	for _, row := range rows {
		tx, err := uc.Transactions.FindUnreconciled(ctx, in.TenantID, in.BankAccountID, row.Amount, row.TransactionDate)
		if errors.Is(err, domain.ErrNotFound) {
			unmatched = append(unmatched, row)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("buscar movimiento: %w", err)
		}

		now := uc.now()
		tx.Reconciled = true
		tx.ReconciledAt = &now
		tx.ReconciliationStatus = domain.ReconciliationMatched
		tx.ImportedFrom = "statement"
		tx.StatementImportID = &imp.ID
		if row.Reference != "" {
			tx.BankReference = row.Reference
		}
		if row.Description != "" {
			tx.BankDescription = row.Description
		}
		if err := uc.Transactions.Save(ctx, tx); err != nil {
			return nil, fmt.Errorf("guardar movimiento: %w", err)
		}
		matched++
	}

	imp.MatchedRows = matched
	imp.UnmatchedRows = len(unmatched)
	imp.Unmatched = unmatched
	if err := uc.Imports.Save(ctx, imp); err != nil {
		return nil, fmt.Errorf("guardar import: %w", err)
	}
	return imp, nil
}

type ManualReconcileInput struct {
	TransactionID     uuid.UUID
	StatementImportID *uuid.UUID
	BankAmount        float64
	BankReference     string
	BankDate          time.Time
}

// ManualReconcile marca un movimiento como conciliado a mano y descuenta la
// fila correspondiente del import, si la hay.
func (uc *ReconcileUC) ManualReconcile(ctx context.Context, tenantID uuid.UUID, in ManualReconcileInput) (*domain.BankTransaction, error) {
	tx, err := uc.Transactions.FindByID(ctx, tenantID, in.TransactionID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	tx.Reconciled = true
	tx.ReconciledAt = &now
	tx.ReconciliationStatus = domain.ReconciliationManuallyMatched
	if in.StatementImportID != nil {
		tx.StatementImportID = in.StatementImportID
	}
	if in.BankReference != "" {
		tx.BankReference = in.BankReference
	}
	if err := uc.Transactions.Save(ctx, tx); err != nil {
		return nil, fmt.Errorf("guardar movimiento: %w", err)
	}

	if tx.StatementImportID != nil {
		if err := uc.settleImportRow(ctx, tenantID, *tx.StatementImportID, in); err != nil {
			return nil, err
		}
	}
	return tx, nil
}

func (uc *ReconcileUC) settleImportRow(ctx context.Context, tenantID, importID uuid.UUID, in ManualReconcileInput) error {
	imp, err := uc.Imports.FindByID(ctx, tenantID, importID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	imp.MatchedRows++
	if imp.UnmatchedRows > 0 {
		imp.UnmatchedRows--
	}

	kept := imp.Unmatched[:0]
	removed := false
	for _, row := range imp.Unmatched {
		sameAmount := row.Amount == in.BankAmount
		sameReference := row.Reference == in.BankReference
		sameDate := row.TransactionDate.Equal(in.BankDate)
		if !removed && sameAmount && sameReference && sameDate {
			removed = true
			continue
		}
		kept = append(kept, row)
	}
	imp.Unmatched = kept

	return uc.Imports.Save(ctx, imp)
}
