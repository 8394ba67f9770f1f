package app

import (
	"gorm.io/gorm"

	"github.com/smartkubik/backoffice/internal/adapters/repo/postgres"
	"github.com/smartkubik/backoffice/internal/domain"
	"github.com/smartkubik/backoffice/internal/usecase"
)

type App struct {
	DB        *gorm.DB
	Tiers     *usecase.TierUC
	Reconcile *usecase.ReconcileUC
	Pricing   *usecase.PricingUC
}

func NewApp(db *gorm.DB) *App {
	custRepo := postgres.NewCustomerRepo(db)
	orderRepo := postgres.NewOrderRepo(db)
	txRepo := postgres.NewBankTransactionRepo(db)
	impRepo := postgres.NewStatementImportRepo(db)
	prodRepo := postgres.NewProductRepo(db)
	auditRepo := postgres.NewAuditLogRepo(db)

	return &App{
		DB:        db,
		Tiers:     &usecase.TierUC{Customers: custRepo, Orders: orderRepo},
		Reconcile: &usecase.ReconcileUC{Transactions: txRepo, Imports: impRepo},
		Pricing:   &usecase.PricingUC{Products: prodRepo, Audit: auditRepo},
	}
}

func (a *App) Migrate() error {
	if err := a.DB.AutoMigrate(
		&domain.Customer{}, &domain.Order{},
		&domain.BankTransaction{}, &domain.StatementImport{},
		&domain.Product{}, &domain.Variant{}, &domain.AuditLog{},
	); err != nil {
		return err
	}

	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_orders_tenant_status ON orders(tenant_id, status)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_customers_tenant_type ON customers(tenant_id, customer_type)").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_bank_transactions_match ON bank_transactions(tenant_id, bank_account_id, amount, transaction_date) WHERE reconciled = false").Error

	return nil
}
