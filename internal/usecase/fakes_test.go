package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/smartkubik/backoffice/internal/domain"
)

// fakes en memoria de los repos, suficientes para ejercitar los usecases sin
// base de datos.

type fakeCustomerRepo struct {
	mu        sync.Mutex
	customers []domain.Customer
	failWith  error
}

func (r *fakeCustomerRepo) DistinctTenants(ctx context.Context) ([]uuid.UUID, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	seen := map[uuid.UUID]bool{}
	var ids []uuid.UUID
	for _, c := range r.customers {
		if !seen[c.TenantID] {
			seen[c.TenantID] = true
			ids = append(ids, c.TenantID)
		}
	}
	return ids, nil
}

func (r *fakeCustomerRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, types []domain.CustomerType) ([]domain.Customer, error) {
	var out []domain.Customer
	for _, c := range r.customers {
		if c.TenantID != tenantID {
			continue
		}
		for _, t := range types {
			if c.CustomerType == t {
				out = append(out, c)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeCustomerRepo) UpdateLoyalty(ctx context.Context, id uuid.UUID, tier domain.Tier, score float64, upgradedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.customers {
		if r.customers[i].ID == id {
			r.customers[i].Tier = tier
			r.customers[i].LoyaltyScore = score
			r.customers[i].Loyalty = domain.Loyalty{Tier: tier, LastUpgradeAt: &upgradedAt}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeCustomerRepo) byID(id uuid.UUID) domain.Customer {
	for _, c := range r.customers {
		if c.ID == id {
			return c
		}
	}
	return domain.Customer{}
}

type fakeOrderRepo struct {
	orders []domain.Order
}

func (r *fakeOrderRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, statuses []domain.OrderStatus) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.TenantID != tenantID {
			continue
		}
		for _, s := range statuses {
			if o.Status == s {
				out = append(out, o)
				break
			}
		}
	}
	return out, nil
}

type fakeBankTxRepo struct {
	txs []*domain.BankTransaction
}

func (r *fakeBankTxRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.BankTransaction, error) {
	for _, tx := range r.txs {
		if tx.ID == id && tx.TenantID == tenantID {
			return tx, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeBankTxRepo) FindUnreconciled(ctx context.Context, tenantID, accountID uuid.UUID, amount float64, date time.Time) (*domain.BankTransaction, error) {
	for _, tx := range r.txs {
		if tx.TenantID != tenantID || tx.BankAccountID != accountID || tx.Reconciled {
			continue
		}
		if tx.Amount != amount {
			continue
		}
		y1, m1, d1 := tx.TransactionDate.Date()
		y2, m2, d2 := date.Date()
		if y1 == y2 && m1 == m2 && d1 == d2 {
			return tx, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeBankTxRepo) Save(ctx context.Context, tx *domain.BankTransaction) error {
	for i, existing := range r.txs {
		if existing.ID == tx.ID {
			r.txs[i] = tx
			return nil
		}
	}
	r.txs = append(r.txs, tx)
	return nil
}

type fakeImportRepo struct {
	imports map[uuid.UUID]*domain.StatementImport
}

func newFakeImportRepo() *fakeImportRepo {
	return &fakeImportRepo{imports: map[uuid.UUID]*domain.StatementImport{}}
}

func (r *fakeImportRepo) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*domain.StatementImport, error) {
	imp, ok := r.imports[id]
	if !ok || imp.TenantID != tenantID {
		return nil, domain.ErrNotFound
	}
	return imp, nil
}

func (r *fakeImportRepo) Save(ctx context.Context, imp *domain.StatementImport) error {
	r.imports[imp.ID] = imp
	return nil
}

type fakeProductRepo struct {
	products []domain.Product
	saved    []domain.Product
}

func (r *fakeProductRepo) FindByCriteria(ctx context.Context, tenantID uuid.UUID, c domain.ProductCriteria) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range r.products {
		if p.TenantID != tenantID {
			continue
		}
		switch c.Status {
		case domain.ProductStatusInactive:
			if p.Active {
				continue
			}
		case domain.ProductStatusAll:
		default:
			if !p.Active {
				continue
			}
		}
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if c.Brand != "" && p.Brand != c.Brand {
			continue
		}
		if len(c.IDs) > 0 {
			found := false
			for _, id := range c.IDs {
				if p.ID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Save(ctx context.Context, p *domain.Product) error {
	r.saved = append(r.saved, *p)
	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = *p
			return nil
		}
	}
	return errors.New("producto desconocido")
}

type fakeAuditRepo struct {
	entries  []domain.AuditLog
	failWith error
}

func (r *fakeAuditRepo) Create(ctx context.Context, entry *domain.AuditLog) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.entries = append(r.entries, *entry)
	return nil
}
