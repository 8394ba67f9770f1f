package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartkubik/backoffice/internal/domain"
)

type CustomerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) DistinctTenants(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&domain.Customer{}).
		Distinct("tenant_id").
		Order("tenant_id").
		Pluck("tenant_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *CustomerRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, types []domain.CustomerType) ([]domain.Customer, error) {
	var customers []domain.Customer
	q := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if len(types) > 0 {
		q = q.Where("customer_type IN ?", types)
	}
	if err := q.Order("created_at").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *CustomerRepo) UpdateLoyalty(ctx context.Context, id uuid.UUID, tier domain.Tier, score float64, upgradedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"tier":                    tier,
			"loyalty_score":           score,
			"loyalty_tier":            tier,
			"loyalty_last_upgrade_at": upgradedAt,
		}).Error
}
