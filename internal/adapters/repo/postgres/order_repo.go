package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartkubik/backoffice/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) ListByTenant(ctx context.Context, tenantID uuid.UUID, statuses []domain.OrderStatus) ([]domain.Order, error) {
	var orders []domain.Order
	q := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
