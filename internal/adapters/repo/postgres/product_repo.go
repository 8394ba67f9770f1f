package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/smartkubik/backoffice/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) FindByCriteria(ctx context.Context, tenantID uuid.UUID, c domain.ProductCriteria) ([]domain.Product, error) {
	q := r.db.WithContext(ctx).
		Preload("Variants").
		Where("tenant_id = ?", tenantID)

	switch c.Status {
	case domain.ProductStatusInactive:
		q = q.Where("active = false")
	case domain.ProductStatusAll:
		// sin filtro
	default:
		q = q.Where("active = true")
	}

	if len(c.IDs) > 0 {
		q = q.Where("id IN ?", c.IDs)
	}
	if c.Category != "" {
		q = q.Where("category = ?", c.Category)
	}
	if c.Subcategory != "" {
		q = q.Where("subcategory = ?", c.Subcategory)
	}
	if c.Brand != "" {
		q = q.Where("brand = ?", c.Brand)
	}

	var products []domain.Product
	if err := q.Order("name").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
}
