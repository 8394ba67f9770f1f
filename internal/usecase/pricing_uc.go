package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/smartkubik/backoffice/internal/domain"
	"github.com/smartkubik/backoffice/internal/pricing"
)

// PricingUC selecciona productos por criterio y aplica operaciones de precio
// masivas sobre sus variantes.
type PricingUC struct {
	Products domain.ProductRepo
	Audit    domain.AuditLogRepo
}

type PricePreview struct {
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName"`
	VariantID      uuid.UUID `json:"variantId"`
	SKU            string    `json:"sku"`
	CostPrice      float64   `json:"costPrice"`
	CurrentPrice   float64   `json:"currentPrice"`
	NewPrice       float64   `json:"newPrice"`
	NewPriceUSD    float64   `json:"newPriceUSD,omitempty"`
	DiffPercentage float64   `json:"diffPercentage"`
	HasError       bool      `json:"hasError,omitempty"`
	ErrorMessage   string    `json:"errorMessage,omitempty"`
}

// Preview calcula el efecto de la operación sin tocar nada.
func (uc *PricingUC) Preview(ctx context.Context, tenantID uuid.UUID, criteria domain.ProductCriteria, op pricing.Operation) ([]PricePreview, error) {
	products, err := uc.Products.FindByCriteria(ctx, tenantID, criteria)
	if err != nil {
		return nil, fmt.Errorf("buscar productos: %w", err)
	}

	var previews []PricePreview
	for _, p := range products {
		for _, v := range p.Variants {
			r := pricing.NewPrice(v.BasePrice, v.CostPrice, op)
			if r == nil {
				continue
			}
			previews = append(previews, PricePreview{
				ProductID:      p.ID,
				ProductName:    p.Name,
				VariantID:      v.ID,
				SKU:            v.SKU,
				CostPrice:      v.CostPrice,
				CurrentPrice:   v.BasePrice,
				NewPrice:       r.NewPrice,
				NewPriceUSD:    r.NewPriceUSD,
				DiffPercentage: r.DiffPercentage,
				HasError:       r.HasError,
				ErrorMessage:   r.ErrorMessage,
			})
		}
	}
	return previews, nil
}

// Execute aplica la operación y deja un registro de auditoría. Devuelve la
// cantidad de precios (o promociones) modificados.
func (uc *PricingUC) Execute(ctx context.Context, tenantID, performedBy uuid.UUID, criteria domain.ProductCriteria, op pricing.Operation) (int, error) {
	products, err := uc.Products.FindByCriteria(ctx, tenantID, criteria)
	if err != nil {
		return 0, fmt.Errorf("buscar productos: %w", err)
	}

	updated := 0
	for i := range products {
		p := &products[i]
		modified := false

		if op.Type == pricing.OpPromotion && op.DiscountPercentage > 0 {
			start := uc.promotionStart(op)
			duration := op.DurationDays
			if duration == 0 {
				duration = 7
			}
			end := start.AddDate(0, 0, duration)

			p.HasActivePromotion = true
			p.Promotion = domain.Promotion{
				IsActive:           true,
				DiscountPercentage: op.DiscountPercentage,
				Reason:             "bulk_strategy_update",
				StartDate:          &start,
				EndDate:            &end,
				DurationDays:       duration,
				AutoDeactivate:     true,
			}
			modified = true
			updated++
		} else {
			for j := range p.Variants {
				v := &p.Variants[j]
				r := pricing.NewPrice(v.BasePrice, v.CostPrice, op)
				if r == nil || r.HasError || r.NewPrice == v.BasePrice {
					continue
				}
				v.BasePrice = r.NewPrice
				modified = true
				updated++
			}
		}

		if modified {
			if err := uc.Products.Save(ctx, p); err != nil {
				return updated, fmt.Errorf("guardar producto %s: %w", p.ID, err)
			}
		}
	}

	entry := &domain.AuditLog{
		ID:          uuid.New(),
		TenantID:    tenantID,
		Action:      "bulk_price_update",
		Entity:      "product",
		EntityID:    "bulk",
		PerformedBy: performedBy,
		Details: map[string]any{
			"criteria":     criteria,
			"operation":    op,
			"updatedCount": updated,
		},
	}
	if err := uc.Audit.Create(ctx, entry); err != nil {
		// la actualización ya corrió; perder el audit no la deshace
		log.Error().Err(err).Msg("no se pudo crear el registro de auditoría")
	}

	return updated, nil
}

func (uc *PricingUC) promotionStart(op pricing.Operation) time.Time {
	if op.StartDate != nil {
		return *op.StartDate
	}
	return time.Now().UTC()
}
