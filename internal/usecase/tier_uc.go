package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/smartkubik/backoffice/internal/domain"
	"github.com/smartkubik/backoffice/internal/rfm"
)

// TierUC recalcula los tiers de lealtad de todos los tenants. El recálculo es
// idempotente: ante cualquier falla se vuelve a correr completo.
type TierUC struct {
	Customers domain.CustomerRepo
	Orders    domain.OrderRepo
	Now       func() time.Time
}

type TenantResult struct {
	TenantID  uuid.UUID
	Customers int
	Counts    map[domain.Tier]int
	Top       []rfm.Score
}

func (uc *TierUC) now() time.Time {
	if uc.Now != nil {
		return uc.Now()
	}
	return time.Now().UTC()
}

// Run procesa los tenants de a uno. Cualquier error de base aborta la corrida
// entera; no hay reintentos parciales.
func (uc *TierUC) Run(ctx context.Context) ([]TenantResult, error) {
	tenants, err := uc.Customers.DistinctTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar tenants: %w", err)
	}
	log.Info().Int("tenants", len(tenants)).Msg("recalculando tiers")

	results := make([]TenantResult, 0, len(tenants))
	for _, tenantID := range tenants {
		res, err := uc.RecalcTenant(ctx, tenantID)
		if err != nil {
			return results, fmt.Errorf("tenant %s: %w", tenantID, err)
		}
		if res == nil {
			continue
		}
		results = append(results, *res)
	}
	return results, nil
}

// RecalcTenant corre el pipeline completo para un tenant: agrupar pedidos,
// puntuar, normalizar, rankear y persistir. Devuelve nil si el tenant no
// tiene clientes puntuables.
func (uc *TierUC) RecalcTenant(ctx context.Context, tenantID uuid.UUID) (*TenantResult, error) {
	customers, err := uc.Customers.ListByTenant(ctx, tenantID, domain.ScorableCustomerTypes)
	if err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	if len(customers) == 0 {
		log.Info().Str("tenant", tenantID.String()).Msg("sin clientes, se omite")
		return nil, nil
	}

	orders, err := uc.Orders.ListByTenant(ctx, tenantID, domain.QualifyingOrderStatuses)
	if err != nil {
		return nil, fmt.Errorf("listar pedidos: %w", err)
	}

	now := uc.now()
	scores := rfm.ScoreAll(customers, rfm.GroupOrders(orders), now)
	rfm.Normalize(scores)
	ranked := rfm.Rank(scores)
	tiers := rfm.AssignTiers(ranked)

	scoreByID := make(map[uuid.UUID]float64, len(scores))
	for _, s := range scores {
		scoreByID[s.CustomerID] = s.LoyaltyScore
	}

	counts := map[domain.Tier]int{}
	// una actualización independiente por cliente, todas en vuelo a la vez
	var wg sync.WaitGroup
	errCh := make(chan error, len(customers))
	for _, c := range customers {
		tier, ok := tiers[c.ID]
		if !ok {
			tier = domain.TierBronce
		}
		counts[tier]++

		wg.Add(1)
		go func(id uuid.UUID, tier domain.Tier, score float64) {
			defer wg.Done()
			if err := uc.Customers.UpdateLoyalty(ctx, id, tier, score, now); err != nil {
				errCh <- fmt.Errorf("cliente %s: %w", id, err)
			}
		}(c.ID, tier, scoreByID[c.ID])
	}
	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		return nil, err
	}

	top := ranked
	if len(top) > 5 {
		top = top[:5]
	}

	log.Info().
		Str("tenant", tenantID.String()).
		Int("clientes", len(customers)).
		Int("pedidos", len(orders)).
		Int("diamante", counts[domain.TierDiamante]).
		Int("oro", counts[domain.TierOro]).
		Int("plata", counts[domain.TierPlata]).
		Int("bronce", counts[domain.TierBronce]).
		Msg("tiers recalculados")

	return &TenantResult{
		TenantID:  tenantID,
		Customers: len(customers),
		Counts:    counts,
		Top:       top,
	}, nil
}
