package pricing_test

import (
	"math"
	"testing"

	"github.com/smartkubik/backoffice/internal/pricing"
)

func TestPercentageIncrease(t *testing.T) {
	r := pricing.NewPrice(100, 0, pricing.Operation{Type: pricing.OpPercentageIncrease, Percentage: 10})
	if r == nil {
		t.Fatal("resultado nil")
	}
	if r.NewPrice != 110 {
		t.Fatalf("newPrice=%f, want 110", r.NewPrice)
	}
	if math.Abs(r.DiffPercentage-10) > 1e-9 {
		t.Fatalf("diff=%f, want 10", r.DiffPercentage)
	}
}

func TestPercentageIncreaseRoundsUp(t *testing.T) {
	r := pricing.NewPrice(99, 0, pricing.Operation{Type: pricing.OpPercentageIncrease, Percentage: 10})
	// 108.9 se redondea hacia arriba
	if r == nil || r.NewPrice != 109 {
		t.Fatalf("got %+v, want 109", r)
	}
}

func TestMarginUpdate(t *testing.T) {
	r := pricing.NewPrice(100, 80, pricing.Operation{Type: pricing.OpMarginUpdate, TargetMargin: 0.25})
	if r == nil || r.NewPrice != 100 {
		t.Fatalf("got %+v, want 100 (80*1.25)", r)
	}
}

func TestFixedPrice(t *testing.T) {
	r := pricing.NewPrice(100, 0, pricing.Operation{Type: pricing.OpFixedPrice, FixedPrice: 250})
	if r == nil || r.NewPrice != 250 {
		t.Fatalf("got %+v, want 250", r)
	}
}

func TestPromotionDiscount(t *testing.T) {
	r := pricing.NewPrice(200, 0, pricing.Operation{Type: pricing.OpPromotion, DiscountPercentage: 25})
	if r == nil || r.NewPrice != 150 {
		t.Fatalf("got %+v, want 150", r)
	}
}

func TestSupplierRateAdjustmentDirect(t *testing.T) {
	r := pricing.NewPrice(100, 0, pricing.Operation{
		Type: pricing.OpSupplierRateAdjustment, OldRate: 50, NewRate: 55,
	})
	if r == nil || r.NewPrice != 110 {
		t.Fatalf("got %+v, want 110", r)
	}
}

func TestSupplierRateAdjustmentPreserveMargin(t *testing.T) {
	// margen actual 50%: costo 50, precio 100; nuevo costo 55 → precio 110
	r := pricing.NewPrice(100, 50, pricing.Operation{
		Type: pricing.OpSupplierRateAdjustment, OldRate: 50, NewRate: 55, PreserveMargin: true,
	})
	if r == nil || r.NewPrice != 110 {
		t.Fatalf("got %+v, want 110", r)
	}
}

func TestSupplierRateAdjustmentInvalidRates(t *testing.T) {
	r := pricing.NewPrice(100, 0, pricing.Operation{Type: pricing.OpSupplierRateAdjustment, NewRate: 55})
	if r == nil || !r.HasError {
		t.Fatalf("tasas inválidas deben marcar error, got %+v", r)
	}
	if r.NewPrice != 100 {
		t.Fatalf("con error el precio no cambia, got %f", r.NewPrice)
	}
}

func TestInflationFormula(t *testing.T) {
	// costo 10$, paralela 60, bcv 50, margen 30%:
	// 10 * (60/50) * 1.3 = 15.6 USD → * 50 = 780 VES
	r := pricing.NewPrice(500, 10, pricing.Operation{
		Type: pricing.OpInflationFormula, ParallelRate: 60, BCVRate: 50, TargetMargin: 0.3,
	})
	if r == nil {
		t.Fatal("resultado nil")
	}
	if r.NewPrice != 780 {
		t.Fatalf("newPrice=%f, want 780", r.NewPrice)
	}
	if math.Abs(r.NewPriceUSD-15.6) > 1e-9 {
		t.Fatalf("newPriceUSD=%f, want 15.6", r.NewPriceUSD)
	}
}

func TestInflationFormulaWithoutCost(t *testing.T) {
	r := pricing.NewPrice(500, 0, pricing.Operation{
		Type: pricing.OpInflationFormula, ParallelRate: 60, BCVRate: 50, TargetMargin: 0.3,
	})
	if r == nil || !r.HasError {
		t.Fatalf("sin costo debe marcar error, got %+v", r)
	}
}

func TestIncompletePayloadsReturnNil(t *testing.T) {
	cases := []pricing.Operation{
		{Type: pricing.OpPercentageIncrease},
		{Type: pricing.OpMarginUpdate},
		{Type: pricing.OpFixedPrice},
		{Type: pricing.OpPromotion},
		{Type: pricing.OpInflationFormula},
		{Type: "desconocida"},
	}
	for _, op := range cases {
		if r := pricing.NewPrice(100, 50, op); r != nil {
			t.Errorf("op %s con payload vacío debe dar nil, got %+v", op.Type, r)
		}
	}
}

func TestNonPositiveResultExcluded(t *testing.T) {
	// descuento del 100% deja el precio en cero
	if r := pricing.NewPrice(100, 0, pricing.Operation{Type: pricing.OpPromotion, DiscountPercentage: 100}); r != nil {
		t.Fatalf("resultado no positivo debe dar nil, got %+v", r)
	}
}
