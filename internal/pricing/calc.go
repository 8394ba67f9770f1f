// Package pricing implementa la aritmética del motor de precios masivo.
package pricing

import (
	"math"
	"time"
)

type OperationType string

const (
	OpPercentageIncrease     OperationType = "percentage_increase"
	OpMarginUpdate           OperationType = "margin_update"
	OpFixedPrice             OperationType = "fixed_price"
	OpPromotion              OperationType = "promotion"
	OpSupplierRateAdjustment OperationType = "supplier_rate_adjustment"
	OpInflationFormula       OperationType = "inflation_formula"
)

// Operation es la operación de precio a aplicar. Cada tipo usa solo sus
// campos; el resto queda en cero.
type Operation struct {
	Type OperationType

	Percentage         float64 // percentage_increase
	TargetMargin       float64 // margin_update, inflation_formula (fracción, 0.30 = 30%)
	FixedPrice         float64 // fixed_price
	DiscountPercentage float64 // promotion
	StartDate          *time.Time
	DurationDays       int

	OldRate        float64 // supplier_rate_adjustment
	NewRate        float64
	PreserveMargin bool

	ParallelRate float64 // inflation_formula
	BCVRate      float64
}

type Result struct {
	NewPrice       float64
	NewPriceUSD    float64
	DiffPercentage float64
	HasError       bool
	ErrorMessage   string
}

// NewPrice calcula el precio resultante de aplicar op sobre un precio y costo
// actuales. Devuelve nil cuando la operación no aplica (payload incompleto o
// resultado inválido); HasError marca filas que deben mostrarse con su causa.
func NewPrice(currentPrice, costPrice float64, op Operation) *Result {
	newPrice := currentPrice
	var newPriceUSD float64

	switch op.Type {
	case OpInflationFormula:
		// costo en $ llevado a tasa paralela, margen encima y de vuelta a VES:
		// (cost * par/bcv) * (1+m) * bcv = cost * par * (1+m)
		if op.ParallelRate <= 0 || op.BCVRate <= 0 {
			return nil
		}
		if costPrice <= 0 {
			return &Result{HasError: true, ErrorMessage: "sin costo de referencia"}
		}
		adjustedCost := costPrice * (op.ParallelRate / op.BCVRate)
		newPriceUSD = adjustedCost * (1 + op.TargetMargin)
		newPrice = math.Ceil(newPriceUSD * op.BCVRate)

	case OpMarginUpdate:
		if op.TargetMargin == 0 {
			return nil
		}
		newPrice = costPrice * (1 + op.TargetMargin)

	case OpPercentageIncrease:
		if op.Percentage == 0 {
			return nil
		}
		newPrice = currentPrice * (1 + op.Percentage/100)

	case OpFixedPrice:
		if op.FixedPrice == 0 {
			return nil
		}
		newPrice = op.FixedPrice

	case OpPromotion:
		if op.DiscountPercentage == 0 {
			return nil
		}
		newPrice = currentPrice * (1 - op.DiscountPercentage/100)

	case OpSupplierRateAdjustment:
		if op.OldRate <= 0 || op.NewRate <= 0 {
			return &Result{NewPrice: currentPrice, HasError: true, ErrorMessage: "tasas inválidas"}
		}
		factor := op.NewRate / op.OldRate
		if op.PreserveMargin && costPrice > 0 {
			currentMargin := (currentPrice - costPrice) / currentPrice
			newCost := costPrice * factor
			newPrice = newCost / (1 - currentMargin)
		} else {
			newPrice = currentPrice * factor
		}

	default:
		return nil
	}

	if newPrice <= 0 {
		return nil
	}

	newPrice = math.Ceil(newPrice)

	return &Result{
		NewPrice:       newPrice,
		NewPriceUSD:    newPriceUSD,
		DiffPercentage: (newPrice - currentPrice) / currentPrice * 100,
	}
}
