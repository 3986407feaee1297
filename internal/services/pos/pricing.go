package pos

import (
	"math"

	"cafe-pos/internal/models"
)

// TaxRate is the fixed café tax rate, not configurable at runtime.
const TaxRate = 0.05

// ComputeTotals derives subtotal, tax and total from an order. Pure function;
// an empty order yields all zeros.
func ComputeTotals(order *models.Order) models.Totals {
	var subtotal float64
	for _, line := range order.Lines {
		subtotal += line.LineTotal
	}

	tax := round2(subtotal * TaxRate)
	return models.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// round2 applies monetary rounding to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
