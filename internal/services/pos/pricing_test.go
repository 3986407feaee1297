package pos

import (
	"testing"

	"cafe-pos/internal/models"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name  string
		lines []models.LineItem
		want  models.Totals
	}{
		{
			name:  "empty order yields zeros",
			lines: nil,
			want:  models.Totals{Subtotal: 0, Tax: 0, Total: 0},
		},
		{
			name: "single line",
			lines: []models.LineItem{
				{Item: "Coffee", Quantity: 2, LineTotal: 100},
			},
			want: models.Totals{Subtotal: 100, Tax: 5, Total: 105},
		},
		{
			name: "multiple lines",
			lines: []models.LineItem{
				{Item: "Coffee", Quantity: 2, LineTotal: 100},
				{Item: "Cake", Quantity: 1, LineTotal: 60},
			},
			want: models.Totals{Subtotal: 160, Tax: 8, Total: 168},
		},
		{
			name: "tax rounded to two decimals",
			lines: []models.LineItem{
				{Item: "Tea", Quantity: 1, LineTotal: 33},
			},
			want: models.Totals{Subtotal: 33, Tax: 1.65, Total: 34.65},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(&models.Order{Lines: tt.lines})
			if got != tt.want {
				t.Errorf("ComputeTotals() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0}, // float64 stores this just below 1.005
		{1.645, 1.65},
		{0.515, 0.52},
		{5.0, 5.0},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
