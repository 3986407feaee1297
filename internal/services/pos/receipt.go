package pos

import (
	"fmt"
	"strings"

	"cafe-pos/internal/models"
)

// CurrencySymbol is the fixed display currency glyph.
const CurrencySymbol = "₹"

// RenderReceipt formats a committed order and its totals into the fixed
// receipt block shown to the customer. Pure formatting, no I/O.
func RenderReceipt(order *models.Order, totals models.Totals) string {
	var b strings.Builder

	b.WriteString("------ Receipt ------\n")
	for _, line := range order.Lines {
		fmt.Fprintf(&b, "%s x%d = %s%.2f\n", line.Item, line.Quantity, CurrencySymbol, line.LineTotal)
	}
	fmt.Fprintf(&b, "\nSubtotal: %s%.2f", CurrencySymbol, totals.Subtotal)
	fmt.Fprintf(&b, "\nTax (5%%): %s%.2f", CurrencySymbol, totals.Tax)
	fmt.Fprintf(&b, "\nTotal: %s%.2f\n", CurrencySymbol, totals.Total)
	b.WriteString("---------------------")

	return b.String()
}
