package pos

import (
	"strconv"
	"strings"
	"time"

	"cafe-pos/internal/models"
)

// BuildOrder derives a validated order from the selection snapshot. Entries
// are walked in catalog order so line items keep the menu's display order.
//
// Unselected items are ignored regardless of their quantity text. A selected
// item whose quantity does not parse as an integer fails the whole build with
// a ValidationError and no partial order. A selected item whose parsed
// quantity is zero or negative is silently excluded: it was not actually
// ordered.
func BuildOrder(entries []models.MenuEntry, snapshot models.SelectionSnapshot, now time.Time) (*models.Order, error) {
	order := &models.Order{CreatedAt: now}

	for _, entry := range entries {
		sel, ok := snapshot[entry.Name]
		if !ok || !sel.Selected {
			continue
		}

		qty, err := strconv.Atoi(strings.TrimSpace(sel.Quantity))
		if err != nil {
			return nil, ValidationError{Item: entry.Name, Message: "invalid quantity"}
		}
		if qty <= 0 {
			continue
		}

		order.Lines = append(order.Lines, models.LineItem{
			Item:      entry.Name,
			Quantity:  qty,
			LineTotal: float64(qty) * entry.UnitPrice,
		})
	}

	return order, nil
}
