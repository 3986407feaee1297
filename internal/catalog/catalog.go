package catalog

import (
	"cafe-pos/internal/models"
)

// Catalog is the static menu: an ordered list of entries plus a name index.
// The entry order is the display order and the order receipt lines follow it.
type Catalog struct {
	entries []models.MenuEntry
	prices  map[string]float64
}

// New builds a catalog from the given entries. Later duplicates of a name are
// ignored so the first price wins.
func New(entries []models.MenuEntry) *Catalog {
	c := &Catalog{
		prices: make(map[string]float64, len(entries)),
	}
	for _, e := range entries {
		if _, ok := c.prices[e.Name]; ok {
			continue
		}
		c.entries = append(c.entries, e)
		c.prices[e.Name] = e.UnitPrice
	}
	return c
}

// Default returns the café's standard menu.
func Default() *Catalog {
	return New([]models.MenuEntry{
		{Name: "Coffee", UnitPrice: 50},
		{Name: "Tea", UnitPrice: 30},
		{Name: "Sandwich", UnitPrice: 70},
		{Name: "Burger", UnitPrice: 90},
		{Name: "Cake", UnitPrice: 60},
	})
}

// Entries returns the menu in display order.
func (c *Catalog) Entries() []models.MenuEntry {
	return c.entries
}

// UnitPrice looks up the price of a menu item by name.
func (c *Catalog) UnitPrice(name string) (float64, bool) {
	price, ok := c.prices[name]
	return price, ok
}

// Len returns the number of menu items.
func (c *Catalog) Len() int {
	return len(c.entries)
}
