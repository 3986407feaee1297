package models

import "time"

// MenuEntry is one item on the café menu. The catalog is loaded at startup
// and fixed for the lifetime of the process.
type MenuEntry struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// Selection is the raw state of one menu row as the presentation layer saw
// it: a checkbox flag and the text of the quantity field. The quantity stays
// a string on purpose; parsing it is the order builder's job.
type Selection struct {
	Selected bool   `json:"selected"`
	Quantity string `json:"quantity"`
}

// SelectionSnapshot maps item name to its selection state. The presentation
// layer builds one snapshot per calculate action and hands it to the core;
// the core never reaches back into presentation state.
type SelectionSnapshot map[string]Selection

// LineItem is one validated order line. Never mutated after construction.
type LineItem struct {
	Item      string  `json:"item"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// Order is a validated sequence of line items sharing a single creation
// timestamp. All persisted rows of one order carry the same timestamp.
type Order struct {
	Lines     []LineItem `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
}

// Totals is always recomputed from an Order, never stored independently.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}
