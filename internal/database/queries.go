package database

// Order queries. The orders table is append-only: this system never updates
// or deletes rows it has written.
const (
	InsertOrderLineSQL = `
		INSERT INTO orders (date, item, quantity, price)
		VALUES ($1, $2, $3, $4)`
)
