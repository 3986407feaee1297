package pos

import (
	"context"

	"cafe-pos/internal/database"
	"cafe-pos/internal/models"
)

// timestampLayout is the format of the shared date string stored with every
// row of an order.
const timestampLayout = "2006-01-02 15:04:05"

// Repository persists committed orders.
type Repository struct {
	db *database.DB
}

// NewRepository creates an order repository on top of the database pool.
func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// SaveOrder writes one row per line item inside a single transaction, all
// sharing the order's timestamp. Either every row commits or none does; a
// failure partway through rolls the whole order back.
func (r *Repository) SaveOrder(ctx context.Context, order *models.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return &StorageError{Op: "begin", Err: err}
	}
	defer tx.Rollback(ctx)

	stamp := order.CreatedAt.Format(timestampLayout)
	for _, line := range order.Lines {
		if _, err := tx.Exec(ctx, database.InsertOrderLineSQL,
			stamp, line.Item, line.Quantity, line.LineTotal); err != nil {
			return &StorageError{Op: "insert", Err: err}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return &StorageError{Op: "commit", Err: err}
	}
	return nil
}
