package pos

import (
	"context"
	"sync"
	"time"

	"cafe-pos/internal/catalog"
	"cafe-pos/internal/logger"
	"cafe-pos/internal/models"
)

// OrderStore commits a finalized order to durable storage.
type OrderStore interface {
	SaveOrder(ctx context.Context, order *models.Order) error
}

// Notifier announces an order that was durably committed. Best effort: a
// notification failure never fails the order.
type Notifier interface {
	OrderCommitted(ctx context.Context, order *models.Order, totals models.Totals) error
}

// Result is what the presentation layer displays after a successful
// calculate action.
type Result struct {
	Totals  models.Totals `json:"totals"`
	Receipt string        `json:"receipt"`
}

// Service runs the calculate pipeline: build, price, persist, render.
type Service struct {
	catalog  *catalog.Catalog
	store    OrderStore
	notifier Notifier // nil when notifications are disabled
	logger   *logger.Logger

	mu      sync.Mutex
	pending *Result
}

// NewService wires the pipeline. notifier may be nil.
func NewService(cat *catalog.Catalog, store OrderStore, notifier Notifier, log *logger.Logger) *Service {
	return &Service{
		catalog:  cat,
		store:    store,
		notifier: notifier,
		logger:   log,
	}
}

// Catalog returns the menu the service was built with.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Calculate runs one user-triggered calculate action to completion. On any
// failure no rows are persisted, no receipt is produced and the pending
// display state is left untouched.
func (s *Service) Calculate(ctx context.Context, snapshot models.SelectionSnapshot, requestID string) (*Result, error) {
	order, err := BuildOrder(s.catalog.Entries(), snapshot, time.Now())
	if err != nil {
		return nil, err
	}
	if len(order.Lines) == 0 {
		return nil, ErrEmptyOrder
	}

	totals := ComputeTotals(order)

	if err := s.store.SaveOrder(ctx, order); err != nil {
		return nil, err
	}

	s.logger.Info("order_committed", "Order committed", requestID, map[string]interface{}{
		"lines": len(order.Lines),
		"total": totals.Total,
	})

	if s.notifier != nil {
		if err := s.notifier.OrderCommitted(ctx, order, totals); err != nil {
			s.logger.Error("notification_failed", "Failed to publish committed order", requestID, err, nil)
		}
	}

	result := &Result{
		Totals:  totals,
		Receipt: RenderReceipt(order, totals),
	}

	s.mu.Lock()
	s.pending = result
	s.mu.Unlock()

	return result, nil
}

// Reset discards the pending display state. Persisted history is never
// touched.
func (s *Service) Reset() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}

// Pending returns the result of the last successful calculate action, or nil
// after a reset.
func (s *Service) Pending() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}
