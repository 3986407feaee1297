package pos

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cafe-pos/internal/catalog"
	"cafe-pos/internal/logger"
	"cafe-pos/internal/models"
)

// fakeStore records committed orders and can be forced to fail.
type fakeStore struct {
	saved   []*models.Order
	saveErr error
}

func (f *fakeStore) SaveOrder(ctx context.Context, order *models.Order) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, order)
	return nil
}

type fakeNotifier struct {
	published int
	err       error
}

func (f *fakeNotifier) OrderCommitted(ctx context.Context, order *models.Order, totals models.Totals) error {
	if f.err != nil {
		return f.err
	}
	f.published++
	return nil
}

func newTestService(store OrderStore, notifier Notifier) *Service {
	return NewService(catalog.Default(), store, notifier, logger.New("pos-test"))
}

func TestCalculateEndToEnd(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	snapshot := models.SelectionSnapshot{
		"Coffee": {Selected: true, Quantity: "2"},
		"Tea":    {Selected: false, Quantity: "5"},
	}

	result, err := svc.Calculate(context.Background(), snapshot, "req-1")
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	want := models.Totals{Subtotal: 100, Tax: 5, Total: 105}
	if result.Totals != want {
		t.Errorf("Totals = %+v, want %+v", result.Totals, want)
	}

	for _, line := range []string{
		"Coffee x2 = ₹100.00",
		"Subtotal: ₹100.00",
		"Tax (5%): ₹5.00",
		"Total: ₹105.00",
	} {
		if !strings.Contains(result.Receipt, line) {
			t.Errorf("receipt missing line %q:\n%s", line, result.Receipt)
		}
	}

	if len(store.saved) != 1 {
		t.Fatalf("expected 1 committed order, got %d", len(store.saved))
	}
	order := store.saved[0]
	if len(order.Lines) != 1 || order.Lines[0].Item != "Coffee" || order.Lines[0].Quantity != 2 {
		t.Errorf("unexpected committed order: %+v", order)
	}
}

func TestCalculateInvalidQuantityCommitsNothing(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	_, err := svc.Calculate(context.Background(), models.SelectionSnapshot{
		"Coffee": {Selected: true, Quantity: "abc"},
	}, "req-1")

	var valErr ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(store.saved) != 0 {
		t.Errorf("expected no committed orders, got %d", len(store.saved))
	}
	if svc.Pending() != nil {
		t.Error("pending state should stay empty after a failed calculate")
	}
}

func TestCalculateEmptyOrderRejected(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	tests := []struct {
		name     string
		snapshot models.SelectionSnapshot
	}{
		{"nothing selected", models.SelectionSnapshot{}},
		{"all quantities zero", models.SelectionSnapshot{
			"Coffee": {Selected: true, Quantity: "0"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Calculate(context.Background(), tt.snapshot, "req-1")
			if !errors.Is(err, ErrEmptyOrder) {
				t.Fatalf("expected ErrEmptyOrder, got %v", err)
			}
			if len(store.saved) != 0 {
				t.Errorf("expected no committed orders, got %d", len(store.saved))
			}
		})
	}
}

func TestCalculateStorageFailureShowsNoReceipt(t *testing.T) {
	store := &fakeStore{saveErr: &StorageError{Op: "commit", Err: errors.New("connection reset")}}
	svc := newTestService(store, nil)

	result, err := svc.Calculate(context.Background(), models.SelectionSnapshot{
		"Coffee": {Selected: true, Quantity: "2"},
	}, "req-1")

	var storeErr *StorageError
	if !errors.As(err, &storeErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if result != nil {
		t.Error("no result should be returned when persistence fails")
	}
	if svc.Pending() != nil {
		t.Error("pending state should stay empty when persistence fails")
	}
}

func TestCalculateNotifierFailureDoesNotFailOrder(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{err: errors.New("broker down")}
	svc := newTestService(store, notifier)

	result, err := svc.Calculate(context.Background(), models.SelectionSnapshot{
		"Tea": {Selected: true, Quantity: "1"},
	}, "req-1")
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if result == nil {
		t.Fatal("expected a result despite notification failure")
	}
	if len(store.saved) != 1 {
		t.Errorf("expected 1 committed order, got %d", len(store.saved))
	}
}

func TestCalculatePublishesCommittedOrder(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	if _, err := svc.Calculate(context.Background(), models.SelectionSnapshot{
		"Burger": {Selected: true, Quantity: "1"},
	}, "req-1"); err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if notifier.published != 1 {
		t.Errorf("expected 1 published order, got %d", notifier.published)
	}
}

func TestResetClearsOnlyPendingState(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	if _, err := svc.Calculate(context.Background(), models.SelectionSnapshot{
		"Coffee": {Selected: true, Quantity: "1"},
	}, "req-1"); err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if svc.Pending() == nil {
		t.Fatal("expected pending result after calculate")
	}

	svc.Reset()

	if svc.Pending() != nil {
		t.Error("pending state should be cleared by reset")
	}
	if len(store.saved) != 1 {
		t.Errorf("reset must not touch persisted orders, got %d", len(store.saved))
	}
}

func TestCalculateSharedTimestamp(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store, nil)

	if _, err := svc.Calculate(context.Background(), models.SelectionSnapshot{
		"Coffee": {Selected: true, Quantity: "2"},
		"Cake":   {Selected: true, Quantity: "1"},
	}, "req-1"); err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	order := store.saved[0]
	if len(order.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(order.Lines))
	}
	if order.CreatedAt.IsZero() {
		t.Error("order timestamp must be set; all rows of the order share it")
	}
}
