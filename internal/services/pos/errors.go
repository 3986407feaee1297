package pos

import (
	"errors"
	"fmt"
)

// ValidationError reports a selected item whose quantity text could not be
// parsed. The whole calculate action aborts; nothing is saved or rendered.
type ValidationError struct {
	Item    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Item, e.Message)
}

// ErrEmptyOrder is returned when no selected item survived the build, e.g.
// nothing was selected or every selected quantity was zero. An empty order is
// rejected rather than saved as an empty receipt.
var ErrEmptyOrder = errors.New("order has no line items")

// StorageError wraps a persistence failure. When the caller sees this the
// order was not durably recorded and no receipt must be shown.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
