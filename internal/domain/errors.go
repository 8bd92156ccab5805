package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrNotOwner is returned when a caller addresses a resource owned by
	// another user. Handlers must not leak the resource on this error.
	ErrNotOwner = errors.New("not authorized to access this resource")
)

// ValidationError is a malformed or incomplete request, recoverable by the
// caller. The message is safe to surface.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

func Validationf(format string, args ...any) ValidationError {
	return ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// InsufficientStockError reports a stock shortfall together with the
// quantity still available.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Requested   int32
	Available   int32
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Available)
}
