package services

import (
	"errors"
	"fmt"

	"RestoPos/app/models"
)

// Engine error taxonomy. Every refusal happens before any state mutation,
// so callers can always correct the input and reissue the command.
var (
	// ErrValidation: empty cart on submit/hold, no table selected, no order under edit
	ErrValidation = errors.New("validation failed")
	// ErrAuth: PIN does not match any accepted credential
	ErrAuth = errors.New("authentication failed")
	// ErrReference: operation targets a nonexistent order/shift/held-order
	ErrReference = errors.New("record not found")
	// ErrPrecondition: opening a day while one is open, closing with unresolved orders
	ErrPrecondition = errors.New("precondition failed")
)

// UnresolvedOrdersError is returned by CloseDay while non-terminal orders
// remain. It carries the orders so the caller can offer payment or credit
// conversion for each.
type UnresolvedOrdersError struct {
	Orders []models.Order
}

func (e *UnresolvedOrdersError) Error() string {
	return fmt.Sprintf("%v: %d unresolved orders must be paid or converted to credit", ErrPrecondition, len(e.Orders))
}

func (e *UnresolvedOrdersError) Unwrap() error {
	return ErrPrecondition
}
