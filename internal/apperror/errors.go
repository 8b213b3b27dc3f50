// Package apperror defines the error taxonomy shared by services and the HTTP
// error middleware. External-collaborator failures never appear here; they are
// logged and degraded at the boundary.
package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrCategoryNotFound    = errors.New("service category not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrMissingCustomerInfo = errors.New("customer information is incomplete")
	ErrInvalidStatus       = errors.New("invalid order status")
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrInvalidState        = errors.New("operation not valid in current conversation state")
)

// ValidationError carries the human-readable reason shown back to the user in
// a same-step re-prompt.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
