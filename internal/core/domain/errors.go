// internal/core/domain/errors.go
package domain

import "errors"

// Error taxonomy for the stock operations. Handlers map these to HTTP
// statuses with errors.Is, so service and repository layers wrap them
// with fmt.Errorf("%w: ...") instead of inventing new sentinel values.
var (
	// ErrNotFound: no row matched the requested identifier.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput: a user-supplied parameter failed coercion.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAmount: an adjustment delta was missing or non-numeric.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientQuantity: a subtract would drive quantity below zero.
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)
