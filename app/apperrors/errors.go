package apperrors

import "errors"

var (
	// ErrNotFound is returned when a referenced user, product, order or
	// order item does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrConflict is returned on unique-constraint violations, such as a
	// duplicate email on registration.
	ErrConflict = errors.New("resource already exists")
	// ErrUnauthorized is returned on bad credentials or an invalid or
	// expired token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidInput is returned when a request is missing required fields
	// or carries unknown ones.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStockExceeded is returned when a cart mutation would push an order
	// line past the product's available stock. The transaction is rolled
	// back; nothing is persisted.
	ErrStockExceeded = errors.New("stock exceeded")
)
