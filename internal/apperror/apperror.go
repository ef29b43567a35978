package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed or missing input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a lookup for an entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOperation marks a business rule violation that is not a lookup miss.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInsufficientFunds occurs when a withdrawal would leave a negative balance.
	// It is also an ErrInvalidOperation.
	ErrInsufficientFunds = fmt.Errorf("%w: insufficient funds", ErrInvalidOperation)

	// ErrCurrencyMismatch occurs when money of different currencies is combined.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// NotFoundError carries the entity kind and lookup key of a failed lookup.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Entity, e.Key)
}

// Is lets errors.Is(err, ErrNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NotFound builds a NotFoundError for the given entity and key.
func NotFound(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}

// Validation wraps ErrValidation with a formatted message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// InvalidOperation wraps ErrInvalidOperation with a formatted message.
func InvalidOperation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOperation, fmt.Sprintf(format, args...))
}

// CurrencyMismatch reports an operation attempted between two currencies.
func CurrencyMismatch(a, b string) error {
	return fmt.Errorf("%w: cannot combine %s and %s", ErrCurrencyMismatch, a, b)
}
