package entities

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the store, the library core and the HTTP layer.
// Callers match with errors.Is.
var (
	// ErrNotFound is returned when an operation targets a missing id.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidArgument covers empty required text, out-of-range values
	// and unknown sort or status names.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPersistence wraps failures of the underlying store.
	ErrPersistence = errors.New("persistence failure")
)

// PersistenceError tags a store failure with ErrPersistence while keeping
// the driver error in the chain.
func PersistenceError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}

// InvalidArgument builds an ErrInvalidArgument with a readable reason.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
