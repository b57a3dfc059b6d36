package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidInput wraps every contract violation. The wrapped error
	// carries the per-field messages.
	ErrInvalidInput     = errors.New("invalid input")
	ErrNoFieldsToUpdate = errors.New("missing fields")
)
