package handball

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a request is missing required data or carries bad values.
	ErrInvalidInput = errors.New("invalid input")
)
