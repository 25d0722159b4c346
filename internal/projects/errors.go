package projects

import "errors"

var (
	// ErrNotFound indicates the project does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a validation failure in request data.
	ErrInvalidInput = errors.New("invalid input")
)
