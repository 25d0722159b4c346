package pdf

import "errors"

var (
	// ErrMalformedSnapshot indicates a snapshot missing required data (name).
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrLayout indicates the pagination or encoding step failed.
	ErrLayout = errors.New("layout failure")
)
