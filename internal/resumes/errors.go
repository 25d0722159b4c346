package resumes

import "errors"

var (
	// ErrNotFound indicates the resume or child record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates a validation failure in request data.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoPDF indicates no rendered PDF exists for the resume.
	ErrNoPDF = errors.New("no pdf rendered")
)
