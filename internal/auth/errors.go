package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the supplied password does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotConfigured is returned when no owner password has been set.
	ErrNotConfigured = errors.New("owner login not configured")
)
