// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidCredentials indicates a failed login. It never tells an unknown
	// email apart from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInput indicates input rejected by the core (empty note text, empty credentials).
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthenticated indicates an operation that needs an authenticated session.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrStorage wraps infrastructure-level failures (connection loss, unexpected constraint violations).
	ErrStorage = errors.New("storage failure")
)
