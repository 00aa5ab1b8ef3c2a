package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP codes.
var (
	// ErrValidation: malformed or missing required input (phone length,
	// missing product name, price that does not parse as a number).
	ErrValidation = errors.New("invalid input")
	// ErrMismatch: submitted verification code does not equal the pending code.
	ErrMismatch = errors.New("verification code mismatch")
	// ErrPrecondition: action attempted on an ineligible entity, e.g.
	// contacting an out-of-stock product or verifying before a code was sent.
	ErrPrecondition = errors.New("precondition not met")
	// ErrPersistence: the backing store failed to read or write.
	ErrPersistence = errors.New("persistence failure")

	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("not authenticated")
	ErrForbidden    = errors.New("access denied")
)
