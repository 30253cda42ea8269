package errors

import "errors"

var (
	// ErrUnauthenticated signals a missing, unknown or expired session token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden signals a role violation.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound covers absent entities and ownership violations, which are
	// deliberately indistinguishable to the caller.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists covers duplicate names, components and attachments.
	ErrAlreadyExists = errors.New("already exists")
	// ErrEmptyConfiguration rejects pricing a configuration with no line items.
	ErrEmptyConfiguration = errors.New("configuration has no components")
	// ErrInvalid rejects malformed input such as a non-positive quantity.
	ErrInvalid = errors.New("invalid input")
	// ErrInvalidCredentials rejects a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
