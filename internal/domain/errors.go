package domain

import "errors"

// Sentinel errors forming the business error taxonomy. Services return
// these (possibly wrapped) so callers can branch with errors.Is.
var (
	// ErrNotFound signals the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict signals an insert collided with an existing entity.
	ErrConflict = errors.New("already exists")

	// ErrUserExists signals a registration attempt for a taken user id.
	ErrUserExists = errors.New("user already exists")

	// ErrMissingCredentials signals an empty user id or password.
	ErrMissingCredentials = errors.New("user id and password are required")

	// ErrInvalidCredentials signals a failed id/password check.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStoreUnavailable signals an infrastructure failure talking to the
	// document store. Distinct from ErrNotFound so callers never mistake
	// transient unavailability for absence of data.
	ErrStoreUnavailable = errors.New("store unavailable")
)
