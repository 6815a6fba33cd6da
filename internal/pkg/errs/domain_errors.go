package errs

import "errors"

// Outcome categories shared by every layer. Specific errors are marked with one
// of these so the transport layer can map them without knowing each package.
var (
	ErrNotFound               = errors.New("not found")
	ErrUnavailable            = errors.New("unavailable")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrFull                   = errors.New("capacity full")
	ErrAlreadyRegistered      = errors.New("already registered")
	ErrAlreadyCancelled       = errors.New("already cancelled")
	ErrAlreadyPaid            = errors.New("already paid")
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// Idempotency errors
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with a different request")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrBusy                    = errors.New("resource busy")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
