package errs

import "errors"

// Domain-specific sentinel errors for usecase layers
var (
	// Schedule errors
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTimeSlot = errors.New("invalid time slot")
	ErrInvalidWindow   = errors.New("invalid window")

	// Booking errors
	ErrCooldownActive       = errors.New("cooldown active")
	ErrWindowNotAvailable   = errors.New("window not available")
	ErrMissingRequiredField = errors.New("missing required field")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Content errors
	ErrEntryNotFound = errors.New("entry not found")
	ErrAlreadyLiked  = errors.New("already liked")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
