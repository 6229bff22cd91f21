package errs

import "errors"

// Error taxonomy shared by the auth, booking and notification layers
var (
	// Credential errors
	ErrMissingCredential   = errors.New("missing credential")
	ErrInvalidCredential   = errors.New("invalid credential")
	ErrServerMisconfigured = errors.New("server misconfigured")

	// Authorization errors
	ErrForbidden = errors.New("forbidden")

	// Booking errors
	ErrValidation         = errors.New("validation error")
	ErrServiceUnavailable = errors.New("service not available for booking")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrConflict           = errors.New("concurrent modification")

	// Lookup errors
	ErrNotFound = errors.New("not found")
)
