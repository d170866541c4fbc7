package twofactor

import "errors"

var (
	// ErrInvalidCode is returned when a one-time code does not verify. The
	// caller cannot tell a wrong code from a replayed one; both fail the
	// same way.
	ErrInvalidCode = errors.New("invalid one-time code")

	// ErrUnexpected is returned when a secret reset fails for an internal
	// reason. The message is deliberately opaque; details go to the log.
	ErrUnexpected = errors.New("an unexpected error occurred")

	// ErrStoreRequired is returned by New when no account store is provided.
	ErrStoreRequired = errors.New("account store is required")
)
