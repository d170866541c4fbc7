package session

import "errors"

var (
	// ErrNotFound is returned when no session matches the token.
	ErrNotFound = errors.New("session not found")

	// ErrExpired is returned for a session past its expiry. The session is
	// removed from the store as a side effect.
	ErrExpired = errors.New("session expired")

	// ErrStoreRequired is returned by NewManager when no store is provided.
	ErrStoreRequired = errors.New("session store is required")

	// ErrFailedToGenerateToken is returned when the system's entropy source
	// fails.
	ErrFailedToGenerateToken = errors.New("failed to generate session token")
)
