package account

import "errors"

var (
	// ErrNotFound is returned when no account matches the lookup.
	ErrNotFound = errors.New("account not found")

	// ErrUsernameTaken is returned when creating an account with a username
	// that already exists. Usernames are case-sensitive and unique.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidUsername is returned when a username violates the length policy.
	ErrInvalidUsername = errors.New("invalid username length")

	// ErrCounterConflict is returned when an HOTP counter advance would move
	// the counter backwards or to its current value, which indicates either a
	// replayed code or a concurrent verification that already claimed it.
	ErrCounterConflict = errors.New("stale HOTP counter advance")
)
