package passhash

import "errors"

var (
	// ErrInvalidPasswordLength is returned before any hashing work when the
	// passphrase is outside [MinPasswordLen, MaxPasswordLen].
	ErrInvalidPasswordLength = errors.New("invalid password length")

	// ErrInvalidDigest is returned by internal digest parsing. It is never
	// surfaced through Verify, which reports malformed digests as plain false.
	ErrInvalidDigest = errors.New("invalid password digest encoding")

	// ErrUnsupportedDigestVersion is returned when a digest was produced by an
	// incompatible Argon2 version.
	ErrUnsupportedDigestVersion = errors.New("unsupported password digest version")

	// ErrPoolClosed is returned when work is submitted to a closed Pool.
	ErrPoolClosed = errors.New("password hashing pool is closed")
)
