package hexsecret

import "errors"

var (
	// ErrInvalidSecretFormat is the broad class wrapped by all validation failures.
	ErrInvalidSecretFormat = errors.New("invalid secret format")

	// ErrOddLength is returned when the secret has an odd number of characters
	// after whitespace stripping. Usually indicates a mistyped secret.
	ErrOddLength = errors.New("odd-length secret")

	// ErrNonHex is returned when the secret contains characters outside [0-9a-fA-F].
	ErrNonHex = errors.New("secret contains non-hexadecimal characters")
)
