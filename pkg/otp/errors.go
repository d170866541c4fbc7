package otp

import "errors"

var (
	ErrFailedToGenerateSecret = errors.New("failed to generate OTP secret")
	ErrEmptySecret            = errors.New("empty OTP secret")
	ErrInvalidCodeFormat      = errors.New("invalid OTP code format")
	ErrMissingAccountName     = errors.New("missing account name")
	ErrMissingIssuer          = errors.New("missing issuer")
)
