// Package hexsecret validates and normalizes operator-supplied hexadecimal
// two-factor seed material before it is accepted into an account.
//
// Secrets are commonly typed in spacer groups ("12 34 56 ..."), so all
// whitespace is stripped before any validation runs. A secret must then have
// an even number of characters and consist only of hexadecimal digits.
//
// Validation failures are reported via sentinel errors that all wrap
// ErrInvalidSecretFormat, so callers can match the broad class with
// errors.Is(err, hexsecret.ErrInvalidSecretFormat) or the specific reason
// with ErrOddLength / ErrNonHex.
//
// The package is pure: it never mutates state and performs no I/O.
package hexsecret
