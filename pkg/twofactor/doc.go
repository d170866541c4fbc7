// Package twofactor manages second-factor enrollment and verification for
// operator accounts.
//
// The Manager supports both time-based (TOTP) and counter-based (HOTP)
// one-time passwords. Resetting a secret accepts either an operator-supplied
// hex string, normalized and validated before anything is persisted, or no
// input at all, in which case a fresh random secret is generated. A reset
// that fails at the storage layer leaves the previous secret fully intact.
//
// Verification tolerates a configurable amount of clock drift for TOTP and a
// configurable counter lookahead for HOTP. A successful HOTP verification
// advances the stored counter past the matched value atomically, so the same
// code can never be accepted twice, even by concurrent verifications.
//
// Storage failures during a reset are reported to the caller as
// ErrUnexpected, an intentionally opaque sentinel. The underlying cause is
// logged with the error's type only, never its message, because driver
// messages can echo query parameters and those may contain secret material.
package twofactor
