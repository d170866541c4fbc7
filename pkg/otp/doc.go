// Package otp implements the RFC 4226 (HOTP) and RFC 6238 (TOTP) one-time
// password algorithms over raw secret key bytes.
//
// Codes are 6 digits, HMAC-SHA1, with a 30-second TOTP period — the
// parameters every mainstream authenticator app ships with. Validation
// helpers support a configurable clock-skew window for TOTP and a
// configurable look-ahead window for HOTP; the HOTP validator reports the
// counter value that matched so callers can resynchronize their stored
// counter past it and reject replays.
//
// Comparison of submitted codes is constant-time.
//
// The package also builds otpauth:// provisioning URIs in the Key Uri
// Format understood by authenticator apps:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
package otp
