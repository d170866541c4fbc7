// Package authn orchestrates operator login and credential lifecycle.
//
// Login evaluates the account throttle before touching any credential, so a
// throttled attempt performs no key-derivation work. Every credential
// failure, whether the username is unknown, the passphrase is wrong, or the
// one-time code does not verify, surfaces as the same ErrAuthenticationFailed
// so a caller cannot probe which factor was wrong. Unknown usernames still
// burn a passphrase verification against a throwaway digest, keeping the
// response time of "no such user" in line with "wrong passphrase".
//
// Changing a passphrase or resetting a second factor revokes every session
// the account holds; the operator re-authenticates with the new credentials.
package authn
