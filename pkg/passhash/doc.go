// Package passhash hashes and verifies operator passphrases with Argon2id.
//
// Every digest carries its own random salt and KDF parameters in PHC string
// format ($argon2id$v=19$m=...,t=...,p=...$salt$hash), so parameters can be
// tuned over time without invalidating stored digests.
//
// A strict length policy is enforced before any KDF work runs:
// passphrases shorter than MinPasswordLen or longer than MaxPasswordLen are
// rejected with ErrInvalidPasswordLength. The maximum is a denial-of-service
// guard that bounds attacker-controlled hashing cost, not a strength rule.
//
// Verify never distinguishes a wrong passphrase from a malformed digest:
// both return false, and the malformed path still burns one KDF computation
// so the two cases are not separable by timing.
//
// The Pool type bounds concurrent KDF work so CPU-heavy hashing cannot
// starve I/O-serving goroutines; callers block on their own result.
package passhash
