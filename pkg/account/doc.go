// Package account defines the operator (journalist/admin) account model and
// its storage implementations.
//
// An account carries a passphrase digest, raw one-time-password secret
// material with the HOTP/TOTP variant flag and counter, an admin capability
// flag, and the login-throttle bookkeeping columns. Accounts are provisioned
// out of band; this package only persists and mutates them.
//
// Two stores are provided: MemoryStore for tests and single-process use, and
// PostgresStore on a pgx pool. Both apply counter and throttle updates
// atomically — the HOTP counter only ever moves forward, and concurrent
// failed-attempt recording cannot lose increments.
package account
