// Package session issues and validates bearer sessions for authenticated
// operators.
//
// Tokens carry 256 bits of entropy and are the only client-side state; all
// session attributes live server-side behind the Store interface. Sessions
// expire after a fixed TTL and are not sliding: changing a passphrase or
// resetting a second factor invalidates every session the account holds via
// InvalidateAccount, forcing re-authentication with the new credentials.
package session
