// Package keyring stores per-source encryption keys in the operating
// system's credential store via go-keyring.
//
// Deletes are idempotent: removing a key that is already gone succeeds, so a
// re-run deletion pipeline can cross the key step without special-casing.
// go-keyring also provides MockInit for in-memory operation in tests.
package keyring
