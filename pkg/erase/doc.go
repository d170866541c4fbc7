// Package erase destroys on-disk submission material.
//
// SecureRemove overwrites every regular file under a path with random bytes
// and syncs before unlinking, so the plaintext-length ciphertext is not left
// recoverable in unallocated blocks on traditional filesystems. A missing
// path is a success: the deletion pipeline re-runs after partial failures
// and must cross this step idempotently.
//
// Overwriting is best effort by nature. On copy-on-write or log-structured
// filesystems the old blocks may survive an overwrite; the key deletion step
// that precedes erasure is what actually guarantees unreadability.
package erase
