// Package deletion coordinates the three-step destruction of a source's
// collection: the encryption key, the on-disk files, and the database
// records, in that order.
//
// The order is deliberate. Deleting the key first makes the remaining
// ciphertext unreadable even if a later step fails, so a partially deleted
// collection is never more recoverable than a fully deleted one.
//
// Requests are asynchronous. Request enqueues a Job and returns immediately;
// a bounded set of workers runs the pipeline detached from the caller's
// context, because a deletion must not be cancelled halfway once it starts.
// Concurrent requests for the same filesystem identifier coalesce onto the
// in-flight job rather than racing each other through the filesystem.
//
// A failed job records which step failed and the error's type, never its
// message, and is not retried automatically: the operator re-requests the
// deletion, and every step tolerates the partial state a previous attempt
// left behind (missing keys and missing paths are successes).
package deletion
