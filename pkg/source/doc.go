// Package source models sources and their submission records.
//
// A source is identified externally by its filesystem identifier, the name
// of its directory in the submission store and of its key in the keyring.
// PurgeSource removes a source's replies, submissions, and the source row
// itself in one transaction, so the database never shows a half-deleted
// collection. Purging an absent source succeeds, which keeps the deletion
// pipeline idempotent across re-runs.
package source
