package source

import "errors"

var (
	// ErrNotFound is returned when no source matches the lookup.
	ErrNotFound = errors.New("source not found")

	// ErrConcurrentModification is returned when a purge loses a race with
	// another writer: the source row changed between read and delete. The
	// caller re-requests the deletion.
	ErrConcurrentModification = errors.New("source modified concurrently")
)
