package source

import (
	"time"

	"github.com/sealpost/sealpost/pkg/designation"
)

// Source is a person submitting material through the platform. The
// journalist-facing designation is a generated codename distinct from the
// filesystem identifier.
type Source struct {
	ID           int64
	FilesystemID string
	Designation  string

	// Version increments on every row update; purges use it to detect
	// concurrent writers.
	Version int64

	InteractionCount int
	LastUpdatedAt    time.Time
	CreatedAt        time.Time
}

// New creates a Source for the filesystem identifier with a freshly
// generated designation. The optional check callback rejects designations
// already present in storage.
func New(fsid string, check func(string) bool) *Source {
	return &Source{
		FilesystemID: fsid,
		Designation:  designation.Generate(check),
	}
}

// Submission is one encrypted document or message from a source.
type Submission struct {
	ID         int64
	SourceID   int64
	Filename   string
	Size       int64
	Downloaded bool
}

// Reply is an encrypted journalist response stored for the source.
type Reply struct {
	ID           int64
	SourceID     int64
	JournalistID int64
	Filename     string
	Size         int64
}
