package deletion

import "errors"

var (
	// ErrFilesystemIDRequired is returned by Request for an empty filesystem
	// identifier.
	ErrFilesystemIDRequired = errors.New("filesystem identifier is required")

	// ErrJobNotFound is returned by JobStatus for an unknown job id.
	ErrJobNotFound = errors.New("deletion job not found")

	// ErrWaitTimeout is returned by Wait when the job does not finish in time.
	// The job keeps running; only the wait gives up.
	ErrWaitTimeout = errors.New("timed out waiting for deletion job")

	// ErrDependencyRequired is returned by New when a collaborator is missing.
	ErrDependencyRequired = errors.New("missing required dependency")

	// ErrShutdown is returned by Request after Shutdown has been called.
	ErrShutdown = errors.New("coordinator is shut down")
)
