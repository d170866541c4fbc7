package deletion

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sealpost/sealpost/pkg/logger"
)

// Keyring manages per-source encryption keys.
type Keyring interface {
	// GetKey returns the key material for the filesystem identifier, or
	// an error if no key exists.
	GetKey(ctx context.Context, fsid string) (string, error)

	// DeleteKey removes the key. Deleting an absent key succeeds.
	DeleteKey(ctx context.Context, fsid string) error
}

// Eraser destroys on-disk submission material.
type Eraser interface {
	// SecureRemove destroys the tree rooted at path. A missing path succeeds.
	SecureRemove(ctx context.Context, path string) error
}

// SourceStore purges a source's database records.
type SourceStore interface {
	// PurgeSource removes the source and all dependent records in one
	// transaction. Purging an absent source succeeds.
	PurgeSource(ctx context.Context, fsid string) error
}

// Coordinator runs deletion pipelines on a bounded set of workers.
type Coordinator struct {
	keyring  Keyring
	eraser   Eraser
	sources  SourceStore
	storeDir string
	log      *slog.Logger

	sem chan struct{}
	wg  sync.WaitGroup

	mu       sync.Mutex
	jobs     map[uuid.UUID]*Job
	inflight map[string]*Job
	shutdown bool
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger used for pipeline progress and failures.
func WithLogger(log *slog.Logger) Option {
	return func(c *Coordinator) {
		c.log = log
	}
}

// New creates a coordinator over the three collaborators.
func New(kr Keyring, er Eraser, src SourceStore, cfg Config, opts ...Option) (*Coordinator, error) {
	if kr == nil || er == nil || src == nil {
		return nil, ErrDependencyRequired
	}

	maxConcurrent := cfg.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	c := &Coordinator{
		keyring:  kr,
		eraser:   er,
		sources:  src,
		storeDir: cfg.StoreDir,
		log:      slog.Default(),
		sem:      make(chan struct{}, maxConcurrent),
		jobs:     make(map[uuid.UUID]*Job),
		inflight: make(map[string]*Job),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Request enqueues the deletion of a source's collection. If a job for the
// same filesystem identifier is already queued or running, that job is
// returned instead of starting a second pipeline over the same files.
//
// The returned job runs detached from ctx: once the pipeline starts, it
// cannot be cancelled.
func (c *Coordinator) Request(ctx context.Context, fsid string) (*Job, error) {
	if fsid == "" {
		return nil, ErrFilesystemIDRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.shutdown {
		return nil, ErrShutdown
	}
	// Coalesce onto a live job only; a finished job that has not been
	// cleared yet must not swallow a fresh request.
	if job, ok := c.inflight[fsid]; ok && !job.Status().Terminal() {
		return job, nil
	}

	job := newJob(fsid)
	c.jobs[job.ID] = job
	c.inflight[fsid] = job

	c.log.LogAttrs(ctx, slog.LevelInfo, "deletion requested",
		logger.FSID(fsid),
		slog.String("job_id", job.ID.String()),
	)

	c.wg.Add(1)
	go c.run(job)

	return job, nil
}

// JobStatus returns the job with the given id. Finished jobs remain
// queryable for the coordinator's lifetime.
func (c *Coordinator) JobStatus(id uuid.UUID) (*Job, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	job, ok := c.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// Wait blocks until the job reaches a terminal status or the timeout
// elapses. The job keeps running after a timed-out wait.
func (c *Coordinator) Wait(job *Job, timeout time.Duration) (Status, error) {
	select {
	case <-job.Done():
		return job.Status(), nil
	case <-time.After(timeout):
		return job.Status(), ErrWaitTimeout
	}
}

// Shutdown stops accepting new requests and blocks until in-flight jobs
// finish or ctx is done. The jobs themselves are never cancelled.
func (c *Coordinator) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	c.shutdown = true
	c.mu.Unlock()

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run executes the pipeline for one job. It deliberately uses a background
// context: a deletion that has started must run to completion or failure,
// regardless of what happens to the requester.
func (c *Coordinator) run(job *Job) {
	defer c.wg.Done()
	defer c.clearInflight(job)

	c.sem <- struct{}{}
	defer func() { <-c.sem }()

	job.setRunning()
	ctx := context.Background()

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"delete key", func(ctx context.Context) error {
			return c.keyring.DeleteKey(ctx, job.FilesystemID)
		}},
		{"erase files", func(ctx context.Context) error {
			return c.eraser.SecureRemove(ctx, filepath.Join(c.storeDir, job.FilesystemID))
		}},
		{"purge records", func(ctx context.Context) error {
			return c.sources.PurgeSource(ctx, job.FilesystemID)
		}},
	}

	for _, step := range steps {
		c.log.LogAttrs(ctx, slog.LevelInfo, "deletion step",
			logger.FSID(job.FilesystemID),
			logger.Step(step.name),
		)
		if err := step.fn(ctx); err != nil {
			// The error's message may contain paths or key identifiers;
			// record and log its type only.
			job.fail(step.name, fmt.Sprintf("%T", err))
			c.log.LogAttrs(ctx, slog.LevelError, "deletion step failed",
				logger.FSID(job.FilesystemID),
				logger.Step(step.name),
				logger.ErrorType(err),
			)
			return
		}
	}

	job.succeed()
	c.log.LogAttrs(ctx, slog.LevelInfo, "deletion finished", logger.FSID(job.FilesystemID))
}

func (c *Coordinator) clearInflight(job *Job) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inflight[job.FilesystemID] == job {
		delete(c.inflight, job.FilesystemID)
	}
}
