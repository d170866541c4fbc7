package deletion

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is a deletion job's lifecycle state. Transitions are monotonic:
// queued to running, running to succeeded or failed, never backwards.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Terminal reports whether the status is final.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Job tracks one deletion request through the pipeline.
type Job struct {
	ID           uuid.UUID
	FilesystemID string
	EnqueuedAt   time.Time

	mu          sync.RWMutex
	status      Status
	failedStep  string
	errorDetail string
	finishedAt  time.Time
	done        chan struct{}
}

func newJob(fsid string) *Job {
	return &Job{
		ID:           uuid.New(),
		FilesystemID: fsid,
		EnqueuedAt:   time.Now(),
		status:       StatusQueued,
		done:         make(chan struct{}),
	}
}

// Status returns the job's current lifecycle state.
func (j *Job) Status() Status {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.status
}

// FailedStep names the pipeline step that failed, or "" while the job has
// not failed.
func (j *Job) FailedStep() string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.failedStep
}

// ErrorDetail is an opaque description of the failure: the error's type,
// never its message.
func (j *Job) ErrorDetail() string {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.errorDetail
}

// FinishedAt is the time the job reached a terminal status, zero until then.
func (j *Job) FinishedAt() time.Time {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.finishedAt
}

// Done is closed when the job reaches a terminal status.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

func (j *Job) setRunning() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = StatusRunning
}

func (j *Job) succeed() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = StatusSucceeded
	j.finishedAt = time.Now()
	close(j.done)
}

func (j *Job) fail(step, detail string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.status = StatusFailed
	j.failedStep = step
	j.errorDetail = detail
	j.finishedAt = time.Now()
	close(j.done)
}
