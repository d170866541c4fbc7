package throttle

import (
	"context"
	"sync"
	"time"
)

type counter struct {
	count int
	last  time.Time
}

// MemoryStore is an in-memory throttle store for tests and single-process
// deployments. A background janitor evicts counters that have been idle
// longer than the stale threshold so abandoned accounts do not leak memory.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[int64]*counter

	cleanupInterval time.Duration
	staleAfter      time.Duration
	stopCleanup     chan struct{}
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often stale counters are evicted.
// Set to 0 to disable the janitor.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// NewMemoryStore creates a new in-memory throttle store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		counters:        make(map[int64]*counter),
		cleanupInterval: 5 * time.Minute,
		staleAfter:      time.Hour,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}

	return ms
}

// RecordFailure increments the failure counter, returning the new count.
func (ms *MemoryStore) RecordFailure(ctx context.Context, accountID int64, at time.Time) (int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	c, ok := ms.counters[accountID]
	if !ok {
		c = &counter{}
		ms.counters[accountID] = c
	}
	c.count++
	c.last = at

	return c.count, nil
}

// State returns the current failure count and last failure time.
func (ms *MemoryStore) State(ctx context.Context, accountID int64) (int, time.Time, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	c, ok := ms.counters[accountID]
	if !ok {
		return 0, time.Time{}, nil
	}
	return c.count, c.last, nil
}

// Reset clears the failure counter for the account.
func (ms *MemoryStore) Reset(ctx context.Context, accountID int64) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.counters, accountID)
	return nil
}

func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeStale()
		case <-ms.stopCleanup:
			return
		}
	}
}

func (ms *MemoryStore) removeStale() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	for id, c := range ms.counters {
		if now.Sub(c.last) > ms.staleAfter {
			delete(ms.counters, id)
		}
	}
}

// Close stops the janitor goroutine. Safe to call multiple times.
func (ms *MemoryStore) Close() {
	select {
	case <-ms.stopCleanup:
	default:
		close(ms.stopCleanup)
	}
}
