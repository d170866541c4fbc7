package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-memory session store for tests and single-process
// deployments. A background janitor evicts expired sessions.
type MemoryStore struct {
	mu       sync.RWMutex
	byToken  map[string]*Session
	byAcct   map[int64]map[string]struct{}
	interval time.Duration
	stop     chan struct{}
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often expired sessions are evicted.
// Set to 0 to disable the janitor.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.interval = interval
	}
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		byToken:  make(map[string]*Session),
		byAcct:   make(map[int64]map[string]struct{}),
		interval: 5 * time.Minute,
		stop:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.interval > 0 {
		go ms.cleanup()
	}

	return ms
}

// Create stores a new session.
func (ms *MemoryStore) Create(ctx context.Context, sess *Session) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	copied := *sess
	ms.byToken[sess.Token] = &copied
	tokens, ok := ms.byAcct[sess.AccountID]
	if !ok {
		tokens = make(map[string]struct{})
		ms.byAcct[sess.AccountID] = tokens
	}
	tokens[sess.Token] = struct{}{}

	return nil
}

// GetByToken retrieves a session by its bearer token.
func (ms *MemoryStore) GetByToken(ctx context.Context, token string) (*Session, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	sess, ok := ms.byToken[token]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *sess
	return &copied, nil
}

// Delete removes a session by token.
func (ms *MemoryStore) Delete(ctx context.Context, token string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.remove(token)
	return nil
}

// DeleteByAccountID removes every session belonging to the account.
func (ms *MemoryStore) DeleteByAccountID(ctx context.Context, accountID int64) (int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	tokens := ms.byAcct[accountID]
	for token := range tokens {
		delete(ms.byToken, token)
	}
	delete(ms.byAcct, accountID)

	return len(tokens), nil
}

// DeleteExpired removes all sessions past their expiry.
func (ms *MemoryStore) DeleteExpired(ctx context.Context) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	for token, sess := range ms.byToken {
		if sess.IsExpired(now) {
			ms.remove(token)
		}
	}
	return nil
}

// remove deletes a session and its account index entry. Callers hold the lock.
func (ms *MemoryStore) remove(token string) {
	sess, ok := ms.byToken[token]
	if !ok {
		return
	}
	delete(ms.byToken, token)
	if tokens, ok := ms.byAcct[sess.AccountID]; ok {
		delete(tokens, token)
		if len(tokens) == 0 {
			delete(ms.byAcct, sess.AccountID)
		}
	}
}

func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = ms.DeleteExpired(context.Background())
		case <-ms.stop:
			return
		}
	}
}

// Close stops the janitor goroutine. Safe to call multiple times.
func (ms *MemoryStore) Close() {
	select {
	case <-ms.stop:
	default:
		close(ms.stop)
	}
}
