package passhash

import (
	"context"
	"sync"
)

// Pool bounds concurrent KDF computations. Hashing is CPU-bound; without a
// bound, a burst of login attempts could saturate every core and starve
// goroutines serving I/O. Callers still block on their own result, so the
// semantics are suspend-and-resume, not fire-and-forget.
type Pool struct {
	hasher *Hasher
	sem    chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewPool wraps hasher with a concurrency bound of size slots.
func NewPool(hasher *Hasher, size int) *Pool {
	if size <= 0 {
		size = 1
	}
	return &Pool{
		hasher: hasher,
		sem:    make(chan struct{}, size),
	}
}

// Hash derives a digest on a bounded slot, waiting for one if all are busy.
func (p *Pool) Hash(ctx context.Context, password string) (string, error) {
	if err := p.acquire(ctx); err != nil {
		return "", err
	}
	defer p.release()

	return p.hasher.Hash(password)
}

// Verify checks a passphrase against a digest on a bounded slot.
func (p *Pool) Verify(ctx context.Context, password, digest string) (bool, error) {
	if err := p.acquire(ctx); err != nil {
		return false, err
	}
	defer p.release()

	return p.hasher.Verify(password, digest), nil
}

// Close rejects further submissions. In-flight work is unaffected.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *Pool) acquire(ctx context.Context) error {
	p.mu.Lock()
	closed := p.closed
	p.mu.Unlock()
	if closed {
		return ErrPoolClosed
	}

	select {
	case p.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pool) release() {
	<-p.sem
}
