package throttle

import (
	"context"
	"time"
)

// Store persists per-account failure counters. Implementations must make
// RecordFailure atomic so concurrent failed attempts cannot lose increments.
// The account stores satisfy this interface directly, keeping the counter on
// the account row.
type Store interface {
	// RecordFailure increments the failure counter and stamps the attempt
	// time, returning the new count.
	RecordFailure(ctx context.Context, accountID int64, at time.Time) (int, error)

	// State returns the current failure count and the time of the most
	// recent failure. A zero count and zero time mean a clean slate.
	State(ctx context.Context, accountID int64) (count int, last time.Time, err error)

	// Reset clears the failure counter after a successful authentication.
	Reset(ctx context.Context, accountID int64) error
}

// Throttle enforces the consecutive-failure limit per account.
type Throttle struct {
	store       Store
	enabled     bool
	maxAttempts int
	period      time.Duration
	now         func() time.Time
}

// Option configures a Throttle.
type Option func(*Throttle)

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(t *Throttle) {
		t.now = now
	}
}

// New creates a throttle over the given store.
func New(store Store, cfg Config, opts ...Option) (*Throttle, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if cfg.MaxAttempts <= 0 {
		return nil, ErrInvalidMaxAttempts
	}
	if cfg.AttemptPeriod <= 0 {
		return nil, ErrInvalidPeriod
	}

	t := &Throttle{
		store:       store,
		enabled:     cfg.Enabled,
		maxAttempts: cfg.MaxAttempts,
		period:      cfg.AttemptPeriod,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Check reports whether the account may attempt to log in now. It returns a
// ThrottledError while the account is in cooldown and nil otherwise. A
// counter whose window has fully elapsed is cleared here, so the next
// failure starts a fresh window.
func (t *Throttle) Check(ctx context.Context, accountID int64) error {
	if !t.enabled {
		return nil
	}

	count, last, err := t.store.State(ctx, accountID)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	elapsed := t.now().Sub(last)
	if elapsed >= t.period {
		// Window (or cooldown) served; clear the stale counter so the
		// account gets a full set of fresh attempts.
		if err := t.store.Reset(ctx, accountID); err != nil {
			return err
		}
		return nil
	}
	if count < t.maxAttempts {
		return nil
	}

	// Round the wait up to a whole second so the error never claims zero.
	wait := (t.period - elapsed + time.Second - 1) / time.Second * time.Second
	return &ThrottledError{RetryAfter: wait}
}

// Failure records a failed attempt. The return value reports whether this
// failure pushed the account into cooldown.
func (t *Throttle) Failure(ctx context.Context, accountID int64) (throttled bool, err error) {
	if !t.enabled {
		return false, nil
	}

	count, err := t.store.RecordFailure(ctx, accountID, t.now())
	if err != nil {
		return false, err
	}
	return count >= t.maxAttempts, nil
}

// Success clears the failure counter after a successful authentication.
func (t *Throttle) Success(ctx context.Context, accountID int64) error {
	if !t.enabled {
		return nil
	}
	return t.store.Reset(ctx, accountID)
}
