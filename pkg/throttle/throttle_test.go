package throttle_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealpost/sealpost/pkg/throttle"
)

func testConfig() throttle.Config {
	return throttle.Config{
		Enabled:       true,
		MaxAttempts:   5,
		AttemptPeriod: 60 * time.Second,
	}
}

// fakeClock lets tests advance time deterministically.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newThrottle(t *testing.T, cfg throttle.Config) (*throttle.Throttle, *fakeClock) {
	t.Helper()
	store := throttle.NewMemoryStore(throttle.WithCleanupInterval(0))
	t.Cleanup(store.Close)

	clock := newFakeClock()
	th, err := throttle.New(store, cfg, throttle.WithNow(clock.Now))
	require.NoError(t, err)
	return th, clock
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	store := throttle.NewMemoryStore(throttle.WithCleanupInterval(0))
	t.Cleanup(store.Close)

	tests := []struct {
		name    string
		store   throttle.Store
		cfg     throttle.Config
		wantErr error
	}{
		{"nil store", nil, testConfig(), throttle.ErrStoreRequired},
		{"zero max attempts", store, throttle.Config{Enabled: true, AttemptPeriod: time.Minute}, throttle.ErrInvalidMaxAttempts},
		{"zero period", store, throttle.Config{Enabled: true, MaxAttempts: 5}, throttle.ErrInvalidPeriod},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := throttle.New(tt.store, tt.cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestThrottleKicksInAfterLimit(t *testing.T) {
	t.Parallel()
	th, _ := newThrottle(t, testConfig())
	ctx := context.Background()

	const accountID = int64(1)

	for i := 0; i < 5; i++ {
		require.NoError(t, th.Check(ctx, accountID), "attempt %d should be allowed", i+1)
		throttled, err := th.Failure(ctx, accountID)
		require.NoError(t, err)
		assert.Equal(t, i == 4, throttled)
	}

	err := th.Check(ctx, accountID)
	require.Error(t, err)
	assert.ErrorIs(t, err, throttle.ErrThrottled)

	var te *throttle.ThrottledError
	require.ErrorAs(t, err, &te)
	assert.Positive(t, te.RetryAfter)
	assert.Contains(t, te.Error(), "wait at least")
}

func TestThrottleRemainingWaitShrinks(t *testing.T) {
	t.Parallel()
	th, clock := newThrottle(t, testConfig())
	ctx := context.Background()

	const accountID = int64(2)
	for iter := 0; iter < 5; iter++ {
		_, err := th.Failure(ctx, accountID)
		require.NoError(t, err)
	}

	var first *throttle.ThrottledError
	require.ErrorAs(t, th.Check(ctx, accountID), &first)
	assert.Equal(t, 60*time.Second, first.RetryAfter)

	clock.Advance(45 * time.Second)

	var later *throttle.ThrottledError
	require.ErrorAs(t, th.Check(ctx, accountID), &later)
	assert.Equal(t, 15*time.Second, later.RetryAfter)
}

func TestThrottleCooldownElapses(t *testing.T) {
	t.Parallel()
	th, clock := newThrottle(t, testConfig())
	ctx := context.Background()

	const accountID = int64(3)
	for iter := 0; iter < 5; iter++ {
		_, err := th.Failure(ctx, accountID)
		require.NoError(t, err)
	}
	require.ErrorIs(t, th.Check(ctx, accountID), throttle.ErrThrottled)

	clock.Advance(60 * time.Second)

	// The cooldown has been served: the attempt is evaluated normally and
	// the account gets a fresh set of attempts.
	require.NoError(t, th.Check(ctx, accountID))
	for iter := 0; iter < 4; iter++ {
		_, err := th.Failure(ctx, accountID)
		require.NoError(t, err)
	}
	assert.NoError(t, th.Check(ctx, accountID))
}

func TestThrottleSuccessResets(t *testing.T) {
	t.Parallel()
	th, _ := newThrottle(t, testConfig())
	ctx := context.Background()

	const accountID = int64(4)
	for iter := 0; iter < 4; iter++ {
		_, err := th.Failure(ctx, accountID)
		require.NoError(t, err)
	}

	require.NoError(t, th.Success(ctx, accountID))

	// Counter starts over: five more failures fit before the throttle trips.
	for iter := 0; iter < 5; iter++ {
		require.NoError(t, th.Check(ctx, accountID))
		_, err := th.Failure(ctx, accountID)
		require.NoError(t, err)
	}
	assert.ErrorIs(t, th.Check(ctx, accountID), throttle.ErrThrottled)
}

func TestThrottleStaleWindowClears(t *testing.T) {
	t.Parallel()
	th, clock := newThrottle(t, testConfig())
	ctx := context.Background()

	const accountID = int64(5)
	for iter := 0; iter < 3; iter++ {
		_, err := th.Failure(ctx, accountID)
		require.NoError(t, err)
	}

	clock.Advance(2 * time.Minute)

	// Old failures fell out of the window; a new burst starts from zero.
	require.NoError(t, th.Check(ctx, accountID))
	for iter := 0; iter < 4; iter++ {
		_, err := th.Failure(ctx, accountID)
		require.NoError(t, err)
	}
	assert.NoError(t, th.Check(ctx, accountID))
}

func TestThrottleDisabled(t *testing.T) {
	t.Parallel()
	cfg := testConfig()
	cfg.Enabled = false
	th, _ := newThrottle(t, cfg)
	ctx := context.Background()

	const accountID = int64(6)
	for iter := 0; iter < 20; iter++ {
		throttled, err := th.Failure(ctx, accountID)
		require.NoError(t, err)
		assert.False(t, throttled)
		assert.NoError(t, th.Check(ctx, accountID))
	}
}

func TestThrottleConcurrentFailures(t *testing.T) {
	t.Parallel()
	th, _ := newThrottle(t, testConfig())
	ctx := context.Background()

	const accountID = int64(7)

	var wg sync.WaitGroup
	for iter := 0; iter < 10; iter++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := th.Failure(ctx, accountID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.ErrorIs(t, th.Check(ctx, accountID), throttle.ErrThrottled)
}

func TestMemoryStoreState(t *testing.T) {
	t.Parallel()
	store := throttle.NewMemoryStore(throttle.WithCleanupInterval(0))
	t.Cleanup(store.Close)
	ctx := context.Background()

	count, last, err := store.State(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.True(t, last.IsZero())

	at := time.Now()
	count, err = store.RecordFailure(ctx, 42, at)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, last, err = store.State(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Equal(t, at, last)

	require.NoError(t, store.Reset(ctx, 42))
	count, _, err = store.State(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, count)
}
