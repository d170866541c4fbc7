package account_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealpost/sealpost/pkg/account"
)

func newAccount(t *testing.T, store *account.MemoryStore, username string) *account.Account {
	t.Helper()
	acc := &account.Account{
		Username:       username,
		PasswordDigest: "$argon2id$v=19$m=8,t=1,p=1$c2FsdA$aGFzaA",
		OTPSecret:      []byte("12345678901234567890"),
	}
	require.NoError(t, store.Create(context.Background(), acc))
	return acc
}

func TestMemoryStoreCreate(t *testing.T) {
	t.Parallel()
	store := account.NewMemoryStore()
	ctx := context.Background()

	acc := newAccount(t, store, "dellsberg")
	assert.NotZero(t, acc.ID)
	assert.False(t, acc.CreatedAt.IsZero())

	t.Run("duplicate username", func(t *testing.T) {
		err := store.Create(ctx, &account.Account{Username: "dellsberg"})
		assert.ErrorIs(t, err, account.ErrUsernameTaken)
	})

	t.Run("username length policy", func(t *testing.T) {
		err := store.Create(ctx, &account.Account{Username: "ab"})
		assert.ErrorIs(t, err, account.ErrInvalidUsername)
		err = store.Create(ctx, &account.Account{Username: strings.Repeat("a", account.MaxUsernameLen+1)})
		assert.ErrorIs(t, err, account.ErrInvalidUsername)
	})

	t.Run("usernames are case-sensitive", func(t *testing.T) {
		err := store.Create(ctx, &account.Account{Username: "Dellsberg"})
		assert.NoError(t, err)
	})
}

func TestMemoryStoreLookup(t *testing.T) {
	t.Parallel()
	store := account.NewMemoryStore()
	ctx := context.Background()

	acc := newAccount(t, store, "journalist")

	byID, err := store.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, acc.Username, byID.Username)

	byName, err := store.GetByUsername(ctx, "journalist")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, byName.ID)

	_, err = store.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, account.ErrNotFound)
	_, err = store.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, account.ErrNotFound)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	t.Parallel()
	store := account.NewMemoryStore()
	ctx := context.Background()

	acc := newAccount(t, store, "journalist")

	got, err := store.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	got.OTPSecret[0] ^= 0xff
	got.Username = "mutated"

	again, err := store.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "journalist", again.Username)
	assert.Equal(t, byte('1'), again.OTPSecret[0])
}

func TestMemoryStoreUpdateOTPSecretResetsCounter(t *testing.T) {
	t.Parallel()
	store := account.NewMemoryStore()
	ctx := context.Background()

	acc := newAccount(t, store, "journalist")
	require.NoError(t, store.AdvanceHOTPCounter(ctx, acc.ID, 7))

	require.NoError(t, store.UpdateOTPSecret(ctx, acc.ID, []byte("new secret material!"), true))

	got, err := store.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("new secret material!"), got.OTPSecret)
	assert.True(t, got.IsHOTP)
	assert.Zero(t, got.HOTPCounter)
}

func TestMemoryStoreAdvanceHOTPCounter(t *testing.T) {
	t.Parallel()
	store := account.NewMemoryStore()
	ctx := context.Background()

	acc := newAccount(t, store, "journalist")

	require.NoError(t, store.AdvanceHOTPCounter(ctx, acc.ID, 3))

	// Replays and rewinds are conflicts.
	assert.ErrorIs(t, store.AdvanceHOTPCounter(ctx, acc.ID, 3), account.ErrCounterConflict)
	assert.ErrorIs(t, store.AdvanceHOTPCounter(ctx, acc.ID, 1), account.ErrCounterConflict)

	require.NoError(t, store.AdvanceHOTPCounter(ctx, acc.ID, 4))

	got, err := store.GetByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), got.HOTPCounter)
}

func TestMemoryStoreFailureBookkeeping(t *testing.T) {
	t.Parallel()
	store := account.NewMemoryStore()
	ctx := context.Background()

	acc := newAccount(t, store, "journalist")
	at := time.Now()

	count, err := store.RecordFailure(ctx, acc.ID, at)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = store.RecordFailure(ctx, acc.ID, at.Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	gotCount, gotLast, err := store.State(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, gotCount)
	assert.Equal(t, at.Add(time.Second), gotLast)

	require.NoError(t, store.Reset(ctx, acc.ID))
	gotCount, gotLast, err = store.State(ctx, acc.ID)
	require.NoError(t, err)
	assert.Zero(t, gotCount)
	assert.True(t, gotLast.IsZero())
}

func TestMemoryStoreConcurrentFailuresDoNotLoseIncrements(t *testing.T) {
	t.Parallel()
	store := account.NewMemoryStore()
	ctx := context.Background()

	acc := newAccount(t, store, "journalist")

	const attempts = 50
	var wg sync.WaitGroup
	for iter := 0; iter < attempts; iter++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.RecordFailure(ctx, acc.ID, time.Now())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, _, err := store.State(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, attempts, count)
}
