package keyring_test

import (
	"context"
	"testing"

	zkeyring "github.com/zalando/go-keyring"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealpost/sealpost/pkg/keyring"
)

func newStore(t *testing.T) *keyring.Store {
	t.Helper()
	zkeyring.MockInit()
	return keyring.New(keyring.WithService("sealpost-test"))
}

func TestSetGetDelete(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetKey(ctx, "fsid-1", "key material"))
	assert.True(t, store.HasKey(ctx, "fsid-1"))

	key, err := store.GetKey(ctx, "fsid-1")
	require.NoError(t, err)
	assert.Equal(t, "key material", key)

	require.NoError(t, store.DeleteKey(ctx, "fsid-1"))
	assert.False(t, store.HasKey(ctx, "fsid-1"))

	_, err = store.GetKey(ctx, "fsid-1")
	assert.ErrorIs(t, err, keyring.ErrKeyNotFound)
}

func TestDeleteAbsentKeySucceeds(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	// Idempotence: the deletion pipeline may run the key step twice.
	assert.NoError(t, store.DeleteKey(ctx, "never-stored"))

	require.NoError(t, store.SetKey(ctx, "fsid-1", "key material"))
	require.NoError(t, store.DeleteKey(ctx, "fsid-1"))
	assert.NoError(t, store.DeleteKey(ctx, "fsid-1"))
}
