package source_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealpost/sealpost/pkg/source"
)

func seedSource(t *testing.T, store *source.MemoryStore) *source.Source {
	t.Helper()
	ctx := context.Background()

	src := &source.Source{FilesystemID: "fsid-1", Designation: "wary nominee"}
	require.NoError(t, store.Create(ctx, src))
	require.NoError(t, store.AddSubmission(ctx, source.Submission{
		SourceID: src.ID, Filename: "1-wary_nominee-doc.gz.gpg", Size: 4096,
	}))
	require.NoError(t, store.AddSubmission(ctx, source.Submission{
		SourceID: src.ID, Filename: "2-wary_nominee-msg.gpg", Size: 512, Downloaded: true,
	}))
	require.NoError(t, store.AddReply(ctx, source.Reply{
		SourceID: src.ID, JournalistID: 7, Filename: "1-reply.gpg", Size: 256,
	}))
	return src
}

func TestMemoryStoreCreateAndLookup(t *testing.T) {
	t.Parallel()
	store := source.NewMemoryStore()
	src := seedSource(t, store)

	got, err := store.GetByFilesystemID(context.Background(), "fsid-1")
	require.NoError(t, err)
	assert.Equal(t, src.ID, got.ID)
	assert.Equal(t, "wary nominee", got.Designation)
	assert.Equal(t, 3, got.InteractionCount)
	assert.Equal(t, int64(3), got.Version)

	_, err = store.GetByFilesystemID(context.Background(), "nope")
	assert.ErrorIs(t, err, source.ErrNotFound)
}

func TestMemoryStoreRecordsRequireSource(t *testing.T) {
	t.Parallel()
	store := source.NewMemoryStore()
	ctx := context.Background()

	err := store.AddSubmission(ctx, source.Submission{SourceID: 99, Filename: "x"})
	assert.ErrorIs(t, err, source.ErrNotFound)
	err = store.AddReply(ctx, source.Reply{SourceID: 99, Filename: "x"})
	assert.ErrorIs(t, err, source.ErrNotFound)
}

func TestMemoryStorePurgeRemovesEverything(t *testing.T) {
	t.Parallel()
	store := source.NewMemoryStore()
	seedSource(t, store)
	ctx := context.Background()

	subs, replies, err := store.Counts(ctx, "fsid-1")
	require.NoError(t, err)
	assert.Equal(t, 2, subs)
	assert.Equal(t, 1, replies)

	require.NoError(t, store.PurgeSource(ctx, "fsid-1"))

	_, err = store.GetByFilesystemID(ctx, "fsid-1")
	assert.ErrorIs(t, err, source.ErrNotFound)
	_, _, err = store.Counts(ctx, "fsid-1")
	assert.ErrorIs(t, err, source.ErrNotFound)
}

func TestMemoryStorePurgeAbsentSucceeds(t *testing.T) {
	t.Parallel()
	store := source.NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.PurgeSource(ctx, "never-existed"))

	seedSource(t, store)
	require.NoError(t, store.PurgeSource(ctx, "fsid-1"))
	// Idempotence across deletion pipeline re-runs.
	assert.NoError(t, store.PurgeSource(ctx, "fsid-1"))
}

func TestNewGeneratesDesignation(t *testing.T) {
	t.Parallel()

	src := source.New("fsid-9", nil)
	assert.Equal(t, "fsid-9", src.FilesystemID)
	assert.NotEmpty(t, src.Designation)

	other := source.New("fsid-10", nil)
	assert.NotEqual(t, src.Designation, other.Designation)
}

func TestMemoryStorePurgeLeavesOtherSources(t *testing.T) {
	t.Parallel()
	store := source.NewMemoryStore()
	ctx := context.Background()

	seedSource(t, store)
	other := &source.Source{FilesystemID: "fsid-2", Designation: "brave patella"}
	require.NoError(t, store.Create(ctx, other))
	require.NoError(t, store.AddSubmission(ctx, source.Submission{
		SourceID: other.ID, Filename: "1-doc.gpg",
	}))

	require.NoError(t, store.PurgeSource(ctx, "fsid-1"))

	got, err := store.GetByFilesystemID(ctx, "fsid-2")
	require.NoError(t, err)
	assert.Equal(t, 1, got.InteractionCount)
	subs, _, err := store.Counts(ctx, "fsid-2")
	require.NoError(t, err)
	assert.Equal(t, 1, subs)
}
