package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gag-stock-bot/internal/common/errors"
)

func drivers(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	boltStore, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { boltStore.Close() })

	return map[string]Store{
		"file":   fileStore,
		"bolt":   boltStore,
		"memory": NewMemoryStore(),
	}
}

func TestLoadMissingCollectionInitializesEmpty(t *testing.T) {
	ctx := context.Background()
	for name, store := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			var users map[string]string
			require.NoError(t, store.Load(ctx, CollectionUsers, &users))
			assert.Nil(t, users)

			// the empty document is now persisted and decodes to an empty map
			require.NoError(t, store.Load(ctx, CollectionUsers, &users))
			assert.NotNil(t, users)
			assert.Empty(t, users)
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	ctx := context.Background()
	for name, store := range drivers(t) {
		t.Run(name, func(t *testing.T) {
			in := map[string][]string{"42": {"Carrot", "Kiwi"}}
			require.NoError(t, store.Save(ctx, CollectionVIP, in))

			var out map[string][]string
			require.NoError(t, store.Load(ctx, CollectionVIP, &out))
			assert.Equal(t, in, out)
			assert.NoError(t, store.Ping(ctx))
		})
	}
}

func TestFileStoreLayout(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save(context.Background(), CollectionConsole, map[string]bool{"enabled": true}))

	raw, err := os.ReadFile(filepath.Join(dir, "console.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"enabled": true}`, string(raw))
}

func TestFileStoreCorruptDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vip.json"), []byte("{not json"), 0o644))

	store, err := NewFileStore(dir)
	require.NoError(t, err)

	var out map[string][]string
	err = store.Load(context.Background(), CollectionVIP, &out)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeStorage))

	// the corrupt file is left for an operator to inspect
	raw, err := os.ReadFile(filepath.Join(dir, "vip.json"))
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw))
}
