package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "store.json"))
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestFileStore(t)

	require.NoError(t, store.Set("greeting", "hello"))

	val, err := store.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello", val)

	require.NoError(t, store.Set("greeting", "goodbye"))
	val, err = store.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, "goodbye", val)
}

func TestFileStoreMissingKey(t *testing.T) {
	store := newTestFileStore(t)

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreRemove(t *testing.T) {
	store := newTestFileStore(t)

	require.NoError(t, store.Set("a", "1"))
	require.NoError(t, store.Remove("a"))
	_, err := store.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)

	// Removing an absent key is a no-op, not an error.
	assert.NoError(t, store.Remove("never-set"))
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")

	first := NewFileStore(path)
	require.NoError(t, first.Set("a", "1"))

	second := NewFileStore(path)
	val, err := second.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", val)
}

func TestFileStoreCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path)
	_, err := store.Get("a")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set("a", "1"))
	val, err := store.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "1", val)
}
