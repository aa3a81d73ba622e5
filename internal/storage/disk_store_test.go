package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSave(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	size, err := store.Save("file.png", strings.NewReader("Hello, World!"))
	require.NoError(t, err)
	assert.Equal(t, int64(13), size)

	data, err := os.ReadFile(filepath.Join(store.basePath, "file.png"))
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", string(data))
}

func TestDiskStoreSaveCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewDiskStore(base)

	_, err := store.Save("file.png", strings.NewReader("data"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(base, "file.png"))
	assert.NoError(t, err)
}

func TestDiskStoreSaveLeavesNoTempFiles(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	_, err := store.Save("file.png", strings.NewReader("data"))
	require.NoError(t, err)

	entries, err := os.ReadDir(store.basePath)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "file.png", entries[0].Name())
}

func TestDiskStoreRemove(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	_, err := store.Save("file.png", strings.NewReader("data"))
	require.NoError(t, err)

	require.NoError(t, store.Remove("file.png"))

	_, err = os.Stat(filepath.Join(store.basePath, "file.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskStoreRemoveMissing(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	assert.ErrorIs(t, store.Remove("nothing.png"), ErrFileNotFound)
}
