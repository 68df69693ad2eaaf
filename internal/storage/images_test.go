package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockwise/inventory-api/internal/models"
)

func TestSave_KeepsExtension(t *testing.T) {
	store := NewImageStore(t.TempDir())

	name, err := store.Save(strings.NewReader("png-bytes"), "photo.PNG")
	require.NoError(t, err)

	assert.Equal(t, ".PNG", filepath.Ext(name))
	assert.NotEqual(t, "photo.PNG", name, "stored name must not reuse the client name")

	content, err := os.ReadFile(filepath.Join(store.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestSave_NoExtension(t *testing.T) {
	store := NewImageStore(t.TempDir())

	name, err := store.Save(strings.NewReader("raw"), "photo")
	require.NoError(t, err)
	assert.NotContains(t, name, ".")
}

func TestSave_UniqueNames(t *testing.T) {
	store := NewImageStore(t.TempDir())

	first, err := store.Save(strings.NewReader("a"), "same.jpg")
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("b"), "same.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewImageStore(dir)

	name, err := store.Save(strings.NewReader("x"), "a.gif")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, name))
	assert.NoError(t, err)
}

func TestRemove_SkipsSentinel(t *testing.T) {
	dir := t.TempDir()
	store := NewImageStore(dir)

	// A file that happens to carry the sentinel name must survive.
	require.NoError(t, os.WriteFile(filepath.Join(dir, models.NoImage), []byte("placeholder"), 0o644))

	store.Remove(models.NoImage)
	store.Remove("")

	_, err := os.Stat(filepath.Join(dir, models.NoImage))
	assert.NoError(t, err)
}

func TestRemove_MissingFileIsNoOp(t *testing.T) {
	store := NewImageStore(t.TempDir())

	// Must not panic or leave the directory in a bad state.
	store.Remove("never-existed.jpg")
}

func TestRemove_DeletesFile(t *testing.T) {
	store := NewImageStore(t.TempDir())

	name, err := store.Save(strings.NewReader("x"), "a.jpg")
	require.NoError(t, err)

	store.Remove(name)

	_, err = os.Stat(filepath.Join(store.Dir(), name))
	assert.True(t, os.IsNotExist(err))
}
