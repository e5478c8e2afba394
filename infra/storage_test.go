package infra

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFilename(t *testing.T) {
	pattern := regexp.MustCompile(`^superhero-\d+-\d+\.png$`)

	name := GenerateFilename("portrait.png")
	assert.True(t, pattern.MatchString(name), "unexpected filename %q", name)

	// Extension is preserved, original base name is not.
	name = GenerateFilename("my vacation photo.jpeg")
	assert.True(t, strings.HasSuffix(name, ".jpeg"))
	assert.NotContains(t, name, "vacation")

	// No extension stays extension-less.
	name = GenerateFilename("rawblob")
	assert.NotContains(t, name, ".")

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := GenerateFilename("a.png")
		assert.False(t, seen[n], "duplicate filename %q", n)
		seen[n] = true
	}
}

func TestLocalStorageSaveAndRemove(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)

	path, err := storage.Save(context.Background(), "superhero-1-1.png", "image/png", strings.NewReader("fake-bytes"), 10)
	require.NoError(t, err)
	assert.Equal(t, "/uploads/superhero-1-1.png", path)

	data, err := os.ReadFile(filepath.Join(dir, "superhero-1-1.png"))
	require.NoError(t, err)
	assert.Equal(t, "fake-bytes", string(data))

	require.NoError(t, storage.Remove(context.Background(), "superhero-1-1.png"))
	_, err = os.Stat(filepath.Join(dir, "superhero-1-1.png"))
	assert.True(t, os.IsNotExist(err))

	// Removing a missing file reports an error; callers treat it as
	// best-effort cleanup.
	assert.Error(t, storage.Remove(context.Background(), "superhero-1-1.png"))
}

func TestNewLocalStorageCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	storage, err := NewLocalStorage(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, storage.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
