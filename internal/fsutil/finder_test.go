package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.hcl", "a.yaml", "nested/c.hcl", "nested/deeper/d.yml", "notes.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
	}

	t.Run("directory is searched recursively", func(t *testing.T) {
		files, err := FindFiles([]string{dir}, ".hcl")
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "b.hcl"),
			filepath.Join(dir, "nested", "c.hcl"),
		}, files)
	})

	t.Run("multiple extensions", func(t *testing.T) {
		files, err := FindFiles([]string{dir}, ".yaml", ".yml")
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("single file and duplicates", func(t *testing.T) {
		file := filepath.Join(dir, "b.hcl")
		files, err := FindFiles([]string{file, dir, file}, ".hcl")
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("file with other extension is ignored", func(t *testing.T) {
		files, err := FindFiles([]string{filepath.Join(dir, "notes.txt")}, ".hcl")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("missing path is skipped", func(t *testing.T) {
		files, err := FindFiles([]string{filepath.Join(dir, "missing")}, ".hcl")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("no extension panics", func(t *testing.T) {
		assert.Panics(t, func() { _, _ = FindFiles([]string{dir}) })
	})
}

func TestHasExtension(t *testing.T) {
	assert.True(t, HasExtension("dir/tasks.yml", ".yaml", ".yml"))
	assert.True(t, HasExtension("tasks.hcl", ".hcl"))
	assert.False(t, HasExtension("tasks.hcl.txt", ".hcl"))
	assert.False(t, HasExtension("tasks.hcl"))
}
