package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	fs := NewOSFileSystem()

	t.Run("creates file with permissions", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")

		require.NoError(t, fs.WriteFileAtomic(path, []byte("hello"), 0o640))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(content))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	})

	t.Run("replaces existing content and leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o644))

		require.NoError(t, fs.WriteFileAtomic(path, []byte("new"), 0o644))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("missing parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.txt")

		err := fs.WriteFileAtomic(path, []byte("x"), 0o644)

		var tempErr *TempFileError
		require.True(t, errors.As(err, &tempErr), "expected TempFileError, got %v", err)
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

func TestEnsureDirs(t *testing.T) {
	fs := NewOSFileSystem()
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, fs.EnsureDirs(dir, 0o755))
	require.NoError(t, fs.EnsureDirs(dir, 0o755))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDirs_FileInTheWay(t *testing.T) {
	fs := NewOSFileSystem()
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	err := fs.EnsureDirs(filepath.Join(file, "sub"), 0o755)

	var mkdirErr *MkdirError
	assert.True(t, errors.As(err, &mkdirErr))
}

func TestReadDirSorted(t *testing.T) {
	fs := NewOSFileSystem()
	dir := t.TempDir()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	entries, err := fs.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestLstatAndEvalSymlinks(t *testing.T) {
	fs := NewOSFileSystem()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link.txt")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	require.NoError(t, os.Symlink(target, link))

	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	resolved, err := fs.EvalSymlinks(link)
	require.NoError(t, err)
	assert.Equal(t, target, resolved)
}
