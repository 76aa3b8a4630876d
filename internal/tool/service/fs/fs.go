package fs

import (
	"os"
	"path/filepath"
)

// OSFileSystem implements filesystem operations using the local OS filesystem primitives.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OSFileSystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// Stat returns file info for a path (follows symlinks).
func (fs *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info for a path without following symlinks.
func (fs *OSFileSystem) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// EvalSymlinks returns path with every symlink resolved.
func (fs *OSFileSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// UserHomeDir returns the current user's home directory.
func (fs *OSFileSystem) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// ReadFile reads the whole file.
func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ReadDir lists the entries of a directory, sorted by name.
func (fs *OSFileSystem) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// WriteFileAtomic writes content to a file atomically using temp file + rename pattern.
// If the process crashes mid-write, the original file remains intact.
// The temp file is created in the same directory as the target so the rename stays on one filesystem.
func (fs *OSFileSystem) WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return &TempFileError{Dir: dir, Cause: err}
	}

	tmpPath := tmpFile.Name()
	needsCleanup := true

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
		}
		if needsCleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(content); err != nil {
		return &TempWriteError{Path: tmpPath, Cause: err}
	}

	if err := tmpFile.Sync(); err != nil {
		return &TempSyncError{Path: tmpPath, Cause: err}
	}

	// Close before rename (required on some systems)
	if err := tmpFile.Close(); err != nil {
		tmpFile = nil
		return &TempCloseError{Path: tmpPath, Cause: err}
	}
	tmpFile = nil

	// CreateTemp uses 0600; set the final mode before the file becomes visible.
	if err := os.Chmod(tmpPath, perm); err != nil {
		return &ChmodError{Path: tmpPath, Mode: perm, Cause: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return &RenameError{Old: tmpPath, New: path, Cause: err}
	}
	needsCleanup = false

	return nil
}

// EnsureDirs creates a directory and its parents if they don't exist.
func (fs *OSFileSystem) EnsureDirs(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return &MkdirError{Path: path, Cause: err}
	}
	return nil
}
