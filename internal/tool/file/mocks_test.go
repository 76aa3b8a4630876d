package file

import (
	"os"
	"path/filepath"
	"time"
)

// mockFileInfo implements os.FileInfo for testing
type mockFileInfo struct {
	name string
	size int64
	mode os.FileMode
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.mode.IsDir() }
func (m *mockFileInfo) Sys() any           { return nil }

type fileEntry struct {
	content []byte
	mode    os.FileMode
}

// mockFileSystem records every call so tests can assert nothing was touched.
type mockFileSystem struct {
	files           map[string]fileEntry
	special         map[string]os.FileMode
	links           map[string]string
	operationErrors map[string]error
	calls           []string
}

func newMockFileSystem() *mockFileSystem {
	return &mockFileSystem{
		files:           make(map[string]fileEntry),
		special:         make(map[string]os.FileMode),
		links:           make(map[string]string),
		operationErrors: make(map[string]error),
	}
}

func (m *mockFileSystem) createFile(path string, content []byte, mode os.FileMode) {
	m.files[path] = fileEntry{content: content, mode: mode}
}

func (m *mockFileSystem) createDir(path string) {
	m.special[path] = os.ModeDir | 0o755
}

func (m *mockFileSystem) Stat(path string) (os.FileInfo, error) {
	m.calls = append(m.calls, "Stat")
	if err := m.operationErrors["Stat"]; err != nil {
		return nil, err
	}
	for {
		target, ok := m.links[path]
		if !ok {
			break
		}
		path = target
	}
	return m.stat(path)
}

func (m *mockFileSystem) stat(path string) (os.FileInfo, error) {
	if mode, ok := m.special[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), mode: mode}, nil
	}
	if entry, ok := m.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(entry.content)), mode: entry.mode}, nil
	}
	return nil, os.ErrNotExist
}

// createSymlink makes path behave as a symlink to target for Stat, Lstat and EvalSymlinks.
func (m *mockFileSystem) createSymlink(path, target string) {
	m.links[path] = target
}

func (m *mockFileSystem) Lstat(path string) (os.FileInfo, error) {
	m.calls = append(m.calls, "Lstat")
	if _, ok := m.links[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), mode: os.ModeSymlink | 0o777}, nil
	}
	return m.stat(path)
}

func (m *mockFileSystem) EvalSymlinks(path string) (string, error) {
	m.calls = append(m.calls, "EvalSymlinks")
	for {
		target, ok := m.links[path]
		if !ok {
			return path, nil
		}
		path = target
	}
}

func (m *mockFileSystem) ReadFile(path string) ([]byte, error) {
	m.calls = append(m.calls, "ReadFile")
	if err := m.operationErrors["ReadFile"]; err != nil {
		return nil, err
	}
	entry, ok := m.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return entry.content, nil
}

func (m *mockFileSystem) EnsureDirs(path string, perm os.FileMode) error {
	m.calls = append(m.calls, "EnsureDirs")
	if err := m.operationErrors["EnsureDirs"]; err != nil {
		return err
	}
	for dir := path; dir != "/" && dir != "."; dir = filepath.Dir(dir) {
		if _, ok := m.special[dir]; !ok {
			m.special[dir] = os.ModeDir | perm
		}
	}
	return nil
}

func (m *mockFileSystem) WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	m.calls = append(m.calls, "WriteFileAtomic")
	if err := m.operationErrors["WriteFileAtomic"]; err != nil {
		return err
	}
	m.files[path] = fileEntry{content: content, mode: perm}
	return nil
}

// mockResolver resolves against a fixed base the same way path.Resolver does.
type mockResolver struct {
	base string
}

func (r mockResolver) Abs(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(r.base, p)
}
