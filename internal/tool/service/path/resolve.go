package path

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolver turns caller-supplied paths into absolute paths anchored at a fixed base
// directory. It performs no syscalls and enforces no containment: the tools may reach
// anywhere the process can.
type Resolver struct {
	baseDir string
}

// NewResolver creates a resolver anchored at baseDir. baseDir should already be absolute.
func NewResolver(baseDir string) *Resolver {
	return &Resolver{
		baseDir: filepath.Clean(baseDir),
	}
}

// NewWorkingDirResolver creates a resolver anchored at the process working directory as it
// is right now. Later changes to the working directory do not affect it.
func NewWorkingDirResolver() (*Resolver, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, &WorkingDirError{Dir: ".", Cause: err}
	}
	return NewResolver(wd), nil
}

// CanonicaliseRoot makes dir absolute and resolves symlinks.
// Returns an error if the path doesn't exist or isn't a directory.
func CanonicaliseRoot(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", &WorkingDirError{Dir: dir, Cause: err}
	}

	resolved, err := filepath.EvalSymlinks(absDir)
	if err != nil {
		return "", &WorkingDirError{Dir: absDir, Cause: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &WorkingDirError{Dir: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", &WorkingDirError{Dir: resolved, Cause: fmt.Errorf("%w: %s", ErrNotADirectory, resolved)}
	}
	return resolved, nil
}

// Base returns the directory relative paths are resolved against.
func (r *Resolver) Base() string {
	return r.baseDir
}

// Abs resolves path to an absolute, cleaned path. Absolute input is only cleaned.
func (r *Resolver) Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(r.baseDir, path)
}
