package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/toolbelt/internal/tool/helper/content"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// GitignoreReadError is returned when .gitignore exists but cannot be read.
type GitignoreReadError struct {
	Path  string
	Cause error
}

func (e *GitignoreReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}
func (e *GitignoreReadError) Unwrap() error { return e.Cause }
func (e *GitignoreReadError) IOError() bool { return true }

// fileSystem defines the minimal filesystem interface needed to load a .gitignore.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// IgnoreMatcher implements gitignore pattern matching using go-git's gitignore matcher.
type IgnoreMatcher struct {
	matcher gitignore.Matcher
}

// NewIgnoreMatcher loads the .gitignore directly under root.
// A missing .gitignore yields a matcher that never ignores.
func NewIgnoreMatcher(root string, fs fileSystem) (*IgnoreMatcher, error) {
	if root == "" {
		panic("root is required")
	}
	if fs == nil {
		panic("fs is required")
	}
	gitignorePath := filepath.Join(root, ".gitignore")

	if _, err := fs.Stat(gitignorePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &IgnoreMatcher{}, nil
		}
		return nil, &GitignoreReadError{Path: gitignorePath, Cause: err}
	}

	data, err := fs.ReadFile(gitignorePath)
	if err != nil {
		return nil, &GitignoreReadError{Path: gitignorePath, Cause: err}
	}

	var patterns []gitignore.Pattern
	for _, line := range content.SplitLines(string(data)) {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	if len(patterns) == 0 {
		return &IgnoreMatcher{}, nil
	}

	return &IgnoreMatcher{matcher: gitignore.NewMatcher(patterns)}, nil
}

// ShouldIgnore checks if a path relative to the matcher's root matches any pattern.
// Returns false if no .gitignore was loaded.
func (m *IgnoreMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	if m.matcher == nil {
		return false
	}
	segments := splitPath(relativePath)
	if len(segments) == 0 {
		return false
	}
	return m.matcher.Match(segments, isDir)
}

// splitPath splits a path into segments for gitignore matching.
// It normalizes path separators and filters out empty and "." segments.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}

	parts := strings.Split(filepath.ToSlash(path), "/")
	var segments []string
	for _, part := range parts {
		if part != "" && part != "." {
			segments = append(segments, part)
		}
	}

	return segments
}

// NoOpMatcher is a gitignore matcher that never ignores any files.
type NoOpMatcher struct{}

// ShouldIgnore always returns false for NoOpMatcher.
func (m *NoOpMatcher) ShouldIgnore(relativePath string, isDir bool) bool {
	return false
}

// Matcher reports whether a path relative to its root is ignored.
type Matcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}

// Loader builds matchers for arbitrary roots on demand.
type Loader struct {
	fs fileSystem
}

// NewLoader creates a Loader reading .gitignore files through fs.
func NewLoader(fs fileSystem) *Loader {
	if fs == nil {
		panic("fs is required")
	}
	return &Loader{fs: fs}
}

// Load returns a matcher for the .gitignore directly under root.
func (l *Loader) Load(root string) (Matcher, error) {
	m, err := NewIgnoreMatcher(root, l.fs)
	if err != nil {
		return nil, err
	}
	return m, nil
}
