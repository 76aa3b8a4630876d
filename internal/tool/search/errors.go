package search

import "fmt"

// InvalidPatternError is returned when the pattern does not compile.
type InvalidPatternError struct {
	Pattern string
	Cause   error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("Invalid regex: %v", e.Cause)
}
func (e *InvalidPatternError) Unwrap() error      { return e.Cause }
func (e *InvalidPatternError) InvalidInput() bool { return true }

// InvalidPathError is returned when the search path is neither a file nor a directory.
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("Path %s is neither a file nor a directory", e.Path)
}
func (e *InvalidPathError) InvalidInput() bool { return true }

// StatError is returned when stat fails.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat search path %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }
func (e *StatError) IOError() bool { return true }

// ReadError is returned when a file selected for scanning cannot be read.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}
func (e *ReadError) Unwrap() error { return e.Cause }
func (e *ReadError) IOError() bool { return true }

// ListDirError is returned when a directory in the walk cannot be listed.
type ListDirError struct {
	Path  string
	Cause error
}

func (e *ListDirError) Error() string {
	return fmt.Sprintf("failed to list directory %s: %v", e.Path, e.Cause)
}
func (e *ListDirError) Unwrap() error { return e.Cause }
func (e *ListDirError) IOError() bool { return true }

type GitignoreError struct {
	Root  string
	Cause error
}

func (e *GitignoreError) Error() string {
	return fmt.Sprintf("failed to load .gitignore for %s: %v", e.Root, e.Cause)
}
func (e *GitignoreError) Unwrap() error { return e.Cause }

// MatchError is returned when matching a line gives up, typically on timeout.
type MatchError struct {
	Path  string
	Line  int
	Cause error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("failed to match %s:%d: %v", e.Path, e.Line, e.Cause)
}
func (e *MatchError) Unwrap() error { return e.Cause }
