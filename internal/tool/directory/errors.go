package directory

import (
	"fmt"
)

// -- Error Types --

// NotADirectoryError is returned when the listing root is not a directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("The path %q is not a directory.", e.Path)
}
func (e *NotADirectoryError) InvalidInput() bool { return true }

type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }
func (e *StatError) IOError() bool { return true }

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
