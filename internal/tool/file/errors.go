package file

import (
	"errors"
	"fmt"
)

// -- Error Types --

// NotAFileError is returned when the target exists but is not a regular file.
type NotAFileError struct {
	Path string
}

func (e *NotAFileError) Error() string {
	return fmt.Sprintf("The path %q is not a regular file.", e.Path)
}
func (e *NotAFileError) InvalidInput() bool { return true }

// AlreadyExistsError is returned when overwrite is disabled and the target file exists.
type AlreadyExistsError struct {
	Path string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("The file %q already exists and overwrite is disabled.", e.Path)
}
func (e *AlreadyExistsError) Unwrap() error      { return ErrFileExists }
func (e *AlreadyExistsError) InvalidInput() bool { return true }

type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }
func (e *StatError) IOError() bool { return true }

type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}
func (e *ReadError) Unwrap() error { return e.Cause }
func (e *ReadError) IOError() bool { return true }

type EnsureDirsError struct {
	Path  string
	Cause error
}

func (e *EnsureDirsError) Error() string {
	return fmt.Sprintf("failed to create directories %s: %v", e.Path, e.Cause)
}
func (e *EnsureDirsError) Unwrap() error { return e.Cause }
func (e *EnsureDirsError) IOError() bool { return true }

type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}
func (e *WriteError) Unwrap() error { return e.Cause }
func (e *WriteError) IOError() bool { return true }

type ApprovalError struct {
	Path  string
	Cause error
}

func (e *ApprovalError) Error() string {
	return fmt.Sprintf("failed to get approval to write %s: %v", e.Path, e.Cause)
}
func (e *ApprovalError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrFileExists = errors.New("file already exists")
)
