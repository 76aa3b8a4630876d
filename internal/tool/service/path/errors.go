package path

import (
	"errors"
	"fmt"
)

// -- Error Types --

// WorkingDirError is returned when the base directory cannot be determined or is invalid.
type WorkingDirError struct {
	Dir   string
	Cause error
}

func (e *WorkingDirError) Error() string {
	return fmt.Sprintf("invalid working directory %s: %v", e.Dir, e.Cause)
}
func (e *WorkingDirError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrNotADirectory = errors.New("not a directory")
)
