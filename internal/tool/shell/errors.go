package shell

import "fmt"

// SpawnError is returned when the shell process could not be run at all.
// A nonzero exit status is not an error.
type SpawnError struct {
	Command string
	Cause   error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("Failed to run command: %v", e.Cause)
}
func (e *SpawnError) Unwrap() error { return e.Cause }
func (e *SpawnError) IOError() bool { return true }

type ApprovalError struct {
	Command string
	Cause   error
}

func (e *ApprovalError) Error() string {
	return fmt.Sprintf("failed to get approval to run %q: %v", e.Command, e.Cause)
}
func (e *ApprovalError) Unwrap() error { return e.Cause }
