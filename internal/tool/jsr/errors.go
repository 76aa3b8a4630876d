package jsr

import "fmt"

// RegistryUnavailableError is returned when the search index cannot be reached or
// answers with a non-2xx status.
type RegistryUnavailableError struct {
	Status int // 0 when no response was received
	Cause  error
}

func (e *RegistryUnavailableError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("Failed to search JSR: JSR search API error: %d", e.Status)
	}
	return fmt.Sprintf("Failed to search JSR: %v", e.Cause)
}
func (e *RegistryUnavailableError) Unwrap() error { return e.Cause }
func (e *RegistryUnavailableError) IOError() bool { return true }

// DecodeError is returned when the index answers with something that is not JSON.
type DecodeError struct {
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("Failed to search JSR: invalid response: %v", e.Cause)
}
func (e *DecodeError) Unwrap() error { return e.Cause }
