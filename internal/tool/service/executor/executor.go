package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result represents the outcome of a command that ran.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// OSCommandExecutor implements command execution using os/exec for real system commands.
type OSCommandExecutor struct{}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() *OSCommandExecutor {
	return &OSCommandExecutor{}
}

// Run executes command in dir and waits for it, buffering stdout and stderr fully.
// A nonzero exit status is reported through Result.ExitCode with a nil error; an error
// means the command could not be started or was cut short by ctx.
func (f *OSCommandExecutor) Run(ctx context.Context, command []string, dir string) (*Result, error) {
	if len(command) == 0 {
		return nil, ErrEmptyCommand
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = dir
	cmd.Stdin = nil
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: command[0], Cause: err, Stage: "start"}
	}

	err := cmd.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	result := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, &CommandError{Cmd: command[0], Cause: err, Stage: "execution"}
		}
		result.ExitCode = exitErr.ExitCode()
	}
	return result, nil
}
