package shell

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Cyclone1070/toolbelt/internal/config"
	"github.com/Cyclone1070/toolbelt/internal/tool"
	"github.com/Cyclone1070/toolbelt/internal/tool/approval"
)

// ShellTool executes commands on the local machine after operator confirmation.
type ShellTool struct {
	commandExecutor commandExecutor
	approver        approver
	config          *config.Config
	workingDir      workingDir
}

// NewShellTool creates a new ShellTool with injected dependencies.
func NewShellTool(commandExecutor commandExecutor, approver approver, cfg *config.Config, workingDir workingDir) *ShellTool {
	if commandExecutor == nil {
		panic("commandExecutor is required")
	}
	if approver == nil {
		panic("approver is required")
	}
	if cfg == nil {
		panic("cfg is required")
	}
	if workingDir == nil {
		panic("workingDir is required")
	}
	return &ShellTool{
		commandExecutor: commandExecutor,
		approver:        approver,
		config:          cfg,
		workingDir:      workingDir,
	}
}

func (t *ShellTool) Name() string { return "run_shell" }

func (t *ShellTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        t.Name(),
		Title:       "Run Bash Command…",
		Description: "Execute an arbitrary shell command and return its stdout, stderr and exit code. The operator is asked to confirm first.",
		Parameters:  shellSchema,
	}
}

func (t *ShellTool) Input() any { return &ShellRequest{} }

func (t *ShellTool) Execute(ctx context.Context, input any) (string, error) {
	req, ok := input.(*ShellRequest)
	if !ok {
		return "", errors.New("run_shell: unexpected input type")
	}
	resp, err := t.Run(ctx, req)
	if err != nil {
		return "", err
	}
	if resp.Declined {
		return approval.DeclinedMessage, nil
	}
	out, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Run asks the operator, then runs req.Command through the configured shell in the
// working directory. When the operator declines, nothing is spawned and the response
// only has Declined set.
func (t *ShellTool) Run(ctx context.Context, req *ShellRequest) (*ShellResponse, error) {
	dir := t.workingDir.Base()

	ok, err := t.approver.Approve(ctx, approval.Request{
		Tool:    t.Name(),
		Summary: "Run in " + dir,
		Detail:  req.Command,
	})
	if err != nil {
		return nil, &ApprovalError{Command: req.Command, Cause: err}
	}
	if !ok {
		return &ShellResponse{Declined: true}, nil
	}

	argv := make([]string, 0, len(t.config.Tools.ShellArgs)+2)
	argv = append(argv, t.config.Tools.Shell)
	argv = append(argv, t.config.Tools.ShellArgs...)
	argv = append(argv, req.Command)

	res, err := t.commandExecutor.Run(ctx, argv, dir)
	if err != nil {
		return nil, &SpawnError{Command: req.Command, Cause: err}
	}

	return &ShellResponse{
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		ExitCode: res.ExitCode,
		Success:  res.Success(),
	}, nil
}
