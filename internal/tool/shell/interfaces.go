package shell

import (
	"context"

	"github.com/Cyclone1070/toolbelt/internal/tool/approval"
	"github.com/Cyclone1070/toolbelt/internal/tool/service/executor"
)

// workingDir provides the directory commands run in.
type workingDir interface {
	Base() string
}

// commandExecutor runs a program to completion.
type commandExecutor interface {
	Run(ctx context.Context, command []string, dir string) (*executor.Result, error)
}

// approver confirms a mutating action with the operator.
type approver interface {
	Approve(ctx context.Context, req approval.Request) (bool, error)
}
