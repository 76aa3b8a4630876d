package toolmanager

import (
	"context"

	"github.com/Cyclone1070/toolbelt/internal/tool"
)

// toolImpl defines the interface for individual tools.
type toolImpl interface {
	// Name returns the tool's identifier.
	Name() string

	// Declaration returns the tool's schema for the LLM.
	Declaration() tool.Declaration

	// Input returns a pointer to a fresh request struct (e.g., &file.ReadRequest{}).
	// Validated parameters are decoded into it with mapstructure.
	Input() any

	// Execute runs the tool with the decoded request and returns the payload text.
	Execute(ctx context.Context, input any) (string, error)
}
