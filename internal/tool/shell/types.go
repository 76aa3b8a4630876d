package shell

import (
	"github.com/Cyclone1070/toolbelt/internal/tool"
)

type ShellRequest struct {
	Command string `mapstructure:"command"`
}

func (r *ShellRequest) String() string { return r.Command }

type ShellResponse struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exitCode"`
	Success  bool   `json:"success"`
	Declined bool   `json:"-"`
}

var shellSchema = &tool.Schema{
	Type: tool.TypeObject,
	Properties: map[string]*tool.Schema{
		"command": {
			Type:        tool.TypeString,
			Description: "The bash command to execute, including any arguments.",
			MinLength:   tool.Ptr(1),
		},
	},
	Required: []string{"command"},
}
