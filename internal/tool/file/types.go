package file

import (
	"github.com/Cyclone1070/toolbelt/internal/tool"
)

// -- Read File --

// ReadFileRequest carries the single path parameter of read_file.
type ReadFileRequest struct {
	Path string `mapstructure:"input"`
}

func (r *ReadFileRequest) String() string { return r.Path }

var readFileSchema = &tool.Schema{
	Type:        tool.TypeString,
	Description: "Path of the file to read, absolute or relative to the working directory.",
	MinLength:   tool.Ptr(1),
}

// -- Write File --

type WriteFileRequest struct {
	Path      string `mapstructure:"path"`
	Content   string `mapstructure:"content"`
	Overwrite bool   `mapstructure:"overwrite"`
}

func (r *WriteFileRequest) String() string { return r.Path }

var writeFileSchema = &tool.Schema{
	Type: tool.TypeObject,
	Properties: map[string]*tool.Schema{
		"path": {
			Type:        tool.TypeString,
			Description: "Path of the file to write, absolute or relative to the working directory.",
			MinLength:   tool.Ptr(1),
		},
		"content": {
			Type:        tool.TypeString,
			Description: "The full new contents of the file.",
		},
		"overwrite": {
			Type:        tool.TypeBoolean,
			Description: "Replace the file if it already exists. When false, writing to an existing file fails.",
			Default:     true,
		},
	},
	Required: []string{"path", "content"},
}
