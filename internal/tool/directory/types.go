package directory

import (
	"github.com/Cyclone1070/toolbelt/internal/tool"
)

// -- List Directory --

type ListDirectoryRequest struct {
	Path string `mapstructure:"input"`
}

func (r *ListDirectoryRequest) String() string { return r.Path }

// DirectoryEntry is one direct child of a listed directory.
type DirectoryEntry struct {
	Name        string `json:"name"`
	IsFile      bool   `json:"isFile"`
	IsDirectory bool   `json:"isDirectory"`
}

var listDirectorySchema = &tool.Schema{
	Type:        tool.TypeString,
	Description: "Directory to list, absolute or relative to the working directory.",
	MinLength:   tool.Ptr(1),
}

// -- List Directory Recursive --

type ListDirectoryRecursiveRequest struct {
	Path             string `mapstructure:"path"`
	Depth            int    `mapstructure:"depth"`
	IncludeHidden    bool   `mapstructure:"includeHidden"`
	RespectGitignore bool   `mapstructure:"respectGitignore"`
}

func (r *ListDirectoryRecursiveRequest) String() string { return r.Path }

// TreeEntry is one entry found while walking a directory tree.
type TreeEntry struct {
	FullPath    string `json:"fullPath"`
	IsFile      bool   `json:"isFile"`
	IsDirectory bool   `json:"isDirectory"`
}

var listDirectoryRecursiveSchema = &tool.Schema{
	Type: tool.TypeObject,
	Properties: map[string]*tool.Schema{
		"path": {
			Type:        tool.TypeString,
			Description: "Directory to walk, absolute or relative to the working directory.",
			MinLength:   tool.Ptr(1),
		},
		"depth": {
			Type:        tool.TypeInteger,
			Description: "Maximum number of levels below the root to list. 0 means unlimited.",
			Minimum:     tool.Ptr(0.0),
			Default:     0,
		},
		"includeHidden": {
			Type:        tool.TypeBoolean,
			Description: "Include entries whose name starts with a dot, and walk into hidden directories.",
			Default:     false,
		},
		"respectGitignore": {
			Type:        tool.TypeBoolean,
			Description: "Skip entries matched by the .gitignore at the root of the walk.",
			Default:     false,
		},
	},
	Required: []string{"path"},
}
