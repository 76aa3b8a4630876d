package search

import (
	"github.com/Cyclone1070/toolbelt/internal/tool"
)

type GrepRequest struct {
	Pattern          string `mapstructure:"pattern"`
	Path             string `mapstructure:"path"`
	Flags            string `mapstructure:"flags"`
	Recursive        bool   `mapstructure:"recursive"`
	CountOnly        bool   `mapstructure:"countOnly"`
	RespectGitignore bool   `mapstructure:"respectGitignore"`
}

func (r *GrepRequest) String() string { return r.Pattern + " " + r.Path }

// MatchRecord is one line that contains a match.
type MatchRecord struct {
	File       string `json:"file"`
	LineNumber int    `json:"lineNumber"`
	LineText   string `json:"lineText"`
}

type GrepResponse struct {
	Matches      []MatchRecord
	TotalMatches int
	// FilesScanned is zero when a directory was given without Recursive.
	FilesScanned int
}

type grepOutput struct {
	Matches      []MatchRecord `json:"matches"`
	TotalMatches int           `json:"totalMatches"`
}

type grepCountOutput struct {
	TotalMatches int `json:"totalMatches"`
}

var grepSchema = &tool.Schema{
	Type: tool.TypeObject,
	Properties: map[string]*tool.Schema{
		"pattern": {
			Type:        tool.TypeString,
			Description: "Regular expression tested against each line.",
			MinLength:   tool.Ptr(1),
		},
		"path": {
			Type:        tool.TypeString,
			Description: "File or directory to search.",
			MinLength:   tool.Ptr(1),
		},
		"flags": {
			Type:        tool.TypeString,
			Description: "Regex flags: any of i (ignore case), m (multi-line anchors), g. Other letters are ignored.",
			Default:     "",
		},
		"recursive": {
			Type:        tool.TypeBoolean,
			Description: "Search every file under a directory. Without it a directory yields no matches.",
			Default:     false,
		},
		"countOnly": {
			Type:        tool.TypeBoolean,
			Description: "Return only the total number of matching lines.",
			Default:     false,
		},
		"respectGitignore": {
			Type:        tool.TypeBoolean,
			Description: "Skip files matched by the .gitignore at the searched directory.",
			Default:     false,
		},
	},
	Required: []string{"pattern", "path"},
}
