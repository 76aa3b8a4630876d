package jsr

import (
	"github.com/Cyclone1070/toolbelt/internal/tool"
)

// Search modes understood by the index.
const (
	ModeFulltext = "fulltext"
	ModeExact    = "exact"
)

type SearchRequest struct {
	Term  string `mapstructure:"term"`
	Limit int    `mapstructure:"limit"`
	Mode  string `mapstructure:"mode"`
}

// query is the JSON document sent in the "q" form field.
type query struct {
	Term  string `json:"term"`
	Limit int    `json:"limit"`
	Mode  string `json:"mode"`
	Boost boost  `json:"boost"`
}

type boost struct {
	ID          float64 `json:"id"`
	Scope       float64 `json:"scope"`
	Name        float64 `json:"name"`
	Description float64 `json:"description"`
}

var defaultBoost = boost{ID: 3, Scope: 2, Name: 1, Description: 0.5}

var searchSchema = &tool.Schema{
	Type: tool.TypeObject,
	Properties: map[string]*tool.Schema{
		"term": {
			Type:        tool.TypeString,
			Description: "Search term to find in JSR",
			MinLength:   tool.Ptr(1),
		},
		"limit": {
			Type:        tool.TypeInteger,
			Description: "Maximum results to return",
			Minimum:     tool.Ptr(1.0),
			Default:     5,
		},
		"mode": {
			Type:        tool.TypeString,
			Description: "Search mode",
			Enum:        []string{ModeFulltext, ModeExact},
			Default:     ModeFulltext,
		},
	},
	Required: []string{"term"},
}
