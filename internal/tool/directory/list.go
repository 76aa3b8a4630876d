package directory

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Cyclone1070/toolbelt/internal/tool"
)

// ListDirectoryTool lists the direct children of one directory.
type ListDirectoryTool struct {
	fs           dirLister
	pathResolver pathResolver
}

// NewListDirectoryTool creates a new ListDirectoryTool with injected dependencies.
func NewListDirectoryTool(fs dirLister, pathResolver pathResolver) *ListDirectoryTool {
	if fs == nil {
		panic("fs is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &ListDirectoryTool{
		fs:           fs,
		pathResolver: pathResolver,
	}
}

func (t *ListDirectoryTool) Name() string { return "list_directory" }

func (t *ListDirectoryTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        t.Name(),
		Title:       "Read directory…",
		Description: "List the files and sub-directories directly inside a directory.",
		Parameters:  listDirectorySchema,
	}
}

func (t *ListDirectoryTool) Input() any { return &ListDirectoryRequest{} }

func (t *ListDirectoryTool) Execute(ctx context.Context, input any) (string, error) {
	req, ok := input.(*ListDirectoryRequest)
	if !ok {
		return "", errors.New("list_directory: unexpected input type")
	}
	entries, err := t.Run(ctx, req)
	if err != nil {
		return "", err
	}
	out, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Run returns one entry per direct child in the order the filesystem reports them.
func (t *ListDirectoryTool) Run(ctx context.Context, req *ListDirectoryRequest) ([]DirectoryEntry, error) {
	abs := t.pathResolver.Abs(req.Path)

	info, err := t.fs.Stat(abs)
	if err != nil {
		return nil, &StatError{Path: abs, Cause: err}
	}
	if !info.IsDir() {
		return nil, &NotADirectoryError{Path: abs}
	}

	children, err := t.fs.ReadDir(abs)
	if err != nil {
		return nil, &ListDirError{Path: abs, Cause: err}
	}

	entries := make([]DirectoryEntry, 0, len(children))
	for _, child := range children {
		entries = append(entries, DirectoryEntry{
			Name:        child.Name(),
			IsFile:      child.Type().IsRegular(),
			IsDirectory: child.IsDir(),
		})
	}
	return entries, nil
}
