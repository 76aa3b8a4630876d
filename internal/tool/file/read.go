package file

import (
	"context"
	"errors"

	"github.com/Cyclone1070/toolbelt/internal/tool"
)

// ReadFileTool returns the contents of one regular file.
type ReadFileTool struct {
	fileOps      fileReader
	pathResolver pathResolver
}

// NewReadFileTool creates a new ReadFileTool with injected dependencies.
func NewReadFileTool(fileOps fileReader, pathResolver pathResolver) *ReadFileTool {
	if fileOps == nil {
		panic("fileOps is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &ReadFileTool{
		fileOps:      fileOps,
		pathResolver: pathResolver,
	}
}

func (t *ReadFileTool) Name() string { return "read_file" }

func (t *ReadFileTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        t.Name(),
		Title:       "Read file…",
		Description: "Read the full text contents of a regular file.",
		Parameters:  readFileSchema,
	}
}

func (t *ReadFileTool) Input() any { return &ReadFileRequest{} }

func (t *ReadFileTool) Execute(ctx context.Context, input any) (string, error) {
	req, ok := input.(*ReadFileRequest)
	if !ok {
		return "", errors.New("read_file: unexpected input type")
	}
	return t.Run(ctx, req)
}

// Run reads the file at req.Path. The path is followed through symlinks, so a link to a
// regular file is readable while a link to anything else is rejected like a directory.
//
// Note: ctx is accepted for API consistency but not used - file I/O is synchronous.
func (t *ReadFileTool) Run(ctx context.Context, req *ReadFileRequest) (string, error) {
	abs := t.pathResolver.Abs(req.Path)

	info, err := t.fileOps.Stat(abs)
	if err != nil {
		return "", &StatError{Path: abs, Cause: err}
	}
	if !info.Mode().IsRegular() {
		return "", &NotAFileError{Path: abs}
	}

	content, err := t.fileOps.ReadFile(abs)
	if err != nil {
		return "", &ReadError{Path: abs, Cause: err}
	}
	return string(content), nil
}
