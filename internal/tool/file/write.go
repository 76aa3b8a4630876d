package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Cyclone1070/toolbelt/internal/config"
	"github.com/Cyclone1070/toolbelt/internal/tool"
	"github.com/Cyclone1070/toolbelt/internal/tool/approval"
	"github.com/Cyclone1070/toolbelt/internal/tool/helper/content"
)

// previewLimit caps how much of the new content is shown in the approval prompt.
const previewLimit = 20

// WriteFileTool creates or replaces a file after operator confirmation.
type WriteFileTool struct {
	fileOps      fileWriter
	approver     approver
	config       *config.Config
	pathResolver pathResolver
}

// NewWriteFileTool creates a new WriteFileTool with injected dependencies.
func NewWriteFileTool(fileOps fileWriter, approver approver, cfg *config.Config, pathResolver pathResolver) *WriteFileTool {
	if fileOps == nil {
		panic("fileOps is required")
	}
	if approver == nil {
		panic("approver is required")
	}
	if cfg == nil {
		panic("cfg is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &WriteFileTool{
		fileOps:      fileOps,
		approver:     approver,
		config:       cfg,
		pathResolver: pathResolver,
	}
}

func (t *WriteFileTool) Name() string { return "write_file" }

func (t *WriteFileTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        t.Name(),
		Title:       "Write file…",
		Description: "Write text to a file, creating parent directories as needed. The operator is asked to confirm first.",
		Parameters:  writeFileSchema,
	}
}

func (t *WriteFileTool) Input() any { return &WriteFileRequest{} }

func (t *WriteFileTool) Execute(ctx context.Context, input any) (string, error) {
	req, ok := input.(*WriteFileRequest)
	if !ok {
		return "", errors.New("write_file: unexpected input type")
	}
	return t.Run(ctx, req)
}

// Run writes req.Content as the entire contents of req.Path. The existence check for a
// disabled overwrite happens before the operator is asked; nothing touches the
// filesystem unless the operator agrees.
func (t *WriteFileTool) Run(ctx context.Context, req *WriteFileRequest) (string, error) {
	abs := t.pathResolver.Abs(req.Path)

	// dest differs from abs when abs is a symlink: the write goes to the file it
	// points at and the link stays in place.
	dest := abs
	perm := os.FileMode(t.config.Tools.FilePerm)
	info, err := t.fileOps.Stat(abs)
	switch {
	case err == nil && info.Mode().IsRegular():
		if !req.Overwrite {
			return "", &AlreadyExistsError{Path: abs}
		}
		perm = info.Mode().Perm()
		if dest, err = t.linkTarget(abs); err != nil {
			return "", err
		}
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return "", &StatError{Path: abs, Cause: err}
	}

	ok, err := t.approver.Approve(ctx, approval.Request{
		Tool:    t.Name(),
		Summary: fmt.Sprintf("Write %d bytes to %s", len(req.Content), abs),
		Detail:  preview(req.Content),
	})
	if err != nil {
		return "", &ApprovalError{Path: abs, Cause: err}
	}
	if !ok {
		return approval.DeclinedMessage, nil
	}

	parentDir := filepath.Dir(dest)
	if err := t.fileOps.EnsureDirs(parentDir, os.FileMode(t.config.Tools.DirPerm)); err != nil {
		return "", &EnsureDirsError{Path: parentDir, Cause: err}
	}

	if err := t.fileOps.WriteFileAtomic(dest, []byte(req.Content), perm); err != nil {
		return "", &WriteError{Path: dest, Cause: err}
	}

	return "written " + abs, nil
}

// linkTarget returns the file abs finally points at, or abs itself when it is not a
// symlink.
func (t *WriteFileTool) linkTarget(abs string) (string, error) {
	info, err := t.fileOps.Lstat(abs)
	if err != nil {
		return "", &StatError{Path: abs, Cause: err}
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return abs, nil
	}
	target, err := t.fileOps.EvalSymlinks(abs)
	if err != nil {
		return "", &StatError{Path: abs, Cause: err}
	}
	return target, nil
}

// preview returns the first lines of content for the approval prompt.
func preview(text string) string {
	if text == "" {
		return "(empty file)"
	}
	head, truncated := content.Head(text, previewLimit)
	if truncated {
		return head + "…"
	}
	return head
}
