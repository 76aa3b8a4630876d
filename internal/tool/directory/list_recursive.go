package directory

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/toolbelt/internal/tool"
	"github.com/Cyclone1070/toolbelt/internal/tool/service/git"
)

// ListDirectoryRecursiveTool walks a directory tree and lists every entry it visits.
type ListDirectoryRecursiveTool struct {
	fs           dirLister
	ignoreLoader ignoreLoader
	pathResolver pathResolver
}

// NewListDirectoryRecursiveTool creates a new ListDirectoryRecursiveTool with injected dependencies.
func NewListDirectoryRecursiveTool(fs dirLister, ignoreLoader ignoreLoader, pathResolver pathResolver) *ListDirectoryRecursiveTool {
	if fs == nil {
		panic("fs is required")
	}
	if ignoreLoader == nil {
		panic("ignoreLoader is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &ListDirectoryRecursiveTool{
		fs:           fs,
		ignoreLoader: ignoreLoader,
		pathResolver: pathResolver,
	}
}

func (t *ListDirectoryRecursiveTool) Name() string { return "list_directory_recursive" }

func (t *ListDirectoryRecursiveTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        t.Name(),
		Title:       "Read directory recursively…",
		Description: "Recursively list the files and sub-directories of a directory, returning full paths. Errors if the path is not a directory.",
		Parameters:  listDirectoryRecursiveSchema,
	}
}

func (t *ListDirectoryRecursiveTool) Input() any { return &ListDirectoryRecursiveRequest{} }

func (t *ListDirectoryRecursiveTool) Execute(ctx context.Context, input any) (string, error) {
	req, ok := input.(*ListDirectoryRecursiveRequest)
	if !ok {
		return "", errors.New("list_directory_recursive: unexpected input type")
	}
	entries, err := t.Run(ctx, req)
	if err != nil {
		return "", err
	}
	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Run walks the tree under req.Path in pre-order. The root is depth 0 and its children
// depth 1; with Depth > 0, directories at that depth are listed but not entered.
// Hidden and gitignored entries are pruned with everything below them. Symlinks are
// listed but never followed.
func (t *ListDirectoryRecursiveTool) Run(ctx context.Context, req *ListDirectoryRecursiveRequest) ([]TreeEntry, error) {
	root := t.pathResolver.Abs(req.Path)

	info, err := t.fs.Stat(root)
	if err != nil {
		return nil, &StatError{Path: root, Cause: err}
	}
	if !info.IsDir() {
		return nil, &NotADirectoryError{Path: root}
	}

	var matcher git.Matcher = &git.NoOpMatcher{}
	if req.RespectGitignore {
		matcher, err = t.ignoreLoader.Load(root)
		if err != nil {
			return nil, &GitignoreError{Root: root, Cause: err}
		}
	}

	w := &walker{
		fs:            t.fs,
		root:          root,
		maxDepth:      req.Depth,
		includeHidden: req.IncludeHidden,
		matcher:       matcher,
		entries:       []TreeEntry{},
	}
	if err := w.walk(ctx, root, 0); err != nil {
		return nil, err
	}
	return w.entries, nil
}

type walker struct {
	fs            dirLister
	root          string
	maxDepth      int
	includeHidden bool
	matcher       git.Matcher
	entries       []TreeEntry
}

func (w *walker) walk(ctx context.Context, dir string, depth int) error {
	if w.maxDepth > 0 && depth >= w.maxDepth {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	children, err := w.fs.ReadDir(dir)
	if err != nil {
		return &ListDirError{Path: dir, Cause: err}
	}

	for _, child := range children {
		name := child.Name()
		if !w.includeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		full := filepath.Join(dir, name)
		rel, err := filepath.Rel(w.root, full)
		if err != nil {
			return err
		}
		if w.matcher.ShouldIgnore(rel, child.IsDir()) {
			continue
		}

		w.entries = append(w.entries, TreeEntry{
			FullPath:    full,
			IsFile:      child.Type().IsRegular(),
			IsDirectory: child.IsDir(),
		})
		if child.IsDir() {
			if err := w.walk(ctx, full, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
