package search

import (
	"os"

	"github.com/Cyclone1070/toolbelt/internal/tool/service/git"
)

// pathResolver turns caller paths into absolute paths.
type pathResolver interface {
	Abs(path string) string
}

// fileSystem defines the minimal filesystem interface needed by the search engine.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]os.DirEntry, error)
}

// ignoreLoader builds a gitignore matcher rooted at a directory.
type ignoreLoader interface {
	Load(root string) (git.Matcher, error)
}
