package directory

import (
	"os"

	"github.com/Cyclone1070/toolbelt/internal/tool/service/git"
)

// pathResolver turns caller paths into absolute paths.
type pathResolver interface {
	Abs(path string) string
}

// dirLister defines the filesystem operations needed for listing directories.
type dirLister interface {
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.DirEntry, error)
}

// ignoreLoader builds a gitignore matcher rooted at a directory.
type ignoreLoader interface {
	Load(root string) (git.Matcher, error)
}
