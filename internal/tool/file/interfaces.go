package file

import (
	"context"
	"os"

	"github.com/Cyclone1070/toolbelt/internal/tool/approval"
)

// pathResolver turns caller paths into absolute paths.
type pathResolver interface {
	Abs(path string) string
}

// fileReader defines the minimal filesystem operations needed for reading files.
type fileReader interface {
	Stat(path string) (os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
}

// fileWriter defines the minimal filesystem operations needed for writing files.
type fileWriter interface {
	Stat(path string) (os.FileInfo, error)
	Lstat(path string) (os.FileInfo, error)
	EvalSymlinks(path string) (string, error)
	WriteFileAtomic(path string, content []byte, perm os.FileMode) error
	EnsureDirs(path string, perm os.FileMode) error
}

// approver confirms a mutating action with the operator.
type approver interface {
	Approve(ctx context.Context, req approval.Request) (bool, error)
}
