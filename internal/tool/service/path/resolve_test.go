package path

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAbs(t *testing.T) {
	resolver := NewResolver("/workspace")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "relative path", input: "src/main.go", expected: "/workspace/src/main.go"},
		{name: "absolute path", input: "/workspace/src/main.go", expected: "/workspace/src/main.go"},
		{name: "path with dots", input: "src/../src/main.go", expected: "/workspace/src/main.go"},
		{name: "base itself", input: ".", expected: "/workspace"},
		{name: "parent escape is allowed", input: "../../etc/passwd", expected: "/etc/passwd"},
		{name: "absolute path elsewhere", input: "/etc//passwd", expected: "/etc/passwd"},
		{name: "absolute path with dots", input: "/tmp/a/../b", expected: "/tmp/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolver.Abs(tt.input); got != tt.expected {
				t.Errorf("expected abs %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestNewResolverCleansBase(t *testing.T) {
	resolver := NewResolver("/workspace/sub/../")
	if resolver.Base() != "/workspace" {
		t.Errorf("expected base %q, got %q", "/workspace", resolver.Base())
	}
}

func TestNewWorkingDirResolver_CapturesCwdOnce(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	t.Chdir(first)

	resolver, err := NewWorkingDirResolver()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}

	t.Chdir(second)

	if got := resolver.Abs("file.txt"); got != filepath.Join(wd, "file.txt") {
		t.Errorf("expected path under original working directory, got %q", got)
	}
}

func TestCanonicaliseRoot(t *testing.T) {
	resolvedTmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve tmp dir: %v", err)
	}

	t.Run("valid directory", func(t *testing.T) {
		got, err := CanonicaliseRoot(resolvedTmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != resolvedTmpDir {
			t.Errorf("expected %q, got %q", resolvedTmpDir, got)
		}
	})

	t.Run("non-existent path", func(t *testing.T) {
		_, err := CanonicaliseRoot(filepath.Join(resolvedTmpDir, "non-existent"))
		var wdErr *WorkingDirError
		if !errors.As(err, &wdErr) {
			t.Fatalf("expected WorkingDirError, got %v", err)
		}
	})

	t.Run("file instead of directory", func(t *testing.T) {
		tmpFile := filepath.Join(resolvedTmpDir, "file.txt")
		if err := os.WriteFile(tmpFile, []byte("test"), 0o644); err != nil {
			t.Fatalf("failed to create tmp file: %v", err)
		}
		_, err := CanonicaliseRoot(tmpFile)
		if !errors.Is(err, ErrNotADirectory) {
			t.Fatalf("expected ErrNotADirectory, got %v", err)
		}
	})
}
