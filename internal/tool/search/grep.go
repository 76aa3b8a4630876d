package search

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Cyclone1070/toolbelt/internal/tool"
	"github.com/Cyclone1070/toolbelt/internal/tool/service/git"
	"github.com/dlclark/regexp2"
)

// GrepTool is a line-oriented regex search over one file or a directory tree.
type GrepTool struct {
	fs           fileSystem
	ignoreLoader ignoreLoader
	pathResolver pathResolver
}

// NewGrepTool creates a new GrepTool with injected dependencies.
func NewGrepTool(fs fileSystem, ignoreLoader ignoreLoader, pathResolver pathResolver) *GrepTool {
	if fs == nil {
		panic("fs is required")
	}
	if ignoreLoader == nil {
		panic("ignoreLoader is required")
	}
	if pathResolver == nil {
		panic("pathResolver is required")
	}
	return &GrepTool{
		fs:           fs,
		ignoreLoader: ignoreLoader,
		pathResolver: pathResolver,
	}
}

func (t *GrepTool) Name() string { return "grep" }

func (t *GrepTool) Declaration() tool.Declaration {
	return tool.Declaration{
		Name:        t.Name(),
		Title:       "Grep",
		Description: "Search files for lines matching a regular expression, similar to grep.",
		Parameters:  grepSchema,
	}
}

func (t *GrepTool) Input() any { return &GrepRequest{} }

func (t *GrepTool) Execute(ctx context.Context, input any) (string, error) {
	req, ok := input.(*GrepRequest)
	if !ok {
		return "", errors.New("grep: unexpected input type")
	}
	resp, err := t.Run(ctx, req)
	if err != nil {
		return "", err
	}

	var out []byte
	if req.CountOnly {
		out, err = json.Marshal(grepCountOutput{TotalMatches: resp.TotalMatches})
	} else {
		out, err = json.Marshal(grepOutput{Matches: resp.Matches, TotalMatches: resp.TotalMatches})
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Run compiles the pattern before touching the filesystem, then scans the target.
// A file is always scanned. A directory is walked, files only and with no depth
// limit, only when Recursive is set; otherwise it contributes nothing.
func (t *GrepTool) Run(ctx context.Context, req *GrepRequest) (*GrepResponse, error) {
	re, err := Compile(req.Pattern, req.Flags)
	if err != nil {
		return nil, err
	}

	abs := t.pathResolver.Abs(req.Path)
	info, err := t.fs.Stat(abs)
	if err != nil {
		return nil, &StatError{Path: abs, Cause: err}
	}

	s := &scanner{
		fs:        t.fs,
		re:        re,
		countOnly: req.CountOnly,
		resp:      &GrepResponse{Matches: []MatchRecord{}},
	}

	switch {
	case info.Mode().IsRegular():
		if err := s.scanFile(abs); err != nil {
			return nil, err
		}
	case info.IsDir():
		if !req.Recursive {
			break
		}
		var matcher git.Matcher = &git.NoOpMatcher{}
		if req.RespectGitignore {
			matcher, err = t.ignoreLoader.Load(abs)
			if err != nil {
				return nil, &GitignoreError{Root: abs, Cause: err}
			}
		}
		s.root = abs
		s.matcher = matcher
		if err := s.walk(ctx, abs); err != nil {
			return nil, err
		}
	default:
		return nil, &InvalidPathError{Path: abs}
	}

	return s.resp, nil
}

// matchTimeout bounds a single line match, since backtracking patterns can run away.
const matchTimeout = 5 * time.Second

// Compile builds the line matcher with ECMAScript semantics. Only the letters i, m and
// g in flags are honoured; g is accepted but changes nothing because each line is
// tested on its own.
func Compile(pattern, flags string) (*regexp2.Regexp, error) {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if strings.ContainsRune(flags, 'i') {
		opts |= regexp2.IgnoreCase
	}
	if strings.ContainsRune(flags, 'm') {
		opts |= regexp2.Multiline
	}

	re, err := regexp2.Compile(pattern, opts)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Cause: err}
	}
	re.MatchTimeout = matchTimeout
	return re, nil
}

type scanner struct {
	fs        fileSystem
	re        *regexp2.Regexp
	countOnly bool
	root      string
	matcher   git.Matcher
	resp      *GrepResponse
}

func (s *scanner) walk(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	children, err := s.fs.ReadDir(dir)
	if err != nil {
		return &ListDirError{Path: dir, Cause: err}
	}

	for _, child := range children {
		full := filepath.Join(dir, child.Name())
		rel, err := filepath.Rel(s.root, full)
		if err != nil {
			return err
		}
		if s.matcher.ShouldIgnore(rel, child.IsDir()) {
			continue
		}

		switch {
		case child.IsDir():
			if err := s.walk(ctx, full); err != nil {
				return err
			}
		case child.Type().IsRegular():
			if err := s.scanFile(full); err != nil {
				return err
			}
		case child.Type()&os.ModeSymlink != 0:
			// Symlinked files are read through the link; links to directories are not
			// followed and dangling links are skipped.
			info, err := s.fs.Stat(full)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			if err := s.scanFile(full); err != nil {
				return err
			}
		}
	}
	return nil
}

// scanFile tests each "\n"-separated line independently.
func (s *scanner) scanFile(path string) error {
	content, err := s.fs.ReadFile(path)
	if err != nil {
		return &ReadError{Path: path, Cause: err}
	}
	s.resp.FilesScanned++

	for i, line := range strings.Split(string(content), "\n") {
		ok, err := s.re.MatchString(line)
		if err != nil {
			return &MatchError{Path: path, Line: i + 1, Cause: err}
		}
		if !ok {
			continue
		}
		s.resp.TotalMatches++
		if !s.countOnly {
			s.resp.Matches = append(s.resp.Matches, MatchRecord{
				File:       path,
				LineNumber: i + 1,
				LineText:   line,
			})
		}
	}
	return nil
}
