package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "toolbelt"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs FileSystem
}

// NewLoader creates a Loader reading through fs (fs.OSFileSystem in production).
func NewLoader(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads configuration from ~/.config/toolbelt/config.json and merges it with
// defaults. Returns default config if the dotfile doesn't exist.
// Returns error only for parse errors, permission issues, or validation failures.
//
// NOTE: JSON keys are unmarshalled directly over the default configuration, so
// explicit zero values (0, false, "") in the file override defaults.
func (l *Loader) Load() (*Config, error) {
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return DefaultConfig(), nil // Use defaults if can't get home dir
	}

	return l.load(filepath.Join(homeDir, ".config", ConfigDir, ConfigFile), false)
}

// LoadFile reads configuration from an explicit path. Unlike Load, a missing file is an error.
func (l *Loader) LoadFile(path string) (*Config, error) {
	return l.load(path, true)
}

func (l *Loader) load(configPath string, mustExist bool) (*Config, error) {
	cfg := DefaultConfig()

	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !mustExist {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
