package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the tocmark home directory.
	DefaultDirName = ".tocmark"

	// RunsDirName is the subdirectory holding saved run artifacts.
	RunsDirName = "runs"

	// InboxDirName is the subdirectory watched for incoming document pairs.
	InboxDirName = "inbox"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
)

// Dir represents the tocmark home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.tocmark).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// RunsDir returns the directory holding all saved runs.
func (d *Dir) RunsDir() string {
	return filepath.Join(d.path, RunsDirName)
}

// RunDir returns the artifact directory for a single run.
func (d *Dir) RunDir(runID string) string {
	return filepath.Join(d.RunsDir(), runID)
}

// InboxDir returns the watched inbox directory.
func (d *Dir) InboxDir() string {
	return filepath.Join(d.path, InboxDirName)
}

// EnsureExists creates the home directory and subdirectories if they don't exist.
func (d *Dir) EnsureExists() error {
	if err := os.MkdirAll(d.RunsDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create runs directory: %w", err)
	}
	if err := os.MkdirAll(d.InboxDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create inbox directory: %w", err)
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}
