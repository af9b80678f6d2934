package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "sdx.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/sdx"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger
	dir    string
	home   string
}

// NewLoader creates a new configuration loader that searches from the
// current directory.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{logger: logger}
	if cwd, err := os.Getwd(); err == nil {
		l.dir = cwd
	}
	if home, err := os.UserHomeDir(); err == nil {
		l.home = home
	}
	return l
}

// In returns a copy of l that searches for the project config from dir.
func (l *Loader) In(dir string) *Loader {
	c := *l
	c.dir = dir
	return &c
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/sdx/config.yaml)
// 3. Project config (sdx.yaml in the search directory or its parents)
//
// Relative paths are resolved against the directory of the project config,
// or the search directory when there is none. The returned path names the
// project config and is empty when none was found.
func (l *Loader) Load() (*Config, string, error) {
	config := Default()

	if path := l.userConfigPath(); path != "" {
		if user, err := LoadFromFile(path); err == nil {
			l.logger.Debug("loaded user config", slog.String("path", path))
			config.Merge(user)
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("failed to load user config", slog.String("path", path), slog.String("error", err.Error()))
		}
	}

	base := l.dir
	path := l.findProjectConfig()
	if path != "" {
		project, err := LoadFromFile(path)
		if err != nil {
			return nil, "", err
		}
		l.logger.Debug("loaded project config", slog.String("path", path))
		config.Merge(project)
		base = filepath.Dir(path)
	} else {
		l.logger.Debug("no project config found", slog.String("dir", l.dir))
	}
	if base != "" {
		config.Resolve(base)
	}

	if err := config.Validate(); err != nil {
		return nil, "", err
	}
	return config, path, nil
}

// userConfigPath returns the path to the user config file
func (l *Loader) userConfigPath() string {
	if l.home == "" {
		return ""
	}
	return filepath.Join(l.home, UserConfigDir, UserConfigFile)
}

// findProjectConfig searches for sdx.yaml in the search directory and its parents
func (l *Loader) findProjectConfig() string {
	if l.dir == "" {
		return ""
	}
	dir := l.dir
	for {
		path := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
