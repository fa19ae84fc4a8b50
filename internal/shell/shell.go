// Package shell boots the canvas: it decides where the config comes from,
// keeps it fresh during development and runs the terminal program.
package shell

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dotcanvas/internal/settings"
)

type Mode int

const (
	Packaged Mode = iota
	Development
)

func (m Mode) String() string {
	if m == Development {
		return "development"
	}
	return "packaged"
}

const (
	// EnvKey selects the mode; "development" or "dev" enables it.
	EnvKey = "DOTCANVAS_ENV"
	// ConfigName is the config file looked up in the working directory
	// during development.
	ConfigName = "dotcanvas.yaml"
	// BundledConfig is the config path relative to the install directory.
	BundledConfig = "dist/dotcanvas.yaml"
)

// DetectMode reads the mode from the environment.
func DetectMode(getenv func(string) string) Mode {
	switch strings.ToLower(strings.TrimSpace(getenv(EnvKey))) {
	case "development", "dev":
		return Development
	}
	return Packaged
}

// Source is where the grid config is loaded from.
type Source struct {
	Mode Mode
	Path string
}

// Resolve picks the config file for mode. A non-empty override wins.
func Resolve(mode Mode, override string) (Source, error) {
	if override != "" {
		return Source{Mode: mode, Path: override}, nil
	}
	if mode == Development {
		wd, err := os.Getwd()
		if err != nil {
			return Source{}, fmt.Errorf("resolve working directory: %w", err)
		}
		return Source{Mode: mode, Path: filepath.Join(wd, ConfigName)}, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return Source{}, fmt.Errorf("resolve install directory: %w", err)
	}
	return Source{Mode: mode, Path: filepath.Join(filepath.Dir(exe), BundledConfig)}, nil
}

func (s Source) Load() (settings.GridConfig, error) {
	c, err := settings.LoadFile(s.Path)
	if err != nil {
		return settings.GridConfig{}, fmt.Errorf("load %s: %w", s.Path, err)
	}
	return c, nil
}
