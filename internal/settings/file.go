package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors GridConfig with optional keys so missing values can
// fall back to the defaults.
type fileConfig struct {
	TileSize    *float64 `yaml:"tileSize"`
	BufferTiles *int     `yaml:"bufferTiles"`
	MinScale    *float64 `yaml:"minScale"`
	MaxScale    *float64 `yaml:"maxScale"`
}

// LoadFile reads a YAML config. A missing file yields the defaults.
func LoadFile(path string) (GridConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return GridConfig{}, err
	}
	return Parse(data)
}

// Parse decodes a YAML document and applies defaults for missing keys.
func Parse(data []byte) (GridConfig, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return GridConfig{}, fmt.Errorf("parse config: %w", err)
	}
	c := Defaults()
	if fc.TileSize != nil {
		c.TileSize = *fc.TileSize
	}
	if fc.BufferTiles != nil {
		c.BufferTiles = *fc.BufferTiles
	}
	if fc.MinScale != nil {
		c.MinScale = *fc.MinScale
	}
	if fc.MaxScale != nil {
		c.MaxScale = *fc.MaxScale
	}
	return c.normalize(""), nil
}

// Marshal encodes c as YAML.
func Marshal(c GridConfig) ([]byte, error) {
	return yaml.Marshal(c)
}

func SaveFile(path string, c GridConfig) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
