package settings

import (
	"fmt"
	"math"
)

// GridConfig holds the tunable canvas parameters.
type GridConfig struct {
	TileSize    float64 `yaml:"tileSize"`
	BufferTiles int     `yaml:"bufferTiles"`
	MinScale    float64 `yaml:"minScale"`
	MaxScale    float64 `yaml:"maxScale"`
}

// Bounds applied after every action. A tile size or scale near zero, or a
// huge buffer, would make the visible range unbounded.
const (
	MinTileSize    = 50
	MinScaleEver   = 0.1
	MaxBufferTiles = 16
)

// Defaults returns the built-in configuration.
func Defaults() GridConfig {
	return GridConfig{
		TileSize:    200,
		BufferTiles: 2,
		MinScale:    0.2,
		MaxScale:    4,
	}
}

// Field names one GridConfig property.
type Field string

const (
	TileSize    Field = "tileSize"
	BufferTiles Field = "bufferTiles"
	MinScale    Field = "minScale"
	MaxScale    Field = "maxScale"
)

// Fields lists every property in display order.
var Fields = []Field{TileSize, BufferTiles, MinScale, MaxScale}

// Get returns the value of f as a float.
func (c GridConfig) Get(f Field) float64 {
	switch f {
	case TileSize:
		return c.TileSize
	case BufferTiles:
		return float64(c.BufferTiles)
	case MinScale:
		return c.MinScale
	case MaxScale:
		return c.MaxScale
	}
	return 0
}

func (c GridConfig) with(f Field, v float64) GridConfig {
	switch f {
	case TileSize:
		c.TileSize = v
	case BufferTiles:
		c.BufferTiles = int(math.Round(v))
	case MinScale:
		c.MinScale = v
	case MaxScale:
		c.MaxScale = v
	}
	return c
}

// Format renders a property value for display.
func (c GridConfig) Format(f Field) string {
	if f == BufferTiles {
		return fmt.Sprintf("%d", c.BufferTiles)
	}
	if f == TileSize {
		return fmt.Sprintf("%.0f", c.TileSize)
	}
	return fmt.Sprintf("%.2f", c.Get(f))
}

// normalize keeps the config renderable. The field that was just changed is
// the one that yields when minScale and maxScale cross.
func (c GridConfig) normalize(changed Field) GridConfig {
	// non-finite values fall back to the defaults
	d := Defaults()
	if !finite(c.TileSize) {
		c.TileSize = d.TileSize
	}
	if !finite(c.MinScale) {
		c.MinScale = d.MinScale
	}
	if !finite(c.MaxScale) {
		c.MaxScale = d.MaxScale
	}
	if c.TileSize < MinTileSize {
		c.TileSize = MinTileSize
	}
	c.BufferTiles = min(max(c.BufferTiles, 0), MaxBufferTiles)
	if c.MinScale < MinScaleEver {
		c.MinScale = MinScaleEver
	}
	if c.MaxScale < MinScaleEver {
		c.MaxScale = MinScaleEver
	}
	if c.MinScale > c.MaxScale {
		if changed == MaxScale {
			c.MaxScale = c.MinScale
		} else {
			c.MinScale = c.MaxScale
		}
	}
	return c
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validField(f Field) bool {
	for _, k := range Fields {
		if k == f {
			return true
		}
	}
	return false
}
