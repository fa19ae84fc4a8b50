// Package viewport maps pan, zoom and viewport size to the range of grid
// cells that has to be rendered.
package viewport

import (
	"math"

	"dotcanvas/internal/settings"
)

// ZoomSensitivity converts wheel delta units into a relative scale change.
const ZoomSensitivity = 0.001

// Point is a pixel position or offset.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Size is a viewport size in pixels.
type Size struct {
	W float64
	H float64
}

// Rect is an axis-aligned pixel rectangle, Max exclusive.
type Rect struct {
	Min Point
	Max Point
}

// Contains reports whether r fully covers o.
func (r Rect) Contains(o Rect) bool {
	return r.Min.X <= o.Min.X && r.Min.Y <= o.Min.Y && r.Max.X >= o.Max.X && r.Max.Y >= o.Max.Y
}

// VisibleRange is the block of grid cells that covers the viewport plus the
// buffer margin on every side.
type VisibleRange struct {
	TilesX         int
	TilesY         int
	StartGridX     int
	StartGridY     int
	ScaledTileSize float64
}

// Compute derives the visible range. Pan is the displacement of the grid
// relative to the viewport centre. The result depends on nothing but its
// inputs; call it on every render.
func Compute(pan Point, scale float64, size Size, cfg settings.GridConfig) VisibleRange {
	sts := cfg.TileSize * scale
	buf := cfg.BufferTiles
	offsetX := pan.X - size.W/2
	offsetY := pan.Y - size.H/2
	return VisibleRange{
		TilesX:         int(math.Ceil(size.W/sts)) + 2*buf,
		TilesY:         int(math.Ceil(size.H/sts)) + 2*buf,
		StartGridX:     int(math.Floor(-offsetX/sts)) - buf,
		StartGridY:     int(math.Floor(-offsetY/sts)) - buf,
		ScaledTileSize: sts,
	}
}

// Cells is the number of markers the range produces.
func (r VisibleRange) Cells() int { return r.TilesX * r.TilesY }

// Bounds returns the screen rectangle spanned by the range for the given pan
// and viewport size. Cell i starts at i*ScaledTileSize + pan - size/2.
func (r VisibleRange) Bounds(pan Point, size Size) Rect {
	ox := pan.X - size.W/2
	oy := pan.Y - size.H/2
	return Rect{
		Min: Point{float64(r.StartGridX)*r.ScaledTileSize + ox, float64(r.StartGridY)*r.ScaledTileSize + oy},
		Max: Point{float64(r.StartGridX+r.TilesX)*r.ScaledTileSize + ox, float64(r.StartGridY+r.TilesY)*r.ScaledTileSize + oy},
	}
}

// Screen is the viewport rectangle itself.
func (s Size) Screen() Rect { return Rect{Max: Point{s.W, s.H}} }

// ClampScale keeps scale within [lo, hi]. A NaN scale becomes lo.
func ClampScale(scale, lo, hi float64) float64 {
	if math.IsNaN(scale) {
		return lo
	}
	return math.Min(hi, math.Max(lo, scale))
}

// ZoomScale applies one wheel step to scale. Negative deltaY zooms in.
func ZoomScale(scale, deltaY, lo, hi float64) float64 {
	factor := -deltaY * ZoomSensitivity
	return ClampScale(scale*(1+factor), lo, hi)
}
