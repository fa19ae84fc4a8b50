// Package dotgrid keeps one marker per visible grid cell and a single
// transform that places the whole marker set on screen.
package dotgrid

import "dotcanvas/internal/viewport"

// DotDiameter is the unscaled marker size in pixels.
const DotDiameter = 10

// Marker is one dot. X and Y are layer coordinates; GX and GY the grid cell.
type Marker struct {
	GX, GY int
	X, Y   float64
}

// Transform translates by Translate, then scales by Scale around the layer
// centre.
type Transform struct {
	Translate viewport.Point
	Scale     float64
}

type rangeKey struct {
	tilesX, tilesY int
	startX, startY int
	tileSize       float64
}

// Layer is the container for all markers. Pan and zoom only touch its
// transform; the markers are rebuilt when the visible range moves.
type Layer struct {
	markers   []Marker
	key       rangeKey
	built     bool
	rebuilds  int
	position  viewport.Point
	transform Transform
}

func NewLayer() *Layer {
	return &Layer{transform: Transform{Scale: 1}}
}

// Sync lays out markers for r. It reports whether the markers were rebuilt.
func (l *Layer) Sync(r viewport.VisibleRange, tileSize float64) bool {
	k := rangeKey{r.TilesX, r.TilesY, r.StartGridX, r.StartGridY, tileSize}
	if l.built && k == l.key {
		return false
	}
	n := max(0, r.TilesX) * max(0, r.TilesY)
	if cap(l.markers) < n {
		l.markers = make([]Marker, 0, n)
	}
	l.markers = l.markers[:0]
	for gy := 0; gy < r.TilesY; gy++ {
		for gx := 0; gx < r.TilesX; gx++ {
			cx, cy := r.StartGridX+gx, r.StartGridY+gy
			l.markers = append(l.markers, Marker{
				GX: cx,
				GY: cy,
				X:  float64(cx) * tileSize,
				Y:  float64(cy) * tileSize,
			})
		}
	}
	l.key = k
	l.built = true
	l.rebuilds++
	return true
}

// Place anchors the layer centre half a viewport above and left of the
// screen origin, the frame the visible range is computed in.
func (l *Layer) Place(size viewport.Size) {
	l.position = viewport.Point{X: -size.W / 2, Y: -size.H / 2}
}

// SetTransform is the per-frame update and costs the same for any number of
// markers.
func (l *Layer) SetTransform(pan viewport.Point, scale float64) {
	l.transform = Transform{Translate: pan, Scale: scale}
}

func (l *Layer) Transform() Transform { return l.transform }
func (l *Layer) Markers() []Marker    { return l.markers }
func (l *Layer) Rebuilds() int        { return l.rebuilds }

// Screen maps a marker to screen pixels.
func (l *Layer) Screen(m Marker) viewport.Point {
	t := l.transform
	return viewport.Point{
		X: l.position.X + t.Translate.X + t.Scale*m.X,
		Y: l.position.Y + t.Translate.Y + t.Scale*m.Y,
	}
}

// DotRadius is the on-screen marker radius.
func (l *Layer) DotRadius() float64 {
	return DotDiameter * l.transform.Scale / 2
}
