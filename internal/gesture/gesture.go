// Package gesture turns pointer, touch and wheel input into pan and zoom.
package gesture

import (
	"dotcanvas/internal/settings"
	"dotcanvas/internal/viewport"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller owns the live pan offset and zoom scale. Zoom bounds are read
// from the shared settings store on every wheel event.
type Controller struct {
	store  *settings.Store
	state  State
	anchor viewport.Point
	pan    viewport.Point
	scale  float64
}

func New(store *settings.Store) *Controller {
	c := &Controller{store: store, scale: 1}
	c.Reclamp()
	return c
}

func (c *Controller) State() State           { return c.state }
func (c *Controller) Pan() viewport.Point    { return c.pan }
func (c *Controller) Scale() float64         { return c.scale }
func (c *Controller) Anchor() viewport.Point { return c.anchor }

// PointerDown starts a drag anchored at (x, y).
func (c *Controller) PointerDown(x, y float64) {
	c.state = Dragging
	c.anchor = viewport.Point{X: x, Y: y}
}

// PointerMove adds the delta since the last pointer position to the pan and
// moves the anchor. It reports whether the pan changed and a redraw is due.
func (c *Controller) PointerMove(x, y float64) bool {
	if c.state != Dragging {
		return false
	}
	p := viewport.Point{X: x, Y: y}
	d := p.Sub(c.anchor)
	c.anchor = p
	if d.X == 0 && d.Y == 0 {
		return false
	}
	c.pan = c.pan.Add(d)
	return true
}

// PointerUp ends a drag. Calling it while idle is a no-op.
func (c *Controller) PointerUp() { c.state = Idle }

// PointerLeave ends tracking when the pointer leaves the surface.
func (c *Controller) PointerLeave() { c.PointerUp() }

// TouchStart begins a drag at the first contact. No contacts, no drag.
func (c *Controller) TouchStart(touches []viewport.Point) {
	if len(touches) == 0 {
		return
	}
	c.PointerDown(touches[0].X, touches[0].Y)
}

func (c *Controller) TouchMove(touches []viewport.Point) bool {
	if len(touches) == 0 {
		return false
	}
	return c.PointerMove(touches[0].X, touches[0].Y)
}

func (c *Controller) TouchEnd() { c.PointerUp() }

// Wheel zooms when ctrl is held and reports whether the event was consumed.
// Plain wheel events are left to the host.
func (c *Controller) Wheel(deltaY float64, ctrl bool) bool {
	if !ctrl {
		return false
	}
	cfg := c.store.State()
	c.scale = viewport.ZoomScale(c.scale, deltaY, cfg.MinScale, cfg.MaxScale)
	return true
}

// ContextMenu always swallows the host menu; the caller shows the overlay.
func (c *Controller) ContextMenu() bool { return true }

// Reclamp pulls the scale back inside the configured bounds after they change.
func (c *Controller) Reclamp() {
	cfg := c.store.State()
	c.scale = viewport.ClampScale(c.scale, cfg.MinScale, cfg.MaxScale)
}
