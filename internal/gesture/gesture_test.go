package gesture

import (
	"math/rand"
	"testing"

	"dotcanvas/internal/settings"
	"dotcanvas/internal/viewport"
)

func newController() *Controller {
	return New(settings.NewStore(settings.Defaults()))
}

func TestDragAccumulatesIncrementalDeltas(t *testing.T) {
	c := newController()
	c.PointerDown(100, 100)
	if c.State() != Dragging {
		t.Fatalf("state = %v, want dragging", c.State())
	}
	if !c.PointerMove(110, 95) {
		t.Error("move did not request a redraw")
	}
	c.PointerMove(130, 90)
	want := viewport.Point{X: 30, Y: -10}
	if c.Pan() != want {
		t.Errorf("Pan() = %+v, want %+v", c.Pan(), want)
	}
	if c.Anchor() != (viewport.Point{X: 130, Y: 90}) {
		t.Errorf("anchor not advanced: %+v", c.Anchor())
	}
	c.PointerUp()
	if c.State() != Idle {
		t.Errorf("state = %v, want idle", c.State())
	}
}

func TestMoveWhileIdleIgnored(t *testing.T) {
	c := newController()
	if c.PointerMove(50, 50) {
		t.Error("idle move requested redraw")
	}
	if c.Pan() != (viewport.Point{}) {
		t.Errorf("idle move changed pan: %+v", c.Pan())
	}
}

func TestDragRoundTripLeavesPanUnchanged(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	c := newController()
	c.PointerDown(0, 0)
	c.PointerMove(10, 10)
	c.PointerUp()
	before := c.Pan()

	c.PointerDown(300, 200)
	for i := 0; i < 100; i++ {
		c.PointerMove(float64(rng.Intn(1000)), float64(rng.Intn(1000)))
	}
	c.PointerMove(300, 200)
	c.PointerUp()
	if c.Pan() != before {
		t.Errorf("Pan() = %+v, want %+v", c.Pan(), before)
	}
}

func TestLeaveEndsDrag(t *testing.T) {
	c := newController()
	c.PointerDown(1, 1)
	c.PointerLeave()
	if c.State() != Idle {
		t.Fatal("leave did not end drag")
	}
	c.PointerLeave()
	if c.PointerMove(20, 20) {
		t.Error("move after leave requested redraw")
	}
}

func TestTouchUsesFirstContact(t *testing.T) {
	c := newController()
	c.TouchStart(nil)
	if c.State() != Idle {
		t.Fatal("empty touch started a drag")
	}
	c.TouchStart([]viewport.Point{{X: 5, Y: 5}, {X: 900, Y: 900}})
	c.TouchMove([]viewport.Point{{X: 15, Y: 0}})
	if c.TouchMove(nil) {
		t.Error("empty touch move requested redraw")
	}
	c.TouchEnd()
	if c.Pan() != (viewport.Point{X: 10, Y: -5}) {
		t.Errorf("Pan() = %+v", c.Pan())
	}
}

func TestWheelWithoutCtrlIgnored(t *testing.T) {
	c := newController()
	for _, d := range []float64{-1000, -1, 0, 1, 250, 1e6} {
		if c.Wheel(d, false) {
			t.Errorf("Wheel(%v, false) consumed", d)
		}
		if c.Scale() != 1 {
			t.Fatalf("Wheel(%v, false) changed scale to %v", d, c.Scale())
		}
	}
}

func TestWheelZoomStaysClamped(t *testing.T) {
	store := settings.NewStore(settings.Defaults())
	c := New(store)
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		if !c.Wheel((rng.Float64()-0.5)*3000, true) {
			t.Fatal("ctrl wheel not consumed")
		}
		cfg := store.State()
		if c.Scale() < cfg.MinScale || c.Scale() > cfg.MaxScale {
			t.Fatalf("scale %v outside [%v, %v]", c.Scale(), cfg.MinScale, cfg.MaxScale)
		}
	}
}

func TestWheelDoesNotMovePan(t *testing.T) {
	c := newController()
	c.PointerDown(0, 0)
	c.PointerMove(40, 40)
	c.Wheel(-300, true)
	if c.Pan() != (viewport.Point{X: 40, Y: 40}) {
		t.Errorf("zoom moved pan: %+v", c.Pan())
	}
}

func TestReclampFollowsStore(t *testing.T) {
	store := settings.NewStore(settings.Defaults())
	c := New(store)
	for i := 0; i < 50; i++ {
		c.Wheel(-500, true)
	}
	if c.Scale() != 4 {
		t.Fatalf("scale = %v, want 4", c.Scale())
	}
	store.Dispatch(settings.Decrement(settings.MaxScale, 2))
	c.Reclamp()
	if c.Scale() != 2 {
		t.Errorf("scale = %v, want 2", c.Scale())
	}
}

func TestContextMenuConsumed(t *testing.T) {
	if !newController().ContextMenu() {
		t.Error("context menu not consumed")
	}
}
