package tui

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dotcanvas/internal/frame"
	"dotcanvas/internal/settings"
	"dotcanvas/internal/viewport"
)

func newModel(t *testing.T) (Model, *settings.Store) {
	t.Helper()
	store := settings.NewStore(settings.Defaults())
	ctx := settings.Provide(context.Background(), store)
	m := New(ctx, Options{CellWidth: 10, CellHeight: 20})
	// 40 canvas rows between the header and the two footer lines
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 43})
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	nm, _ := m.Update(msg)
	return nm.(Model)
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewOutsideProviderPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic without a settings provider")
		}
	}()
	New(context.Background(), Options{})
}

func TestResizeDrivesVisibleRange(t *testing.T) {
	m, _ := newModel(t)
	if m.size != (viewport.Size{W: 1000, H: 800}) {
		t.Fatalf("size = %+v, want 1000x800", m.size)
	}
	r := m.Range()
	if r.TilesX != 9 || r.TilesY != 8 || r.StartGridX != 0 {
		t.Errorf("range = %+v", r)
	}
	if got := len(m.layer.Markers()); got != r.Cells() {
		t.Errorf("markers = %d, want %d", got, r.Cells())
	}
}

func TestContextMenuOpensAndClickCloses(t *testing.T) {
	m, _ := newModel(t)
	m = update(t, m, mouse(50, 20, tea.MouseActionPress, tea.MouseButtonRight))
	if !m.OverlayVisible() {
		t.Fatal("right click did not open the overlay")
	}
	if !strings.Contains(m.View(), "click to close") {
		t.Error("overlay not rendered")
	}
	m = update(t, m, mouse(52, 21, tea.MouseActionPress, tea.MouseButtonLeft))
	if m.OverlayVisible() {
		t.Error("click did not close the overlay")
	}
	m = update(t, m, mouse(70, 21, tea.MouseActionMotion, tea.MouseButtonLeft))
	if m.ctrl.Pan() != (viewport.Point{}) {
		t.Error("dismissing click started a drag")
	}
}

func TestWheelWithoutCtrlKeepsScale(t *testing.T) {
	m, _ := newModel(t)
	m = update(t, m, mouse(50, 20, tea.MouseActionPress, tea.MouseButtonWheelUp))
	m = update(t, m, mouse(50, 20, tea.MouseActionPress, tea.MouseButtonWheelDown))
	if m.Scale() != 1 {
		t.Errorf("scale = %v, want 1", m.Scale())
	}

	ctrlWheel := mouse(50, 20, tea.MouseActionPress, tea.MouseButtonWheelUp)
	ctrlWheel.Ctrl = true
	m = update(t, m, ctrlWheel)
	if m.Scale() <= 1 {
		t.Errorf("ctrl+wheel up did not zoom in: %v", m.Scale())
	}
}

func TestDragCommitsOnFrame(t *testing.T) {
	m, _ := newModel(t)
	m = update(t, m, mouse(10, 10, tea.MouseActionPress, tea.MouseButtonLeft))
	nm, cmd := m.Update(mouse(12, 11, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = nm.(Model)
	if cmd == nil {
		t.Fatal("drag did not schedule a frame")
	}
	if m.Pan() != (viewport.Point{}) {
		t.Error("pan committed before the frame")
	}
	nm, cmd2 := m.Update(mouse(14, 12, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = nm.(Model)

	// the first request was superseded
	stale, ok := cmd().(frame.Msg)
	if !ok {
		t.Fatal("frame command produced the wrong message")
	}
	m = update(t, m, stale)
	if m.Pan() != (viewport.Point{}) {
		t.Error("stale frame committed the pan")
	}

	m = update(t, m, cmd2())
	want := viewport.Point{X: 40, Y: 40}
	if m.Pan() != want {
		t.Errorf("Pan() = %+v, want %+v", m.Pan(), want)
	}
	m = update(t, m, mouse(14, 12, tea.MouseActionRelease, tea.MouseButtonLeft))
	if m.layer.Transform().Translate != want {
		t.Errorf("layer transform = %+v", m.layer.Transform())
	}
}

func TestDragRoundTrip(t *testing.T) {
	m, _ := newModel(t)
	m = update(t, m, mouse(30, 20, tea.MouseActionPress, tea.MouseButtonLeft))
	m = update(t, m, mouse(60, 5, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = update(t, m, mouse(2, 39, tea.MouseActionMotion, tea.MouseButtonLeft))
	nm, cmd := m.Update(mouse(30, 20, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = nm.(Model)
	m = update(t, m, cmd())
	if m.Pan() != (viewport.Point{}) {
		t.Errorf("Pan() = %+v, want origin", m.Pan())
	}
}

func TestLeavingCanvasEndsDrag(t *testing.T) {
	m, _ := newModel(t)
	m = update(t, m, mouse(30, 20, tea.MouseActionPress, tea.MouseButtonLeft))
	m = update(t, m, mouse(30, 0, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = update(t, m, mouse(40, 20, tea.MouseActionMotion, tea.MouseButtonLeft))
	if m.ctrl.Pan() != (viewport.Point{}) {
		t.Errorf("pan moved after leaving the canvas: %+v", m.ctrl.Pan())
	}
}

func TestSettingsKeys(t *testing.T) {
	m, store := newModel(t)
	m = update(t, m, keyMsg("T"))
	m = update(t, m, keyMsg("b"))
	if got := store.State(); got.TileSize != 210 || got.BufferTiles != 1 {
		t.Errorf("state = %+v", got)
	}
	if got := m.Range().TilesX; got != 7 {
		t.Errorf("TilesX = %d, want 7", got)
	}
	m = update(t, m, keyMsg("r"))
	if store.State() != settings.Defaults() {
		t.Errorf("reset state = %+v", store.State())
	}
	m = update(t, m, keyMsg("s"))
	if !strings.Contains(m.View(), "tileSize") {
		t.Error("settings table not shown")
	}
}

func TestConfigMessages(t *testing.T) {
	m, store := newModel(t)
	want := settings.GridConfig{TileSize: 100, BufferTiles: 1, MinScale: 0.5, MaxScale: 0.8}
	m = update(t, m, ConfigReloadedMsg{Config: want})
	if store.State() != want {
		t.Errorf("state = %+v, want %+v", store.State(), want)
	}
	if m.Scale() != 0.8 {
		t.Errorf("scale not clamped to new bounds: %v", m.Scale())
	}
	m = update(t, m, ConfigErrorMsg{Err: errors.New("boom")})
	if !strings.Contains(m.status, "boom") {
		t.Errorf("status = %q", m.status)
	}
}

func TestNonFiniteConfigKeepsZoomUsable(t *testing.T) {
	m, store := newModel(t)
	cfg, err := settings.Parse([]byte("minScale: .nan\n"))
	if err != nil {
		t.Fatal(err)
	}
	m = update(t, m, ConfigReloadedMsg{Config: cfg})
	m = update(t, m, ConfigReloadedMsg{Config: settings.GridConfig{TileSize: 200, BufferTiles: 2, MinScale: math.NaN(), MaxScale: math.NaN()}})
	if math.IsNaN(m.Scale()) {
		t.Fatal("scale became NaN after reload")
	}
	m = update(t, m, keyMsg("r"))
	c := store.State()
	if math.IsNaN(m.Scale()) || m.Scale() < c.MinScale || m.Scale() > c.MaxScale {
		t.Fatalf("scale = %v outside [%v, %v]", m.Scale(), c.MinScale, c.MaxScale)
	}
	if len(m.layer.Markers()) == 0 {
		t.Error("no dots after reload and reset")
	}
}

func TestViewDrawsDots(t *testing.T) {
	m, _ := newModel(t)
	v := m.View()
	found := false
	for _, r := range v {
		if r > 0x2800 && r <= 0x28FF {
			found = true
			break
		}
	}
	if !found {
		t.Error("no braille dots in view")
	}
}

func TestQuitCancelsPendingFrame(t *testing.T) {
	m, _ := newModel(t)
	m = update(t, m, mouse(10, 10, tea.MouseActionPress, tea.MouseButtonLeft))
	m = update(t, m, mouse(11, 10, tea.MouseActionMotion, tea.MouseButtonLeft))
	nm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if nm.(Model).frames.Pending() {
		t.Error("frame still pending after quit")
	}
}
