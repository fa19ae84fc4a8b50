package tui

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dotcanvas/internal/dotgrid"
	"dotcanvas/internal/frame"
	"dotcanvas/internal/gesture"
	"dotcanvas/internal/overlay"
	"dotcanvas/internal/settings"
	"dotcanvas/internal/viewport"
)

const (
	headerHeight = 1

	defaultCellWidth  = 8
	defaultCellHeight = 16
	// defaultWheelDelta is the deltaY reported for one wheel notch.
	defaultWheelDelta = 100
)

// Options tunes how terminal cells map to canvas pixels.
type Options struct {
	CellWidth  int
	CellHeight int
	FPS        int
	WheelDelta float64
	Logger     *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.CellWidth <= 0 {
		o.CellWidth = defaultCellWidth
	}
	if o.CellHeight <= 0 {
		o.CellHeight = defaultCellHeight
	}
	if o.WheelDelta <= 0 {
		o.WheelDelta = defaultWheelDelta
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// ConfigReloadedMsg carries a config read from disk by the shell.
type ConfigReloadedMsg struct {
	Config settings.GridConfig
}

// ConfigErrorMsg reports a config file that could not be read.
type ConfigErrorMsg struct {
	Err error
}

type Model struct {
	width  int
	height int

	opts Options
	log  *slog.Logger

	store  *settings.Store
	ctrl   *gesture.Controller
	frames frame.Scheduler
	layer  *dotgrid.Layer

	// rendered state; the controller holds the live pan between frames
	pan   viewport.Point
	scale float64
	size  viewport.Size

	ov overlay.Overlay

	status string

	showSettings bool
	tbl          table.Model

	keys keyMap
	help help.Model
}

// New builds the canvas model. It must run inside a settings provider.
func New(ctx context.Context, opts Options) Model {
	store := settings.Use(ctx)
	opts = opts.withDefaults()
	ctrl := gesture.New(store)
	m := Model{
		opts:   opts,
		log:    opts.Logger,
		store:  store,
		ctrl:   ctrl,
		frames: frame.New(opts.FPS),
		layer:  dotgrid.NewLayer(),
		scale:  ctrl.Scale(),
		status: "dotcanvas ready",
		keys:   defaultKeys(),
		help:   help.New(),
	}
	m.tbl = table.New(
		table.WithColumns([]table.Column{{Title: "setting", Width: 12}, {Title: "value", Width: 8}}),
		table.WithHeight(len(settings.Fields)+1),
	)
	m.refreshSettingsTable()
	return m
}

func (m Model) Init() tea.Cmd { return tea.SetWindowTitle("dotcanvas") }

// Pan returns the pan offset currently on screen.
func (m Model) Pan() viewport.Point { return m.pan }

func (m Model) Scale() float64 { return m.scale }

func (m Model) OverlayVisible() bool { return m.ov.Visible() }

// Range is the visible range for the rendered state.
func (m Model) Range() viewport.VisibleRange {
	return viewport.Compute(m.pan, m.scale, m.size, m.store.State())
}

// canvasCells is the map area: everything between the header and the status
// and help lines.
func (m Model) canvasCells() (int, int) {
	footerHeight := 1 + lipgloss.Height(m.help.View(m.keys))
	w := max(10, m.width)
	h := max(4, m.height-headerHeight-footerHeight)
	return w, h
}

// resize recomputes the viewport size in canvas pixels.
func (m *Model) resize() {
	cw, ch := m.canvasCells()
	m.size = viewport.Size{W: float64(cw * m.opts.CellWidth), H: float64(ch * m.opts.CellHeight)}
}
