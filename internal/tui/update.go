package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"dotcanvas/internal/frame"
	"dotcanvas/internal/settings"
	"dotcanvas/internal/viewport"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.resize()
		m.log.Debug("resize", "cols", msg.Width, "rows", msg.Height, "px_w", m.size.W, "px_h", m.size.H)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.frames.Cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.TileUp):
			m.dispatch(settings.Increment(settings.TileSize, 10))
		case key.Matches(msg, m.keys.TileDown):
			m.dispatch(settings.Decrement(settings.TileSize, 10))
		case key.Matches(msg, m.keys.BufUp):
			m.dispatch(settings.Increment(settings.BufferTiles, 1))
		case key.Matches(msg, m.keys.BufDown):
			m.dispatch(settings.Decrement(settings.BufferTiles, 1))
		case key.Matches(msg, m.keys.MinUp):
			m.dispatch(settings.Increment(settings.MinScale, 0.05))
		case key.Matches(msg, m.keys.MinDown):
			m.dispatch(settings.Decrement(settings.MinScale, 0.05))
		case key.Matches(msg, m.keys.MaxUp):
			m.dispatch(settings.Increment(settings.MaxScale, 0.25))
		case key.Matches(msg, m.keys.MaxDown):
			m.dispatch(settings.Decrement(settings.MaxScale, 0.25))
		case key.Matches(msg, m.keys.Reset):
			m.dispatch(settings.Reset())
			m.status = "settings reset"
		case key.Matches(msg, m.keys.Settings):
			m.showSettings = !m.showSettings
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
		}
	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	case tea.BlurMsg:
		m.ctrl.PointerLeave()
	case frame.Msg:
		if m.frames.Accept(msg) {
			m.pan = m.ctrl.Pan()
		}
	case ConfigReloadedMsg:
		m.dispatch(settings.Replace(msg.Config))
		m.status = "config reloaded"
	case ConfigErrorMsg:
		m.status = "config error: " + msg.Err.Error()
		m.log.Warn("config reload failed", "err", msg.Err)
	}
	m.syncLayer()
	return m, cmd
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	cw, ch := m.canvasCells()
	cx, cy := msg.X, msg.Y-headerHeight
	inCanvas := cx >= 0 && cx < cw && cy >= 0 && cy < ch
	// centre of the cell, in canvas pixels
	px := (float64(cx) + 0.5) * float64(m.opts.CellWidth)
	py := (float64(cy) + 0.5) * float64(m.opts.CellHeight)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if m.ov.Click() {
				m.status = "overlay closed"
				return nil
			}
			if inCanvas {
				m.ctrl.PointerDown(px, py)
			}
		case tea.MouseButtonRight:
			if inCanvas && m.ctrl.ContextMenu() {
				m.ctrl.PointerUp()
				m.ov.Open()
				m.status = "overlay open"
			}
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
			delta := m.opts.WheelDelta
			if msg.Button == tea.MouseButtonWheelUp {
				delta = -delta
			}
			if m.ctrl.Wheel(delta, msg.Ctrl) {
				m.scale = m.ctrl.Scale()
				m.status = fmt.Sprintf("zoom: %.2fx", m.scale)
			}
		}
	case tea.MouseActionMotion:
		if !inCanvas {
			m.ctrl.PointerLeave()
			return nil
		}
		if m.ctrl.PointerMove(px, py) {
			return m.frames.Request()
		}
	case tea.MouseActionRelease:
		m.ctrl.PointerUp()
	}
	return nil
}

// dispatch applies a settings action and pulls the zoom back into range.
func (m *Model) dispatch(a settings.Action) {
	cfg := m.store.Dispatch(a)
	m.ctrl.Reclamp()
	m.scale = m.ctrl.Scale()
	m.refreshSettingsTable()
	m.status = fmt.Sprintf("tile=%s buffer=%s zoom=[%s, %s]",
		cfg.Format(settings.TileSize), cfg.Format(settings.BufferTiles),
		cfg.Format(settings.MinScale), cfg.Format(settings.MaxScale))
	m.log.Info("settings changed", "tile", cfg.TileSize, "buffer", cfg.BufferTiles, "min", cfg.MinScale, "max", cfg.MaxScale)
}

// syncLayer recomputes the visible range for the rendered state. Markers are
// rebuilt only when the range moved; otherwise only the transform changes.
func (m *Model) syncLayer() {
	if m.size.W <= 0 || m.size.H <= 0 {
		return
	}
	cfg := m.store.State()
	r := viewport.Compute(m.pan, m.scale, m.size, cfg)
	if m.layer.Sync(r, cfg.TileSize) {
		m.log.Debug("markers rebuilt", "tiles_x", r.TilesX, "tiles_y", r.TilesY, "start_x", r.StartGridX, "start_y", r.StartGridY)
	}
	m.layer.Place(m.size)
	m.layer.SetTransform(m.pan, m.scale)
}
