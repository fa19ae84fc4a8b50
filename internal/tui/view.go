package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dotcanvas/internal/overlay"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	cw, ch := m.canvasCells()

	header := titleStyle.Render(" dotcanvas ─ infinite dot canvas ")
	header = lipgloss.NewStyle().Width(cw).Padding(0).Render(header)

	lines := m.renderCanvas(cw, ch)
	switch {
	case m.ov.Visible():
		lines = overlay.Compose(lines, cw)
	case m.showSettings:
		box := boxStyle.Render(m.tbl.View())
		lines = overlay.Stamp(lines, box, max(0, cw-lipgloss.Width(box)-1), 0)
	default:
		for i := range lines {
			lines[i] = dotStyle.Render(lines[i])
		}
	}
	canvas := lipgloss.NewStyle().Width(cw).Height(ch).Render(strings.Join(lines, "\n"))

	// Footer / status
	status := dimStyle.Render(" " + m.status + " ")
	info := dimStyle.Render(fmt.Sprintf("pan=(%.0f, %.0f) zoom=%.2fx dots=%d ",
		m.pan.X, m.pan.Y, m.scale, len(m.layer.Markers())))
	gap := clampInt(cw-lipgloss.Width(status)-lipgloss.Width(info), 0, cw)
	statusLine := status + padRight("", gap) + info
	helpLine := m.help.View(m.keys)
	footer := lipgloss.JoinVertical(lipgloss.Left, statusLine, helpLine)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, canvas, footer)
	return appStyle.Width(cw).Height(m.height).Render(ui)
}
