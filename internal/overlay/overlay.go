// Package overlay is the context-menu panel shown over the canvas.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Items is the fixed panel content, in display order.
var Items = []string{"A", "B", "C", "D", "E", "F"}

var (
	itemStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#7C3AED")).Padding(0, 2).Bold(true)
	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#243141")).Padding(0, 1)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

type Overlay struct {
	visible bool
}

func (o *Overlay) Open()         { o.visible = true }
func (o *Overlay) Close()        { o.visible = false }
func (o *Overlay) Visible() bool { return o.visible }

// Click dismisses the overlay. Any click while it is shown lands on it, so
// the return value tells the caller the click was consumed.
func (o *Overlay) Click() bool {
	if !o.visible {
		return false
	}
	o.visible = false
	return true
}

// Panel renders the item row, independent of visibility.
func Panel() string {
	cells := make([]string, len(Items))
	for i, it := range Items {
		cells[i] = itemStyle.Render(it)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	body := lipgloss.JoinVertical(lipgloss.Center, row, hintStyle.Render("click to close"))
	return panelStyle.Render(body)
}

// Compose draws the panel centred on top of the canvas lines. Canvas lines
// must hold single-width runes only.
func Compose(canvas []string, width int) []string {
	panel := Panel()
	top := max(0, (len(canvas)-lipgloss.Height(panel))/2)
	left := max(0, (width-lipgloss.Width(panel))/2)
	return Stamp(canvas, panel, left, top)
}

// Stamp returns a copy of canvas with block drawn over it at (left, top).
// Rows and columns that fall outside the canvas are dropped.
func Stamp(canvas []string, block string, left, top int) []string {
	out := append([]string(nil), canvas...)
	for i, bl := range strings.Split(block, "\n") {
		y := top + i
		if y < 0 {
			continue
		}
		if y >= len(out) {
			break
		}
		r := []rune(out[y])
		if left >= len(r) {
			continue
		}
		end := min(len(r), left+lipgloss.Width(bl))
		out[y] = string(r[:left]) + bl + string(r[end:])
	}
	return out
}
