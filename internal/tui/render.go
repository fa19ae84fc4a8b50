package tui

// renderCanvas rasterises the dot layer into w x h terminal cells.
func (m Model) renderCanvas(w, h int) []string {
	br := newBrailleBuf(w, h)
	// micro-pixels per canvas pixel
	sx := 2 / float64(m.opts.CellWidth)
	sy := 4 / float64(m.opts.CellHeight)
	r := m.layer.DotRadius()
	for _, mk := range m.layer.Markers() {
		p := m.layer.Screen(mk)
		br.fillDot(p.X*sx, p.Y*sy, r*sx, r*sy)
	}
	return br.toLines()
}
