package tui

import (
	table "github.com/charmbracelet/bubbles/table"

	"dotcanvas/internal/settings"
)

// refreshSettingsTable rebuilds the settings rows from the shared store
func (m *Model) refreshSettingsTable() {
	cfg := m.store.State()
	rows := make([]table.Row, 0, len(settings.Fields))
	for _, f := range settings.Fields {
		rows = append(rows, table.Row{string(f), cfg.Format(f)})
	}
	m.tbl.SetRows(rows)
}
