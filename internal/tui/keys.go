package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	TileUp   key.Binding
	TileDown key.Binding
	BufUp    key.Binding
	BufDown  key.Binding
	MinUp    key.Binding
	MinDown  key.Binding
	MaxUp    key.Binding
	MaxDown  key.Binding
	Reset    key.Binding
	Settings key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		TileUp:   key.NewBinding(key.WithKeys("T"), key.WithHelp("t/T", "tile size")),
		TileDown: key.NewBinding(key.WithKeys("t")),
		BufUp:    key.NewBinding(key.WithKeys("B"), key.WithHelp("b/B", "buffer")),
		BufDown:  key.NewBinding(key.WithKeys("b")),
		MinUp:    key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "min zoom")),
		MinDown:  key.NewBinding(key.WithKeys("[")),
		MaxUp:    key.NewBinding(key.WithKeys("}"), key.WithHelp("{/}", "max zoom")),
		MaxDown:  key.NewBinding(key.WithKeys("{")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Settings: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "settings")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Settings, k.Reset, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TileUp, k.BufUp},
		{k.MinUp, k.MaxUp},
		{k.Settings, k.Reset, k.Help, k.Quit},
	}
}
