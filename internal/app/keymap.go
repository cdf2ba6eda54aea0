package app

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the application key bindings.
type keyMap struct {
	Quit      key.Binding
	Help      key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
	OpenLeft  key.Binding
	OpenRight key.Binding
	Hide      key.Binding
	Select    key.Binding
	Copy      key.Binding
	CopyPath  key.Binding
	Refresh   key.Binding
	Theme     key.Binding
}

var keys = keyMap{
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/up", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/down", "down")),
	PageUp:    key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
	PageDown:  key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
	Top:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	Bottom:    key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
	OpenLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "documents")),
	OpenRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "details")),
	Hide:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close panel")),
	Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy text")),
	CopyPath:  key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy path")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rescan")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.OpenLeft, k.OpenRight, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.OpenLeft, k.OpenRight, k.Hide, k.Select},
		{k.Copy, k.CopyPath, k.Refresh, k.Theme},
		{k.Help, k.Quit},
	}
}
