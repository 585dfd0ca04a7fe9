package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"folio/internal/tui/widgets/helpoverlay"
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Skip     key.Binding
	Copy     key.Binding
	Reload   key.Binding
	Diff     key.Binding
	DiffView key.Binding
	Help     key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup/b", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " "), key.WithHelp("pgdn/f", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Skip:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "skip animations")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload content")),
		Diff:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "reload diff")),
		DiffView: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "unified/side-by-side")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is the status line hint.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp is the help overlay.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Skip, k.Copy, k.Reload},
		{k.Diff, k.DiffView, k.Help, k.Close, k.Quit},
	}
}

func (k keyMap) groups() []helpoverlay.Group {
	full := k.FullHelp()
	titles := []string{"Navigation", "Actions", "View"}
	out := make([]helpoverlay.Group, 0, len(full))
	for i, keys := range full {
		out = append(out, helpoverlay.Group{Title: titles[i], Keys: keys})
	}
	return out
}
