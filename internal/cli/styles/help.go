package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// PopupKeyMap defines keybindings for the popup.
type PopupKeyMap struct {
	Format   key.Binding
	Compress key.Binding
	Export   key.Binding
	Paste    key.Binding
	Focus    key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k PopupKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Format, k.Compress, k.Export, k.Focus, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k PopupKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Format, k.Compress, k.Export, k.Paste},
		{k.Focus, k.Up, k.Down, k.Select},
		{k.Help, k.Quit},
	}
}

// DefaultPopupKeyMap returns the default popup keybindings. The action chords
// stay clear of the textarea and viewport bindings.
func DefaultPopupKeyMap() PopupKeyMap {
	return PopupKeyMap{
		Format: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "format"),
		),
		Compress: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "compress"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "export"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "paste"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load entry"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
