// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/domain/highlight"
)

// ColorPalette holds the base colors of a theme as hex strings.
type ColorPalette struct {
	Background     string
	Surface        string
	SurfaceVariant string
	Text           string
	Muted          string
	Accent         string
	Border         string
}

// Theme holds lipgloss colors and styles for one display theme.
type Theme struct {
	Name entity.Theme

	// Base colors
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color

	// Additional semantic colors
	Error   lipgloss.Color
	Warning lipgloss.Color
	Success lipgloss.Color

	// Token colors, shared with the HTML stylesheet
	Tokens highlight.Colors

	// Pre-built styles
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style

	// Component styles
	ActiveButton   lipgloss.Style
	InactiveButton lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	ListItemDesc     lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	Box       lipgloss.Style
	BoxHeader lipgloss.Style
	Toast     lipgloss.Style
}

// DefaultDarkPalette returns the dark theme colors.
func DefaultDarkPalette() ColorPalette {
	return ColorPalette{
		Background:     "#1e1e1e",
		Surface:        "#252526",
		SurfaceVariant: "#2d2d30",
		Text:           "#d4d4d4",
		Muted:          "#858585",
		Accent:         "#569cd6",
		Border:         "#3c3c3c",
	}
}

// DefaultLightPalette returns the light theme colors.
func DefaultLightPalette() ColorPalette {
	return ColorPalette{
		Background:     "#ffffff",
		Surface:        "#f3f3f3",
		SurfaceVariant: "#e8e8e8",
		Text:           "#1f1f1f",
		Muted:          "#6e6e6e",
		Accent:         "#881391",
		Border:         "#d0d0d0",
	}
}

// NewTheme creates the Theme for the given option value.
// Unknown names render as light.
func NewTheme(name entity.Theme) *Theme {
	effective := entity.Options{Theme: name}.EffectiveTheme()
	p := DefaultLightPalette()
	if effective == entity.ThemeDark {
		p = DefaultDarkPalette()
	}
	t := NewThemeFromPalette(p)
	t.Name = effective
	t.Tokens = highlight.ThemeColors(effective)
	return t
}

// NewThemeFromPalette creates a Theme from a ColorPalette with light token colors.
func NewThemeFromPalette(p ColorPalette) *Theme {
	t := &Theme{
		Name:           entity.ThemeLight,
		Background:     lipgloss.Color(p.Background),
		Surface:        lipgloss.Color(p.Surface),
		SurfaceVariant: lipgloss.Color(p.SurfaceVariant),
		Text:           lipgloss.Color(p.Text),
		Muted:          lipgloss.Color(p.Muted),
		Accent:         lipgloss.Color(p.Accent),
		Border:         lipgloss.Color(p.Border),

		Error:   lipgloss.Color("#ef4444"),
		Warning: lipgloss.Color("#f59e0b"),
		Success: lipgloss.Color("#22c55e"),

		Tokens: highlight.ThemeColors(entity.ThemeLight),
	}

	t.buildStyles()
	return t
}

// TokenStyle returns the style for one highlight class.
func (t *Theme) TokenStyle(class highlight.Class) lipgloss.Style {
	c := t.Tokens.Color(class)
	if c == "" {
		return t.Normal
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// buildStyles creates all derived lipgloss styles.
func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtitle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Bold(true)

	t.Normal = lipgloss.NewStyle().
		Foreground(t.Text)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.ActiveButton = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)

	t.InactiveButton = lipgloss.NewStyle().
		Foreground(t.Muted).
		Background(t.Surface).
		Padding(0, 2)

	t.ListItem = lipgloss.NewStyle().
		Foreground(t.Text).
		PaddingLeft(2)

	t.ListItemSelected = lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.SurfaceVariant).
		PaddingLeft(2).
		Bold(true)

	t.ListItemDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Input = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.InputFocused = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 1)

	t.HelpKey = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HelpDesc = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)

	t.BoxHeader = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(t.Border).
		MarginBottom(1)

	t.Toast = lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Success).
		Padding(0, 1)
}
