package styles

import (
	"github.com/amterp/color"

	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/domain/highlight"
)

// ColorMode selects when ANSI colors are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode maps a flag value to a ColorMode, defaulting to auto.
func ParseColorMode(s string) ColorMode {
	switch ColorMode(s) {
	case ColorAlways, ColorNever:
		return ColorMode(s)
	default:
		return ColorAuto
	}
}

// ANSIPalette paints highlight tokens with terminal escape codes.
type ANSIPalette struct {
	colors map[highlight.Class]*color.Color
}

// NewANSIPalette builds the palette for a theme. In auto mode the color
// package decides based on the terminal.
func NewANSIPalette(theme entity.Theme, mode ColorMode) *ANSIPalette {
	var colors map[highlight.Class]*color.Color
	if (entity.Options{Theme: theme}).EffectiveTheme() == entity.ThemeDark {
		colors = map[highlight.Class]*color.Color{
			highlight.ClassKey:         color.New(color.FgHiCyan),
			highlight.ClassString:      color.New(color.FgYellow),
			highlight.ClassNumber:      color.New(color.FgHiGreen),
			highlight.ClassBoolean:     color.New(color.FgBlue, color.Bold),
			highlight.ClassNull:        color.New(color.FgHiBlack, color.Bold),
			highlight.ClassPunctuation: color.New(color.Bold),
		}
	} else {
		colors = map[highlight.Class]*color.Color{
			highlight.ClassKey:         color.New(color.FgMagenta),
			highlight.ClassString:      color.New(color.FgBlue),
			highlight.ClassNumber:      color.New(color.FgHiBlue),
			highlight.ClassBoolean:     color.New(color.FgBlue, color.Bold),
			highlight.ClassNull:        color.New(color.FgBlack, color.Bold),
			highlight.ClassPunctuation: color.New(color.Bold),
		}
	}

	for _, c := range colors {
		switch mode {
		case ColorAlways:
			c.EnableColor()
		case ColorNever:
			c.DisableColor()
		}
	}
	return &ANSIPalette{colors: colors}
}

// Paint implements highlight.Palette.
func (p *ANSIPalette) Paint(class highlight.Class, text string) string {
	c, ok := p.colors[class]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// ThemePalette paints tokens with the lipgloss styles of a Theme.
type ThemePalette struct {
	theme *Theme
}

// NewThemePalette wraps a Theme as a highlight.Palette.
func NewThemePalette(theme *Theme) ThemePalette {
	return ThemePalette{theme: theme}
}

// Paint implements highlight.Palette.
func (p ThemePalette) Paint(class highlight.Class, text string) string {
	if !class.Spanned() {
		return text
	}
	return p.theme.TokenStyle(class).Render(text)
}
