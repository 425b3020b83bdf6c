package entity

import (
	"math"
	"strconv"
	"strings"
)

// Theme names a display theme for highlighted output.
type Theme string

const (
	// ThemeLight is the default theme.
	ThemeLight Theme = "light"
	// ThemeDark renders on dark backgrounds.
	ThemeDark Theme = "dark"
)

// Sync-scope storage keys for options.
const (
	OptionsThemeKey  = "theme"
	OptionsIndentKey = "indent"
)

// DefaultIndent is used when no indent is stored or coercion fails.
const DefaultIndent = 2

// Options holds user preferences used when rendering JSON.
type Options struct {
	Theme  Theme `json:"theme"`
	Indent int   `json:"indent"`
}

// DefaultOptions returns the options used before anything is saved.
func DefaultOptions() Options {
	return Options{Theme: ThemeLight, Indent: DefaultIndent}
}

// EffectiveTheme maps unknown theme names to the light theme.
func (o Options) EffectiveTheme() Theme {
	if o.Theme == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// CoerceIndent converts a loosely typed indent value into a non-negative integer.
// Floats are truncated, strings are read like parseInt (leading digits).
// Anything negative or non-numeric yields DefaultIndent.
func CoerceIndent(v any) int {
	switch n := v.(type) {
	case int:
		return nonNegative(int64(n))
	case int64:
		return nonNegative(n)
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return DefaultIndent
		}
		return nonNegative(int64(n))
	case string:
		return coerceIndentString(n)
	default:
		return DefaultIndent
	}
}

func coerceIndentString(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return DefaultIndent
	}
	n, err := strconv.ParseInt(s[:end], 10, 32)
	if err != nil {
		return DefaultIndent
	}
	return nonNegative(n)
}

func nonNegative(n int64) int {
	if n < 0 || n > math.MaxInt32 {
		return DefaultIndent
	}
	return int(n)
}
