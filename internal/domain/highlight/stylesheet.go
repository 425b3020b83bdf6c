package highlight

import (
	"fmt"
	"strings"

	"github.com/bnema/jsonpeek/internal/domain/entity"
)

// Colors assigns a CSS color to each value class.
type Colors struct {
	Key     string
	String  string
	Number  string
	Boolean string
	Null    string
}

// ThemeColors returns the token colors for a theme.
func ThemeColors(theme entity.Theme) Colors {
	if theme == entity.ThemeDark {
		return Colors{
			Key:     "#9cdcfe",
			String:  "#ce9178",
			Number:  "#b5cea8",
			Boolean: "#569cd6",
			Null:    "#808080",
		}
	}
	return Colors{
		Key:     "#881391",
		String:  "#1a1aa6",
		Number:  "#1c00cf",
		Boolean: "#0d22aa",
		Null:    "#808080",
	}
}

// Color returns the color for a class, or "" for unstyled classes.
func (c Colors) Color(class Class) string {
	switch class {
	case ClassKey:
		return c.Key
	case ClassString:
		return c.String
	case ClassNumber:
		return c.Number
	case ClassBoolean:
		return c.Boolean
	case ClassNull:
		return c.Null
	default:
		return ""
	}
}

// Stylesheet returns CSS rules for the token classes under scope.
// An empty scope styles the classes globally.
func Stylesheet(theme entity.Theme, scope string) string {
	colors := ThemeColors(theme)
	prefix := ""
	if scope != "" {
		prefix = scope + " "
	}

	var b strings.Builder
	for _, class := range []Class{ClassKey, ClassString, ClassNumber, ClassBoolean, ClassNull} {
		fmt.Fprintf(&b, "%s.%s { color: %s; }\n", prefix, class, colors.Color(class))
	}
	return b.String()
}
