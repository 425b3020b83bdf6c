// Package highlight renders JSON values as classed token streams.
//
// One Render call produces a Styled value that can be emitted as plain text,
// as escaped HTML with classed spans, or through a caller-supplied Palette.
// The plain form is always the canonical serialization, so highlighting never
// changes what the user would copy.
package highlight

import (
	"html"
	"strings"

	"github.com/bnema/jsonpeek/internal/domain/jsonvalue"
)

// MaxIndent caps the indent width, as JSON.stringify does.
const MaxIndent = 10

// Class is the display class of a token.
type Class string

const (
	ClassNone        Class = ""
	ClassKey         Class = "key"
	ClassString      Class = "string"
	ClassNumber      Class = "number"
	ClassBoolean     Class = "boolean"
	ClassNull        Class = "null"
	ClassPunctuation Class = "punctuation"
)

// Token is a run of output text with one class.
type Token struct {
	Class Class
	Text  string
}

// Styled is the output of Render.
type Styled struct {
	Tokens []Token
}

// Palette paints a token for a terminal or another non-HTML surface.
type Palette interface {
	Paint(class Class, text string) string
}

// Render walks v and returns its highlighted serialization.
// indent <= 0 yields the compact form.
func Render(v jsonvalue.Value, indent int) Styled {
	r := &renderer{indent: indentUnit(indent)}
	r.value(v, 0)
	return Styled{Tokens: r.tokens}
}

// Serialize returns the canonical text of v with the given indent.
func Serialize(v jsonvalue.Value, indent int) string {
	return Render(v, indent).Plain()
}

// Compact returns the minified text of v.
func Compact(v jsonvalue.Value) string {
	return Serialize(v, 0)
}

// Plain returns the text with all styling stripped.
func (s Styled) Plain() string {
	var b strings.Builder
	for _, t := range s.Tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// HTML returns escaped markup with value and key tokens wrapped in classed spans.
func (s Styled) HTML() string {
	var b strings.Builder
	for _, t := range s.Tokens {
		text := html.EscapeString(t.Text)
		if !t.Class.Spanned() {
			b.WriteString(text)
			continue
		}
		b.WriteString(`<span class="`)
		b.WriteString(string(t.Class))
		b.WriteString(`">`)
		b.WriteString(text)
		b.WriteString(`</span>`)
	}
	return b.String()
}

// Paint renders every token through p.
func (s Styled) Paint(p Palette) string {
	var b strings.Builder
	for _, t := range s.Tokens {
		b.WriteString(p.Paint(t.Class, t.Text))
	}
	return b.String()
}

// Spanned reports whether the class gets its own element in HTML output.
func (c Class) Spanned() bool {
	switch c {
	case ClassKey, ClassString, ClassNumber, ClassBoolean, ClassNull:
		return true
	default:
		return false
	}
}

func indentUnit(indent int) string {
	if indent <= 0 {
		return ""
	}
	if indent > MaxIndent {
		indent = MaxIndent
	}
	return strings.Repeat(" ", indent)
}

type renderer struct {
	indent string
	tokens []Token
}

func (r *renderer) emit(class Class, text string) {
	r.tokens = append(r.tokens, Token{Class: class, Text: text})
}

func (r *renderer) newline(depth int) {
	if r.indent == "" {
		return
	}
	r.emit(ClassNone, "\n"+strings.Repeat(r.indent, depth))
}

func (r *renderer) value(v jsonvalue.Value, depth int) {
	switch v.Kind() {
	case jsonvalue.KindObject:
		r.object(v, depth)
	case jsonvalue.KindArray:
		r.array(v, depth)
	case jsonvalue.KindString:
		r.emit(ClassString, Quote(v.Text()))
	case jsonvalue.KindNumber:
		r.emit(ClassNumber, v.Text())
	case jsonvalue.KindBool:
		if v.Bool() {
			r.emit(ClassBoolean, "true")
		} else {
			r.emit(ClassBoolean, "false")
		}
	default:
		r.emit(ClassNull, "null")
	}
}

func (r *renderer) object(v jsonvalue.Value, depth int) {
	r.emit(ClassPunctuation, "{")
	members := v.Members()
	if len(members) == 0 {
		r.emit(ClassPunctuation, "}")
		return
	}
	colon := ":"
	if r.indent != "" {
		colon = ": "
	}
	for i, m := range members {
		if i > 0 {
			r.emit(ClassPunctuation, ",")
		}
		r.newline(depth + 1)
		r.emit(ClassKey, Quote(m.Key))
		r.emit(ClassPunctuation, colon)
		r.value(m.Value, depth+1)
	}
	r.newline(depth)
	r.emit(ClassPunctuation, "}")
}

func (r *renderer) array(v jsonvalue.Value, depth int) {
	r.emit(ClassPunctuation, "[")
	items := v.Items()
	if len(items) == 0 {
		r.emit(ClassPunctuation, "]")
		return
	}
	for i, item := range items {
		if i > 0 {
			r.emit(ClassPunctuation, ",")
		}
		r.newline(depth + 1)
		r.value(item, depth+1)
	}
	r.newline(depth)
	r.emit(ClassPunctuation, "]")
}
