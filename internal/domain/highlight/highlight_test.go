package highlight_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/jsonpeek/internal/domain/highlight"
	"github.com/bnema/jsonpeek/internal/domain/jsonvalue"
)

var propertyInputs = []string{
	`{"a":1,"b":[true,null]}`,
	`[]`,
	`{}`,
	`[{},[],{"x":[]}]`,
	`"just a string"`,
	`-3.5`,
	`null`,
	`{"nested":{"deep":{"deeper":[1,2,{"k":"v"}]}},"tail":false}`,
	`{"quote":"say \"hi\"","slash":"a\\b","nl":"line\nbreak","tab":"\t"}`,
	`{"html":"<script>alert(1)</script> & more"}`,
	`{"unicode":"héllo 世界 🎉"}`,
}

func mustParse(t *testing.T, s string) jsonvalue.Value {
	t.Helper()
	v, err := jsonvalue.Parse(s)
	require.NoError(t, err)
	return v
}

func TestRender_SpecExample(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":[true,null]}`)

	styled := highlight.Render(v, 2)

	want := "{\n  \"a\": 1,\n  \"b\": [\n    true,\n    null\n  ]\n}"
	assert.Equal(t, want, styled.Plain())

	classes := map[string]highlight.Class{}
	for _, tok := range styled.Tokens {
		if tok.Class != highlight.ClassNone && tok.Class != highlight.ClassPunctuation {
			classes[tok.Text] = tok.Class
		}
	}
	assert.Equal(t, highlight.ClassKey, classes[`"a"`])
	assert.Equal(t, highlight.ClassKey, classes[`"b"`])
	assert.Equal(t, highlight.ClassNumber, classes["1"])
	assert.Equal(t, highlight.ClassBoolean, classes["true"])
	assert.Equal(t, highlight.ClassNull, classes["null"])
}

func TestRender_PlainMatchesIndentedSerialization(t *testing.T) {
	for _, in := range propertyInputs {
		for _, n := range []int{0, 1, 2, 4} {
			v := mustParse(t, in)

			var want bytes.Buffer
			if n == 0 {
				require.NoError(t, json.Compact(&want, []byte(in)))
			} else {
				require.NoError(t, json.Indent(&want, []byte(in), "", strings.Repeat(" ", n)))
			}

			assert.Equal(t, want.String(), highlight.Render(v, n).Plain(), "input %s indent %d", in, n)
			assert.Equal(t, highlight.Serialize(v, n), highlight.Render(v, n).Plain())
		}
	}
}

func TestRender_KeepsNumberLiterals(t *testing.T) {
	v := mustParse(t, `[-3.25e10,1.0,100000000000000000000001]`)
	assert.Equal(t, "[\n  -3.25e10,\n  1.0,\n  100000000000000000000001\n]", highlight.Serialize(v, 2))
}

func TestRender_BracketsMatchContainerKind(t *testing.T) {
	styled := highlight.Render(mustParse(t, `{"a":[1]}`), 2)

	var punct []string
	for _, tok := range styled.Tokens {
		if tok.Class == highlight.ClassPunctuation && tok.Text != ": " && tok.Text != "," {
			punct = append(punct, tok.Text)
		}
	}
	assert.Equal(t, []string{"{", "[", "]", "}"}, punct)
}

func TestRender_IndentClampedToTen(t *testing.T) {
	v := mustParse(t, `[1]`)
	assert.Equal(t, "[\n"+strings.Repeat(" ", 10)+"1\n]", highlight.Serialize(v, 25))
	assert.Equal(t, "[1]", highlight.Serialize(v, -4))
}

func TestCompact(t *testing.T) {
	v := mustParse(t, "{\n  \"a\" : [ 1 , 2 ],\n  \"b\": {}\n}")
	assert.Equal(t, `{"a":[1,2],"b":{}}`, highlight.Compact(v))
}

func TestHTML_EscapesUserContent(t *testing.T) {
	v := mustParse(t, `{"<k>":"<script>alert('x')</script>&"}`)

	out := highlight.Render(v, 0).HTML()

	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<k>")
	assert.Contains(t, out, `<span class="key">&#34;&lt;k&gt;&#34;</span>`)
	assert.Contains(t, out, `&lt;script&gt;`)
	assert.Contains(t, out, `&amp;`)
}

func TestHTML_StripsBackToPlain(t *testing.T) {
	v := mustParse(t, `{"a":1,"b":[true,null,"s"]}`)
	out := highlight.Render(v, 2).HTML()

	assert.Equal(t, `{
  <span class="key">&#34;a&#34;</span>: <span class="number">1</span>,
  <span class="key">&#34;b&#34;</span>: [
    <span class="boolean">true</span>,
    <span class="null">null</span>,
    <span class="string">&#34;s&#34;</span>
  ]
}`, out)
}

type bracketPalette struct{}

func (bracketPalette) Paint(class highlight.Class, text string) string {
	if class == highlight.ClassNone || class == highlight.ClassPunctuation {
		return text
	}
	return "<" + string(class) + ">" + text
}

func TestPaint_UsesPalette(t *testing.T) {
	out := highlight.Render(mustParse(t, `{"a":false}`), 0).Paint(bracketPalette{})
	assert.Equal(t, `{<key>"a":<boolean>false}`, out)
}

func TestQuote(t *testing.T) {
	tests := map[string]string{
		"plain":        `"plain"`,
		`a"b`:          `"a\"b"`,
		`a\b`:          `"a\\b"`,
		"\b\f\n\r\t":   `"\b\f\n\r\t"`,
		"\x01\x1f":     `"\u0001\u001f"`,
		"<>&":          `"<>&"`,
		"\u2028sep":    "\"\u2028sep\"",
	}
	for in, want := range tests {
		assert.Equal(t, want, highlight.Quote(in))
	}
}

func TestTruncateAndPreview(t *testing.T) {
	assert.Equal(t, "abc", highlight.Truncate("abc", 5))
	assert.Equal(t, "ab...", highlight.Truncate("abcdef", 2))
	assert.Equal(t, "世界...", highlight.Truncate("世界和平", 2))
	assert.Equal(t, "", highlight.Truncate("abc", 0))
	assert.Equal(t, "&lt;b&gt;...", highlight.Preview("<b>bold</b>", 3))
}
