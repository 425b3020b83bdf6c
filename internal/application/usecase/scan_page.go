package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/jsonpeek/internal/domain/entity"
	"github.com/bnema/jsonpeek/internal/domain/highlight"
	"github.com/bnema/jsonpeek/internal/domain/jsonvalue"
	"github.com/bnema/jsonpeek/internal/logging"
)

// Markup added to scanned documents.
const (
	FormattedClass     = "formatted-json"
	FormatButtonClass  = "jsonpeek-format"
	FormatButtonAttr   = "data-jsonpeek-format"
	FormatButtonLabel  = "Format JSON"
	stylesheetScope    = "pre." + FormattedClass
	stylesheetMarkAttr = "data-jsonpeek-style"
)

// PageScanner finds <pre> blocks holding JSON in an HTML document and
// replaces their content with highlighted markup.
type PageScanner struct {
	theme entity.Theme
}

// NewPageScanner creates a scanner that styles output with theme.
func NewPageScanner(theme entity.Theme) *PageScanner {
	return &PageScanner{theme: theme}
}

// Block is one <pre> element that held JSON.
type Block struct {
	node      *html.Node
	Text      string
	Formatted bool
}

// ScanResult is a parsed document and the JSON blocks found in it.
type ScanResult struct {
	doc    *html.Node
	Blocks []*Block
}

// Augmented returns how many blocks were rewritten.
func (r *ScanResult) Augmented() int {
	n := 0
	for _, b := range r.Blocks {
		if b.Formatted {
			n++
		}
	}
	return n
}

// Render writes the (possibly modified) document to w.
func (r *ScanResult) Render(w io.Writer) error {
	return html.Render(w, r.doc)
}

// Scan parses the document and highlights every <pre> whose text is JSON
// but not already laid out with the given indent. Blocks that are not JSON
// are left alone.
func (s *PageScanner) Scan(ctx context.Context, r io.Reader, indent int) (*ScanResult, error) {
	log := logging.FromContext(ctx)

	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	result := &ScanResult{doc: doc}
	for _, pre := range findAll(doc, atom.Pre) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text := textContent(pre)
		v, err := jsonvalue.Parse(text)
		if err != nil {
			continue
		}

		block := &Block{node: pre, Text: text}
		result.Blocks = append(result.Blocks, block)
		if highlight.Serialize(v, indent) == text {
			continue
		}

		block.render(v, indent)
		addClass(pre, FormattedClass)
		insertFormatButton(pre)
	}

	if result.Augmented() > 0 {
		s.injectStylesheet(doc)
	}

	log.Debug().
		Int("json_blocks", len(result.Blocks)).
		Int("augmented", result.Augmented()).
		Msg("page scanned")
	return result, nil
}

// Format re-renders the block from its current text, as the format button does.
func (b *Block) Format(indent int) error {
	v, err := jsonvalue.Parse(textContent(b.node))
	if err != nil {
		return err
	}
	b.render(v, indent)
	return nil
}

func (b *Block) render(v jsonvalue.Value, indent int) {
	for c := b.node.FirstChild; c != nil; {
		next := c.NextSibling
		b.node.RemoveChild(c)
		c = next
	}
	for _, n := range styledNodes(highlight.Render(v, indent)) {
		b.node.AppendChild(n)
	}
	b.Text = textContent(b.node)
	b.Formatted = true
}

// styledNodes converts tokens to text nodes, wrapping classed ones in spans.
// Text nodes are escaped by the renderer.
func styledNodes(s highlight.Styled) []*html.Node {
	nodes := make([]*html.Node, 0, len(s.Tokens))
	var pending strings.Builder
	flush := func() {
		if pending.Len() > 0 {
			nodes = append(nodes, &html.Node{Type: html.TextNode, Data: pending.String()})
			pending.Reset()
		}
	}

	for _, t := range s.Tokens {
		if !t.Class.Spanned() {
			pending.WriteString(t.Text)
			continue
		}
		flush()
		span := &html.Node{
			Type:     html.ElementNode,
			DataAtom: atom.Span,
			Data:     "span",
			Attr:     []html.Attribute{{Key: "class", Val: string(t.Class)}},
		}
		span.AppendChild(&html.Node{Type: html.TextNode, Data: t.Text})
		nodes = append(nodes, span)
	}
	flush()
	return nodes
}

func (s *PageScanner) injectStylesheet(doc *html.Node) {
	heads := findAll(doc, atom.Head)
	if len(heads) == 0 {
		return
	}
	head := heads[0]
	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.DataAtom == atom.Style && hasAttr(c, stylesheetMarkAttr) {
			return
		}
	}

	style := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr:     []html.Attribute{{Key: stylesheetMarkAttr}},
	}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: highlight.Stylesheet(s.theme, stylesheetScope)})
	head.AppendChild(style)
}

func insertFormatButton(pre *html.Node) {
	if pre.Parent == nil {
		return
	}
	if next := pre.NextSibling; next != nil && next.DataAtom == atom.Button && hasAttr(next, FormatButtonAttr) {
		return
	}

	btn := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Button,
		Data:     "button",
		Attr: []html.Attribute{
			{Key: "class", Val: FormatButtonClass},
			{Key: FormatButtonAttr},
		},
	}
	btn.AppendChild(&html.Node{Type: html.TextNode, Data: FormatButtonLabel})
	pre.Parent.InsertBefore(btn, pre.NextSibling)
}

func findAll(root *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func addClass(n *html.Node, class string) {
	for i, a := range n.Attr {
		if a.Key != "class" {
			continue
		}
		for _, existing := range strings.Fields(a.Val) {
			if existing == class {
				return
			}
		}
		n.Attr[i].Val = strings.TrimSpace(a.Val + " " + class)
		return
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
}

// ScanSource names a document and opens it for reading.
type ScanSource struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// ScanAll scans every source concurrently, at most workers at a time.
// Results keep the order of sources. The first failure cancels the rest.
func (s *PageScanner) ScanAll(ctx context.Context, sources []ScanSource, indent, workers int) ([]*ScanResult, error) {
	results := make([]*ScanResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, src := range sources {
		g.Go(func() error {
			rc, err := src.Open()
			if err != nil {
				return fmt.Errorf("%s: %w", src.Name, err)
			}
			defer rc.Close()

			res, err := s.Scan(logging.WithAction(gctx, src.Name), rc, indent)
			if err != nil {
				return fmt.Errorf("%s: %w", src.Name, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
