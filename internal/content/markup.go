package content

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Span is a run of paragraph text with its inline emphasis.
type Span struct {
	Text     string
	Strong   bool
	Emphasis bool
	Link     string
}

var markdown = goldmark.New()

// Inline splits a paragraph into styled spans. Only inline markup is
// honoured; block structure collapses into a single paragraph.
func Inline(src string) []Span {
	source := []byte(src)
	doc := markdown.Parser().Parse(text.NewReader(source))

	var spans []Span
	blocks := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Type() == ast.TypeBlock && n.Kind() != ast.KindDocument && n.FirstChild() != nil && n.FirstChild().Type() == ast.TypeInline {
			if blocks > 0 {
				spans = append(spans, Span{Text: " "})
			}
			blocks++
		}
		if al, ok := n.(*ast.AutoLink); ok {
			span := inherit(al)
			span.Text = string(al.Label(source))
			span.Link = string(al.URL(source))
			spans = append(spans, span)
			return ast.WalkSkipChildren, nil
		}
		t, ok := n.(*ast.Text)
		if !ok {
			return ast.WalkContinue, nil
		}
		span := inherit(t)
		span.Text = string(t.Segment.Value(source))
		if t.SoftLineBreak() || t.HardLineBreak() {
			span.Text += " "
		}
		spans = append(spans, span)
		return ast.WalkContinue, nil
	})
	return merge(spans)
}

// inherit collects the emphasis of every ancestor of n.
func inherit(n ast.Node) Span {
	var s Span
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p := p.(type) {
		case *ast.Emphasis:
			if p.Level >= 2 {
				s.Strong = true
			} else {
				s.Emphasis = true
			}
		case *ast.Link:
			if s.Link == "" {
				s.Link = string(p.Destination)
			}
		}
	}
	return s
}

// merge joins neighbouring spans that share a style.
func merge(spans []Span) []Span {
	out := spans[:0]
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		if n := len(out); n > 0 {
			last := &out[n-1]
			if last.Strong == s.Strong && last.Emphasis == s.Emphasis && last.Link == s.Link {
				last.Text += s.Text
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// Plain returns the paragraph without markup.
func Plain(src string) string {
	var out string
	for _, s := range Inline(src) {
		out += s.Text
	}
	return out
}
