// Package render: JSON renderer.
// Wraps a conversion result with its frontmatter metadata and a structural
// summary (headings, links, tables, list items, formulas) read back from the
// produced Markdown with goldmark.
package render

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/wikimd/core"
	"github.com/gaurav-prasanna/wikimd/core/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Heading is a single heading found in the Markdown.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link is a hyperlink found in the Markdown.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// Structure summarizes the Markdown body.
type Structure struct {
	Headings  []Heading `json:"headings"`
	Links     []Link    `json:"links"`
	Tables    int       `json:"tables"`
	ListItems int       `json:"list_items"`
	Formulas  int       `json:"formulas"`
	Omitted   int       `json:"omitted_tables"`
}

// ArticleJSON is the complete JSON output for one article.
type ArticleJSON struct {
	Title     string                `json:"title"`
	Metadata  *frontmatter.Metadata `json:"metadata,omitempty"`
	Markdown  string                `json:"markdown"`
	Structure Structure             `json:"structure"`
}

// formulaRegex matches $$display$$ and $inline$ spans. Inline spans may
// not start or end with whitespace, so prose such as "$5 and $10" is not
// counted. Text is emitted unescaped, so the count is a heuristic.
var formulaRegex = regexp.MustCompile(`\$\$[^$]+\$\$|\$[^\s$](?:[^$\n]*[^\s$])?\$`)

// JSONRenderer produces structured JSON output from a result.
type JSONRenderer struct {
	md goldmark.Markdown
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render converts the result into the JSON document.
func (r *JSONRenderer) Render(result core.Result) ([]byte, error) {
	if !result.Success {
		return nil, fmt.Errorf("nothing to render: %w", result.Err())
	}

	out := ArticleJSON{
		Title:    result.Title,
		Markdown: result.Markdown,
	}

	body := result.Markdown
	if _, rest, ok := frontmatter.Split(result.Markdown); ok {
		body = rest
		// An unreadable header is reported as absent metadata.
		if meta, _, err := frontmatter.Parse(result.Markdown); err == nil {
			out.Metadata = &meta
		}
	}
	out.Structure = r.summarize(body)

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

func (r *JSONRenderer) summarize(body string) Structure {
	src := []byte(body)
	doc := r.md.Parser().Parse(text.NewReader(src))

	s := Structure{
		Headings: []Heading{},
		Links:    []Link{},
		Formulas: len(formulaRegex.FindAllString(body, -1)),
	}
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			s.Headings = append(s.Headings, Heading{Level: node.Level, Text: plainText(node, src)})
		case *ast.Link:
			s.Links = append(s.Links, Link{Text: plainText(node, src), Href: string(node.Destination)})
		case *ast.ListItem:
			s.ListItems++
		case *extast.Table:
			s.Tables++
		case *ast.HTMLBlock:
			if strings.Contains(blockText(node, src), "table omitted") {
				s.Omitted++
			}
		}
		return ast.WalkContinue, nil
	})
	return s
}

// plainText concatenates the text segments below n.
func plainText(n ast.Node, src []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.TrimSpace(b.String())
}

func blockText(n *ast.HTMLBlock, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return strings.ToLower(b.String())
}
