// Package extract implements the core.Document interface for full
// Wikipedia pages. It locates the article pieces with CSS selectors:
//  1. the title heading (#firstHeading)
//  2. the content root (#mw-content-text .mw-parser-output)
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gaurav-prasanna/wikimd/core/links"
	"github.com/gaurav-prasanna/wikimd/core/tree"
)

const (
	titleSelector   = "#firstHeading"
	contentSelector = "#mw-content-text .mw-parser-output"

	// DefaultTitle is used when the page has no title heading.
	DefaultTitle = "Wikipedia Article"
)

// Page is a parsed article page together with its location.
type Page struct {
	doc *goquery.Document
	url string
}

// Parse parses raw page HTML. pageURL is the page's address; it drives
// the applicability check and is recorded in frontmatter.
func Parse(html, pageURL string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return &Page{doc: doc, url: pageURL}, nil
}

// Path returns the URL path of the page.
func (p *Page) Path() string {
	return links.PathOf(p.url)
}

// URL returns the full page URL.
func (p *Page) URL() string {
	return p.url
}

// Title returns the trimmed title heading text.
func (p *Page) Title() string {
	sel := p.doc.Find(titleSelector).First()
	if sel.Length() == 0 {
		return DefaultTitle
	}
	return strings.TrimSpace(sel.Text())
}

// ContentRoot converts the article body into a Node tree.
func (p *Page) ContentRoot() (*tree.Node, bool) {
	sel := p.doc.Find(contentSelector).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return tree.FromHTML(sel.Get(0)), true
}
