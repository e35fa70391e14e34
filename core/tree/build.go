package tree

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// FromHTML converts an html.Node subtree into a detached Node tree.
// Comments, doctypes and other non-content nodes are dropped; a document
// node yields its root element's conversion.
func FromHTML(src *html.Node) *Node {
	switch src.Type {
	case html.DocumentNode:
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				return FromHTML(c)
			}
		}
		return NewElement("html", nil)
	case html.TextNode:
		return NewText(src.Data)
	case html.ElementNode:
		attrs := make(map[string]string, len(src.Attr))
		for _, a := range src.Attr {
			attrs[a.Key] = a.Val
		}
		n := NewElement(src.Data, attrs)
		for c := src.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.TextNode && c.Type != html.ElementNode {
				continue
			}
			n.Append(FromHTML(c))
		}
		return n
	default:
		return NewText("")
	}
}

// Parse parses an HTML fragment and returns its body element as a Node.
// It is mainly a convenience for callers that hold raw markup.
func Parse(markup string) (*Node, error) {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	body := findBody(doc)
	if body == nil {
		return nil, fmt.Errorf("parsing HTML: no body element")
	}
	return FromHTML(body), nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findBody(c); found != nil {
			return found
		}
	}
	return nil
}
