// Package markdown renders a sanitized article tree as Markdown.
// Block, List, Table and Inline are pure functions of their inputs;
// they never fail and degrade unknown structure to pass-through.
package markdown

import (
	"strings"

	"github.com/gaurav-prasanna/wikimd/core"
	"github.com/gaurav-prasanna/wikimd/core/formula"
	"github.com/gaurav-prasanna/wikimd/core/links"
	"github.com/gaurav-prasanna/wikimd/core/tree"
)

// Inline renders one inline-context node. Text is emitted verbatim.
func Inline(n *tree.Node, opts core.Options) string {
	if n.IsText() {
		return n.Data
	}

	if formula.IsMath(n) {
		if opts.IncludeMath {
			return "$" + formula.Extract(n) + "$"
		}
		return n.TextContent()
	}

	switch n.Tag {
	case "strong", "b":
		return "**" + InlineChildren(n, opts) + "**"
	case "em", "i":
		return "*" + InlineChildren(n, opts) + "*"
	case "a":
		return link(n, opts)
	case "code":
		return "`" + n.TextContent() + "`"
	case "br":
		return "\n"
	case "sup", "sub":
		return n.TextContent()
	default:
		return InlineChildren(n, opts)
	}
}

// InlineChildren renders the children of n in order.
func InlineChildren(n *tree.Node, opts core.Options) string {
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(Inline(c, opts))
	}
	return b.String()
}

// link keeps only internal article links as hyperlinks.
func link(n *tree.Node, opts core.Options) string {
	text := strings.TrimSpace(n.TextContent())
	if !opts.PreserveLinks {
		return text
	}
	href, _ := n.Attr("href")
	if links.Classify(href) == links.Internal {
		return "[" + text + "](" + links.Canonical(href) + ")"
	}
	return text
}
