package markdown

import (
	"strings"

	"github.com/gaurav-prasanna/wikimd/core"
	"github.com/gaurav-prasanna/wikimd/core/formula"
	"github.com/gaurav-prasanna/wikimd/core/links"
	"github.com/gaurav-prasanna/wikimd/core/tree"
)

// blockKind is the closed set of block-level dispatch arms.
type blockKind int

const (
	kindUnknown blockKind = iota
	kindMath
	kindHeading
	kindParagraph
	kindQuote
	kindList
	kindTable
	kindImage
	kindContainer
	kindRule
)

var blockKinds = map[string]blockKind{
	"h1":         kindHeading,
	"h2":         kindHeading,
	"h3":         kindHeading,
	"h4":         kindHeading,
	"h5":         kindHeading,
	"h6":         kindHeading,
	"p":          kindParagraph,
	"blockquote": kindQuote,
	"ul":         kindList,
	"ol":         kindList,
	"table":      kindTable,
	"img":        kindImage,
	"div":        kindContainer,
	"section":    kindContainer,
	"span":       kindContainer,
	"hr":         kindRule,
}

// classify checks math membership before the tag.
func classify(n *tree.Node) blockKind {
	if formula.IsMath(n) {
		return kindMath
	}
	return blockKinds[n.Tag]
}

// Block renders the children of n as Markdown blocks.
func Block(n *tree.Node, opts core.Options, depth int) string {
	var b strings.Builder
	for _, c := range n.Children {
		if c.IsText() {
			if text := strings.TrimSpace(c.Data); text != "" {
				b.WriteString(text + " ")
			}
			continue
		}
		b.WriteString(block(c, opts, depth))
	}
	return b.String()
}

func block(n *tree.Node, opts core.Options, depth int) string {
	switch classify(n) {
	case kindMath:
		return mathBlock(n, opts)
	case kindHeading:
		level := int(n.Tag[1] - '0')
		return strings.Repeat("#", level) + " " + strings.TrimSpace(InlineChildren(n, opts)) + "\n\n"
	case kindParagraph:
		if text := strings.TrimSpace(InlineChildren(n, opts)); text != "" {
			return text + "\n\n"
		}
		return ""
	case kindQuote:
		lines := strings.Split(strings.TrimSpace(InlineChildren(n, opts)), "\n")
		for i, l := range lines {
			lines[i] = "> " + l
		}
		return strings.Join(lines, "\n") + "\n\n"
	case kindList:
		return List(n, opts, depth, n.Tag == "ol")
	case kindTable:
		if opts.IncludeTables {
			return Table(n)
		}
		return ""
	case kindImage:
		return image(n, opts)
	case kindContainer:
		return Block(n, opts, depth)
	case kindRule:
		return "---\n\n"
	default:
		if len(n.Children) > 0 {
			return Block(n, opts, depth)
		}
		return ""
	}
}

func mathBlock(n *tree.Node, opts core.Options) string {
	if !opts.IncludeMath {
		if text := strings.TrimSpace(n.TextContent()); text != "" {
			return text + " "
		}
		return ""
	}
	f := formula.Extract(n)
	if formula.IsDisplay(n) {
		return "$$" + f + "$$\n\n"
	}
	return "$" + f + "$"
}

func image(n *tree.Node, opts core.Options) string {
	if !opts.IncludeImages {
		return ""
	}
	src, _ := n.Attr("src")
	if src == "" {
		return ""
	}
	alt, _ := n.Attr("alt")
	if alt == "" {
		alt = "image"
	}
	return "![" + alt + "](" + links.SecureSrc(src) + ")\n\n"
}
