package markdown

import (
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/wikimd/core"
	"github.com/gaurav-prasanna/wikimd/core/tree"
)

// List renders the li children of a ul/ol. depth sets the indentation
// (two spaces per level); numbering restarts at 1 in every list and counts
// only li elements. Item text has its whitespace runs collapsed and inline
// children are joined as written, without added spaces.
func List(n *tree.Node, opts core.Options, depth int, ordered bool) string {
	var b strings.Builder
	indent := strings.Repeat("  ", depth)

	for i, item := range n.ChildElements("li") {
		bullet := "- "
		if ordered {
			bullet = strconv.Itoa(i+1) + ". "
		}

		var text strings.Builder
		flush := func() {
			if line := strings.TrimSpace(text.String()); line != "" {
				b.WriteString(indent + bullet + line + "\n")
			}
			text.Reset()
		}

		for _, c := range item.Children {
			switch {
			case c.IsText():
				text.WriteString(collapseSpace(c.Data))
			case c.IsElement("ul", "ol"):
				flush()
				b.WriteString(List(c, opts, depth+1, c.Tag == "ol"))
			default:
				text.WriteString(Inline(c, opts))
			}
		}
		flush()
	}

	if depth == 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// collapseSpace folds whitespace runs into single spaces, keeping a
// leading or trailing space when the input had one.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}
	out := strings.Join(fields, " ")
	if strings.TrimLeft(s, " \t\n\r\f") != s {
		out = " " + out
	}
	if strings.TrimRight(s, " \t\n\r\f") != s {
		out += " "
	}
	return out
}
