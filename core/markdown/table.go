package markdown

import (
	"strings"

	"github.com/gaurav-prasanna/wikimd/core/tree"
)

const (
	emptyTableComment   = "<!-- Empty table omitted -->\n\n"
	complexTableComment = "<!-- Complex table omitted (contains nested tables or merged cells) -->\n\n"
)

// Table renders a table as a pipe table. Tables with merged cells or nested
// tables cannot be represented and are replaced by a comment. The first
// emitted row is always treated as the header row. Rows without cells are
// skipped, so the separator follows the first row that has cells even when
// an empty <tr> precedes it.
func Table(n *tree.Node) string {
	rows := n.FindAll(tree.ByTag("tr"))
	if len(rows) == 0 {
		return emptyTableComment
	}
	if isComplex(n) {
		return complexTableComment
	}

	var lines []string
	for _, row := range rows {
		cells := row.ChildElements("th", "td")
		if len(cells) == 0 {
			continue
		}
		texts := make([]string, len(cells))
		for i, c := range cells {
			texts[i] = cellText(c)
		}
		lines = append(lines, "| "+strings.Join(texts, " | ")+" |")
		if len(lines) == 1 {
			lines = append(lines, "|"+strings.Repeat(" --- |", len(cells)))
		}
	}
	if len(lines) == 0 {
		return emptyTableComment
	}
	return strings.Join(lines, "\n") + "\n\n"
}

func isComplex(n *tree.Node) bool {
	return n.Find(func(c *tree.Node) bool {
		return c.IsElement("table") || c.HasAttr("rowspan") || c.HasAttr("colspan")
	}) != nil
}

func cellText(c *tree.Node) string {
	text := strings.TrimSpace(c.TextContent())
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.ReplaceAll(text, "|", `\|`)
}
