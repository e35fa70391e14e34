// Package sanitize removes non-content nodes from an article tree.
// It never mutates its input: Sanitize returns a filtered deep copy.
package sanitize

import (
	"strings"

	"github.com/gaurav-prasanna/wikimd/core/tree"
)

// Rule is a named denylist predicate.
type Rule struct {
	Name  string
	Match func(*tree.Node) bool
}

// removedClasses are page chrome that carry no article content.
var removedClasses = []string{
	"mw-editsection", // edit section links
	"reference",      // citation reference brackets
	"navbox",         // navigation boxes
	"ambox",          // article message boxes
	"sistersitebox",  // sister site boxes
	"toc",            // table of contents
	"infobox",        // infoboxes
	"metadata",       // metadata panels
	"catlinks",       // category links
	"printfooter",    // print footer
	"mw-jump-link",   // jump links
	"noprint",        // no-print markers
	"hatnote",        // hat notes
	"mw-empty-elt",   // empty elements
}

// Rules is the fixed denylist, applied independently per node.
var Rules = buildRules()

func buildRules() []Rule {
	rules := make([]Rule, 0, len(removedClasses)+4)
	for _, class := range removedClasses {
		rules = append(rules, Rule{Name: "." + class, Match: tree.ByClass(class)})
	}
	return append(rules,
		Rule{Name: "#toc", Match: func(n *tree.Node) bool {
			id, _ := n.Attr("id")
			return id == "toc"
		}},
		Rule{Name: "style", Match: tree.ByTag("style")},
		Rule{Name: "script", Match: tree.ByTag("script")},
		Rule{Name: "display:none", Match: hidden},
	)
}

// hidden matches inline display:none styling, with or without the space.
func hidden(n *tree.Node) bool {
	style, ok := n.Attr("style")
	if !ok {
		return false
	}
	return strings.Contains(style, "display: none") || strings.Contains(style, "display:none")
}

// Removed reports whether any rule matches n.
func Removed(n *tree.Node) bool {
	for _, r := range Rules {
		if r.Match(n) {
			return true
		}
	}
	return false
}

// Sanitize returns a deep copy of root with every matching descendant
// removed. The root itself is always kept.
func Sanitize(root *tree.Node) *tree.Node {
	return root.CloneFunc(func(n *tree.Node) bool { return !Removed(n) })
}
