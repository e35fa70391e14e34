// Package formula recovers TeX source from rendered math nodes.
// Wikipedia ships formulas as MathML with a TeX annotation, as a fallback
// image whose alt text is the TeX, or as plain text; Extract tries them in
// that order.
package formula

import (
	"strings"

	"github.com/gaurav-prasanna/wikimd/core/tree"
)

const (
	mathClass        = "mwe-math-element"
	displayContainer = "mw-math-display"
	displayClass     = "mwe-math-mathml-display"
	texEncoding      = "application/x-tex"
	fallbackInline   = "mwe-math-fallback-image-inline"
	fallbackDisplay  = "mwe-math-fallback-image-display"
)

// IsMath reports whether n is a math-bearing element.
func IsMath(n *tree.Node) bool {
	return n.HasClass(mathClass)
}

// IsDisplay reports whether n is display math: wrapped by a display-math
// definition list or carrying the display class itself.
func IsDisplay(n *tree.Node) bool {
	if n.HasClass(displayClass) {
		return true
	}
	return n.Closest(func(a *tree.Node) bool {
		return a.IsElement("dl") && a.HasClass(displayContainer)
	}) != nil
}

// Extract returns the formula source of n. It never fails; the result may
// be empty.
func Extract(n *tree.Node) string {
	annotation := n.Find(func(c *tree.Node) bool {
		if !c.IsElement("annotation") {
			return false
		}
		enc, _ := c.Attr("encoding")
		return enc == texEncoding
	})
	if annotation != nil {
		return strings.TrimSpace(annotation.TextContent())
	}

	img := n.Find(func(c *tree.Node) bool {
		return c.IsElement("img") && (c.HasClass(fallbackInline) || c.HasClass(fallbackDisplay))
	})
	if img != nil {
		if alt, _ := img.Attr("alt"); alt != "" {
			return strings.TrimSpace(alt)
		}
	}

	return strings.TrimSpace(n.TextContent())
}
