// Package normalize implements the Normalizer interface.
// It tidies the whitespace of assembled Markdown so every conversion
// ends in the same canonical shape.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// MarkdownNormalizer applies Cleanup.
type MarkdownNormalizer struct{}

// New creates a MarkdownNormalizer.
func New() *MarkdownNormalizer {
	return &MarkdownNormalizer{}
}

// Normalize cleans up assembled Markdown.
func (n *MarkdownNormalizer) Normalize(markdown string) string {
	return Cleanup(markdown)
}

// Cleanup trims trailing whitespace on every line, collapses three or more
// newlines to two, drops leading newlines and ends the text with exactly
// one newline. Cleanup(Cleanup(x)) == Cleanup(x).
func Cleanup(text string) string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRightFunc(l, unicode.IsSpace)
	}
	text = strings.Join(lines, "\n")
	text = blankRuns.ReplaceAllString(text, "\n\n")
	text = strings.TrimLeft(text, "\n")
	return strings.TrimRight(text, "\n") + "\n"
}
