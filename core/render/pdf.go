// Package render: PDF renderer.
// Lays out converted Markdown with gofpdf: headings at graded sizes,
// paragraphs, indented list items, quotes, pipe-table rows and display
// formulas in a monospace face. Images are listed by alt text only.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/gaurav-prasanna/wikimd/core"
	"github.com/gaurav-prasanna/wikimd/core/frontmatter"
	"github.com/jung-kurt/gofpdf"
)

var (
	orderedItemRegex = regexp.MustCompile(`^(\s*)(\d+\.)\s+(.*)$`)
	bulletItemRegex  = regexp.MustCompile(`^(\s*)- (.*)$`)
	separatorRegex   = regexp.MustCompile(`^\|( --- \|)+$`)
	imageRegex       = regexp.MustCompile(`^!\[([^\]]*)\]\([^)]+\)$`)
	linkRegex        = regexp.MustCompile(`\[([^\]]*)\]\([^)]+\)`)
	emphasisRegex    = regexp.MustCompile(`\*{1,3}([^*]+)\*{1,3}`)
	codeRegex        = regexp.MustCompile("`([^`]+)`")
)

// PDFRenderer renders converted articles as PDF documents.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the result Markdown into PDF bytes.
func (r *PDFRenderer) Render(result core.Result) ([]byte, error) {
	if !result.Success {
		return nil, fmt.Errorf("nothing to render: %w", result.Err())
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(result.Title, true)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	body := result.Markdown
	if meta, ok, err := frontmatter.Parse(body); err == nil && ok {
		_, body, _ = frontmatter.Split(body)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+meta.Source+" ("+meta.Date+", "+meta.Language+")"), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(4)
	}

	for _, line := range strings.Split(body, "\n") {
		renderLine(pdf, tr, line)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func renderLine(pdf *gofpdf.Fpdf, tr func(string) string, line string) {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		pdf.Ln(3)

	case trimmed == "---":
		y := pdf.GetY() + 2
		pdf.Line(10, y, 200, y)
		pdf.Ln(5)

	case strings.HasPrefix(trimmed, "#"):
		level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
		renderHeading(pdf, tr(cleanInlineMarkdown(trimmed[level:])), level)

	case strings.HasPrefix(trimmed, "$$"):
		pdf.SetFont("Courier", "", 9)
		pdf.MultiCell(0, 5, tr(strings.Trim(trimmed, "$")), "", "C", false)

	case strings.HasPrefix(trimmed, "<!--"):
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(120, 120, 120)
		pdf.MultiCell(0, 5, tr(strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(trimmed, "<!--"), "-->"))), "", "L", false)
		pdf.SetTextColor(0, 0, 0)

	case separatorRegex.MatchString(trimmed):
		// header separator carries no content

	case strings.HasPrefix(trimmed, "|"):
		pdf.SetFont("Courier", "", 9)
		pdf.SetFillColor(245, 245, 245)
		pdf.MultiCell(0, 4.5, tr(trimmed), "", "L", true)

	case strings.HasPrefix(trimmed, "> "):
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetX(pdf.GetX() + 6)
		pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed[2:])), "", "L", false)

	case imageRegex.MatchString(trimmed):
		alt := imageRegex.FindStringSubmatch(trimmed)[1]
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, tr("[image: "+alt+"]"), "", "L", false)

	case bulletItemRegex.MatchString(line):
		m := bulletItemRegex.FindStringSubmatch(line)
		renderListItem(pdf, tr, len(m[1])/2, "• ", m[2])

	case orderedItemRegex.MatchString(line):
		m := orderedItemRegex.FindStringSubmatch(line)
		renderListItem(pdf, tr, len(m[1])/2, m[2]+" ", m[3])

	default:
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(cleanInlineMarkdown(trimmed)), "", "L", false)
	}
}

func renderListItem(pdf *gofpdf.Fpdf, tr func(string) string, depth int, bullet, text string) {
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(10 + float64(depth)*6)
	pdf.MultiCell(0, 5, tr(bullet+cleanInlineMarkdown(text)), "", "L", false)
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(2)
}

// cleanInlineMarkdown strips inline Markdown formatting for PDF rendering.
func cleanInlineMarkdown(text string) string {
	text = linkRegex.ReplaceAllString(text, "$1")
	text = emphasisRegex.ReplaceAllString(text, "$1")
	text = codeRegex.ReplaceAllString(text, "$1")
	return strings.TrimSpace(text)
}
