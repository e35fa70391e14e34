package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gaurav-prasanna/wikimd/core"
	"github.com/gaurav-prasanna/wikimd/core/frontmatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMarkdown = "---\n" +
	"title: \"Gopher\"\n" +
	"source: https://en.wikipedia.org/wiki/Gopher\n" +
	"date: 2025-01-02\n" +
	"language: en\n" +
	"---\n" +
	"# Gopher\n\n" +
	"**Gophers** are [rodents](https://en.wikipedia.org/wiki/Rodent) with area $\\pi r^2$.\n\n" +
	"## Diet\n\n" +
	"- Roots\n" +
	"- Bulbs\n" +
	"  1. Tulips\n\n" +
	"| Kind | Count |\n" +
	"| --- | --- |\n" +
	"| a | 1 |\n\n" +
	"<!-- Complex table omitted (contains nested tables or merged cells) -->\n\n" +
	"> quoted\n\n" +
	"$$E=mc^2$$\n\n" +
	"![Cat](https://upload.wikimedia.org/cat.png)\n\n" +
	"---\n"

var sample = core.Succeeded(sampleMarkdown, "Gopher")

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()
	data, err := r.Render(sample)
	require.NoError(t, err)
	assert.Equal(t, sampleMarkdown, string(data))
	assert.Equal(t, ".md", r.Extension())

	_, err = r.Render(core.Failed(core.NotApplicable, core.ErrNotApplicable.Error()))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotApplicable))
}

func TestJSONRenderer(t *testing.T) {
	r := NewJSONRenderer()
	data, err := r.Render(sample)
	require.NoError(t, err)
	assert.Equal(t, ".json", r.Extension())

	var out ArticleJSON
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "Gopher", out.Title)
	require.NotNil(t, out.Metadata)
	assert.Equal(t, "en", out.Metadata.Language)
	assert.Equal(t, "2025-01-02", out.Metadata.Date)

	assert.Equal(t, []Heading{{Level: 1, Text: "Gopher"}, {Level: 2, Text: "Diet"}}, out.Structure.Headings)
	assert.Equal(t, []Link{{Text: "rodents", Href: "https://en.wikipedia.org/wiki/Rodent"}}, out.Structure.Links)
	assert.Equal(t, 1, out.Structure.Tables)
	assert.Equal(t, 1, out.Structure.Omitted)
	assert.Equal(t, 3, out.Structure.ListItems)
	assert.Equal(t, 2, out.Structure.Formulas)
}

func TestJSONRendererWithoutFrontmatter(t *testing.T) {
	data, err := NewJSONRenderer().Render(core.Succeeded("# T\n\nbody\n", "T"))
	require.NoError(t, err)

	var out ArticleJSON
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Nil(t, out.Metadata)
	assert.Equal(t, []Heading{{Level: 1, Text: "T"}}, out.Structure.Headings)
	assert.Empty(t, out.Structure.Links)
}

func TestJSONRendererUnescapedTitle(t *testing.T) {
	now := time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)
	md := frontmatter.Render(`C:\Windows`, "https://en.wikipedia.org/wiki/C:%5CWindows", now) + "# C:\\Windows\n\nbody\n"

	data, err := NewJSONRenderer().Render(core.Succeeded(md, `C:\Windows`))
	require.NoError(t, err)

	var out ArticleJSON
	require.NoError(t, json.Unmarshal(data, &out))
	require.NotNil(t, out.Metadata)
	assert.Equal(t, `C:\Windows`, out.Metadata.Title)
	assert.Len(t, out.Structure.Headings, 1)
}

func TestJSONRendererUnreadableHeader(t *testing.T) {
	data, err := NewJSONRenderer().Render(core.Succeeded("---\njust text\n---\n# T\n", "T"))
	require.NoError(t, err)

	var out ArticleJSON
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Nil(t, out.Metadata)
	assert.Equal(t, []Heading{{Level: 1, Text: "T"}}, out.Structure.Headings)
}

func TestFormulaCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"area $\\pi r^2$ and $x$", 2},
		{"$$E=mc^2$$\n\n", 1},
		{"costs $5 and $10", 0},
		{"from $5 to $ 10", 0},
	}
	for _, tt := range tests {
		assert.Len(t, formulaRegex.FindAllString(tt.text, -1), tt.want, tt.text)
	}
}

func TestPDFRenderer(t *testing.T) {
	r := NewPDFRenderer()
	data, err := r.Render(sample)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Equal(t, ".pdf", r.Extension())

	_, err = r.Render(core.Failed(core.ContentNotFound, "content not found"))
	assert.Error(t, err)
}

func TestCleanInlineMarkdown(t *testing.T) {
	assert.Equal(t, "bold and link and code", cleanInlineMarkdown("**bold** and [link](https://x) and `code`"))
}

func TestForFormat(t *testing.T) {
	for format, ext := range map[string]string{"": ".md", "markdown": ".md", "json": ".json", "pdf": ".pdf"} {
		r, err := ForFormat(format)
		require.NoError(t, err, format)
		assert.Equal(t, ext, r.Extension())
	}
	_, err := ForFormat("docx")
	assert.EqualError(t, err, `unknown format "docx" (allowed: markdown, json, pdf)`)
}
