package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePage = `<!DOCTYPE html>
<html lang="en"><body>
<h1 id="firstHeading" class="firstHeading">  <span>Go (programming language)</span>  </h1>
<div id="mw-content-text">
  <div class="mw-content-ltr mw-parser-output"><p>Go is a language.</p></div>
</div>
<div class="mw-parser-output"><p>outside content text</p></div>
</body></html>`

func TestPage(t *testing.T) {
	p, err := Parse(samplePage, "https://en.wikipedia.org/wiki/Go_(programming_language)")
	require.NoError(t, err)

	assert.Equal(t, "/wiki/Go_(programming_language)", p.Path())
	assert.Equal(t, "https://en.wikipedia.org/wiki/Go_(programming_language)", p.URL())
	assert.Equal(t, "Go (programming language)", p.Title())

	root, ok := p.ContentRoot()
	require.True(t, ok)
	assert.True(t, root.HasClass("mw-parser-output"))
	assert.Nil(t, root.Parent)
	assert.Equal(t, "Go is a language.", root.TextContent())
}

func TestPageMissingPieces(t *testing.T) {
	p, err := Parse(`<html><body><div class="mw-parser-output">x</div></body></html>`, "")
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, p.Title())
	_, ok := p.ContentRoot()
	assert.False(t, ok)
}
