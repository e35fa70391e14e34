package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuildsConsistentTree(t *testing.T) {
	root, err := Parse(`<div class="a b" id="x"><p>Hello <b>bold</b></p><!-- gone --></div>`)
	require.NoError(t, err)
	require.Equal(t, "body", root.Tag)
	require.Len(t, root.Children, 1)

	div := root.Children[0]
	assert.True(t, div.IsElement("div"))
	assert.True(t, div.HasClass("a"))
	assert.True(t, div.HasClass("b"))
	assert.False(t, div.HasClass("c"))
	id, ok := div.Attr("id")
	assert.True(t, ok)
	assert.Equal(t, "x", id)

	// the comment is dropped
	require.Len(t, div.Children, 1)
	p := div.Children[0]
	assert.Same(t, div, p.Parent)
	for _, c := range p.Children {
		assert.Same(t, p, c.Parent)
	}
	assert.Equal(t, "Hello bold", div.TextContent())
}

func TestClosestAndFind(t *testing.T) {
	root, err := Parse(`<dl class="mw-math-display"><dd><span class="m">x</span></dd></dl>`)
	require.NoError(t, err)

	span := root.Find(ByClass("m"))
	require.NotNil(t, span)
	dl := span.Closest(func(n *Node) bool { return n.IsElement("dl") && n.HasClass("mw-math-display") })
	require.NotNil(t, dl)
	assert.Equal(t, "dl", dl.Tag)
	assert.Same(t, span, span.Closest(ByClass("m")))
	assert.Nil(t, span.Closest(ByTag("table")))
}

func TestFindAllDocumentOrder(t *testing.T) {
	root, err := Parse(`<ul><li>a<ul><li>b</li></ul></li><li>c</li></ul>`)
	require.NoError(t, err)

	items := root.FindAll(ByTag("li"))
	require.Len(t, items, 3)
	assert.Equal(t, "ab", items[0].TextContent())
	assert.Equal(t, "b", items[1].TextContent())
	assert.Equal(t, "c", items[2].TextContent())
	assert.Len(t, root.Children[0].ChildElements("li"), 2)
}

func TestCloneFuncLeavesSourceUntouched(t *testing.T) {
	root, err := Parse(`<div><span class="drop">x</span><span>y</span></div>`)
	require.NoError(t, err)

	cp := root.CloneFunc(func(n *Node) bool { return !n.HasClass("drop") })
	assert.Nil(t, cp.Parent)
	assert.Equal(t, "y", cp.TextContent())
	assert.Equal(t, "xy", root.TextContent())

	cp.Children[0].Attrs["id"] = "changed"
	assert.False(t, root.Children[0].HasAttr("id"))
	assert.Same(t, cp, cp.Children[0].Parent)
}

func TestNewElementLowercases(t *testing.T) {
	n := NewElement("DIV", map[string]string{"Class": "one two"})
	assert.Equal(t, "div", n.Tag)
	assert.True(t, n.HasClass("two"))
	assert.False(t, NewText("x").HasClass("two"))
	assert.True(t, NewText("x").IsText())
}
