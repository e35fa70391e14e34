// Package tree provides the read-only node model the converter walks.
// A Node is either a text node or an element with a lowercase tag,
// a class set, attributes, ordered children and a parent link.
package tree

import "strings"

// NodeType distinguishes text nodes from elements.
type NodeType int

const (
	TextNode NodeType = iota
	ElementNode
)

// Node is one node of a markup tree.
type Node struct {
	Type     NodeType
	Tag      string // lowercase, elements only
	Data     string // character data, text nodes only
	Classes  map[string]bool
	Attrs    map[string]string
	Children []*Node
	Parent   *Node
}

// NewText creates a detached text node.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// NewElement creates a detached element. The class attribute, if present,
// also populates the class set.
func NewElement(tag string, attrs map[string]string) *Node {
	n := &Node{
		Type:    ElementNode,
		Tag:     strings.ToLower(tag),
		Classes: make(map[string]bool),
		Attrs:   make(map[string]string, len(attrs)),
	}
	for k, v := range attrs {
		n.Attrs[strings.ToLower(k)] = v
	}
	for _, c := range strings.Fields(n.Attrs["class"]) {
		n.Classes[c] = true
	}
	return n
}

// Append adds children to n, fixing their parent links.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.Parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool { return n.Type == TextNode }

// IsElement reports whether n is an element with one of the given tags.
// With no tags it reports whether n is an element at all.
func (n *Node) IsElement(tags ...string) bool {
	if n.Type != ElementNode {
		return false
	}
	if len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if n.Tag == t {
			return true
		}
	}
	return false
}

// HasClass reports class membership.
func (n *Node) HasClass(name string) bool {
	return n.Type == ElementNode && n.Classes[name]
}

// Attr returns an attribute value and whether it was present.
func (n *Node) Attr(name string) (string, bool) {
	if n.Type != ElementNode {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// TextContent concatenates all descendant character data in document order.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Data
	}
	var b strings.Builder
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	for _, c := range n.Children {
		if c.Type == TextNode {
			b.WriteString(c.Data)
			continue
		}
		c.writeText(b)
	}
}

// Closest returns the nearest node, starting with n itself, that satisfies
// match. It returns nil when no ancestor matches.
func (n *Node) Closest(match func(*Node) bool) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if match(cur) {
			return cur
		}
	}
	return nil
}

// Find returns the first descendant of n (excluding n) in document order
// that satisfies match, or nil.
func (n *Node) Find(match func(*Node) bool) *Node {
	for _, c := range n.Children {
		if match(c) {
			return c
		}
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every descendant of n (excluding n) that satisfies match.
func (n *Node) FindAll(match func(*Node) bool) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if match(c) {
			out = append(out, c)
		}
		out = append(out, c.FindAll(match)...)
	}
	return out
}

// ChildElements returns the direct element children with one of the tags.
func (n *Node) ChildElements(tags ...string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.IsElement(tags...) {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns a deep copy of n. The copy's root has no parent.
func (n *Node) Clone() *Node {
	return n.CloneFunc(func(*Node) bool { return true })
}

// CloneFunc returns a deep copy of n that omits every descendant for which
// keep returns false, along with that descendant's subtree. The root is
// always copied.
func (n *Node) CloneFunc(keep func(*Node) bool) *Node {
	cp := &Node{Type: n.Type, Tag: n.Tag, Data: n.Data}
	if n.Type == ElementNode {
		cp.Classes = make(map[string]bool, len(n.Classes))
		for k, v := range n.Classes {
			cp.Classes[k] = v
		}
		cp.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			cp.Attrs[k] = v
		}
	}
	for _, c := range n.Children {
		if !keep(c) {
			continue
		}
		cc := c.CloneFunc(keep)
		cc.Parent = cp
		cp.Children = append(cp.Children, cc)
	}
	return cp
}

// ByTag matches elements with any of the given tags.
func ByTag(tags ...string) func(*Node) bool {
	return func(n *Node) bool { return n.IsElement(tags...) }
}

// ByClass matches elements carrying the class.
func ByClass(name string) func(*Node) bool {
	return func(n *Node) bool { return n.HasClass(name) }
}
