package render

import (
	"slices"
	"strings"
)

// Node is a minimal element-tree representation of rendered block markup,
// the host-agnostic stand-in for a DOM subtree.
type Node struct {
	Tag      string
	Classes  []string
	Styles   map[string]string
	Text     string
	Children []*Node
}

// NewElement creates a node with the given tag and CSS classes.
func NewElement(tag string, classes ...string) *Node {
	return &Node{Tag: tag, Classes: classes}
}

// NewText creates a text-glyph node.
func NewText(tag, text string, classes ...string) *Node {
	return &Node{Tag: tag, Text: text, Classes: classes}
}

// AppendChild attaches a child and returns the parent for chaining.
func (n *Node) AppendChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// SetStyle sets one inline style property.
func (n *Node) SetStyle(property, value string) {
	if n.Styles == nil {
		n.Styles = make(map[string]string)
	}
	n.Styles[property] = value
}

// Style returns the inline style value for a property, or "".
func (n *Node) Style(property string) string {
	return n.Styles[property]
}

// HasClass reports whether the node carries the given CSS class.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.Classes, class)
}

// Child resolves a child by index path. Returns nil when the path does not
// exist, so callers can patch speculatively.
func (n *Node) Child(path ...int) *Node {
	cur := n
	for _, idx := range path {
		if cur == nil || idx < 0 || idx >= len(cur.Children) {
			return nil
		}
		cur = cur.Children[idx]
	}
	return cur
}

// ApplyAttribute applies a patch-style attribute mutation. "class" replaces
// the whole class list; names prefixed with "style." set one inline style
// property. Unknown names are ignored.
func (n *Node) ApplyAttribute(name, value string) {
	switch {
	case name == "class":
		n.Classes = strings.Fields(value)
	case strings.HasPrefix(name, "style."):
		n.SetStyle(strings.TrimPrefix(name, "style."), value)
	}
}
