// Package vdom is the in-memory node tree components render into. Nodes
// carry stable "testid" attributes so callers and tests can locate parts
// of the tree without depending on the terminal output.
package vdom

import "strings"

// TestIDAttr is the attribute used by FindByTestID.
const TestIDAttr = "testid"

// VNode represents a virtual node.
type VNode struct {
	Tag        string            // element kind: div, span, ul, li, button, pre, p
	Attributes map[string]string // testid, class, selected...
	Children   []*VNode
	Content    string // text shown before the children
}

// NewVNode creates a new VNode.
func NewVNode(tag string, attributes map[string]string, children []*VNode, content string) *VNode {
	if attributes == nil {
		attributes = map[string]string{}
	}
	return &VNode{Tag: tag, Attributes: attributes, Children: children, Content: content}
}

func Div(attrs map[string]string, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Row lays its children out horizontally.
func Row(attrs map[string]string, children ...*VNode) *VNode {
	return NewVNode("row", attrs, children, "")
}

func Span(text string, attrs map[string]string) *VNode { return NewVNode("span", attrs, nil, text) }
func P(text string, attrs map[string]string) *VNode    { return NewVNode("p", attrs, nil, text) }
func Pre(text string, attrs map[string]string) *VNode  { return NewVNode("pre", attrs, nil, text) }

func Button(label string, attrs map[string]string) *VNode {
	return NewVNode("button", attrs, nil, label)
}

func List(attrs map[string]string, children ...*VNode) *VNode {
	return NewVNode("ul", attrs, children, "")
}

func ListItem(attrs map[string]string, children ...*VNode) *VNode {
	return NewVNode("li", attrs, children, "")
}

// Attrs builds an attribute map from key/value pairs.
func Attrs(kv ...string) map[string]string {
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i]] = kv[i+1]
	}
	return m
}

// TestID is shorthand for Attrs("testid", id, ...).
func TestID(id string, kv ...string) map[string]string {
	return Attrs(append([]string{TestIDAttr, id}, kv...)...)
}

func (v *VNode) Attr(name string) string {
	if v == nil {
		return ""
	}
	return v.Attributes[name]
}

// TextContent concatenates the content of v and all its descendants,
// depth first.
func (v *VNode) TextContent() string {
	if v == nil {
		return ""
	}
	var b strings.Builder
	v.walk(func(n *VNode) bool {
		b.WriteString(n.Content)
		return true
	})
	return b.String()
}

// FindByTestID returns the first node in document order with the given
// testid, or nil.
func (v *VNode) FindByTestID(id string) *VNode {
	var found *VNode
	v.walk(func(n *VNode) bool {
		if n.Attributes[TestIDAttr] == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindAllByTestID returns every node with the given testid in document order.
func (v *VNode) FindAllByTestID(id string) []*VNode {
	var out []*VNode
	v.walk(func(n *VNode) bool {
		if n.Attributes[TestIDAttr] == id {
			out = append(out, n)
		}
		return true
	})
	return out
}

// walk visits nodes depth first until fn returns false.
func (v *VNode) walk(fn func(*VNode) bool) bool {
	if v == nil {
		return true
	}
	if !fn(v) {
		return false
	}
	for _, c := range v.Children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}
