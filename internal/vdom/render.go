package vdom

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Stylesheet maps a class attribute (or, failing that, a tag name) to the
// lipgloss style used when rendering the node.
type Stylesheet map[string]lipgloss.Style

func (s Stylesheet) styleFor(n *VNode) (lipgloss.Style, bool) {
	if class := n.Attr("class"); class != "" {
		if st, ok := s[class]; ok {
			return st, true
		}
	}
	st, ok := s[n.Tag]
	return st, ok
}

// Render turns the tree into terminal text. Block elements stack their
// children vertically, row and li lay them out side by side.
func Render(n *VNode, ss Stylesheet) string {
	if n == nil {
		return ""
	}
	parts := make([]string, 0, len(n.Children)+1)
	if n.Content != "" {
		parts = append(parts, n.Content)
	}
	for _, c := range n.Children {
		parts = append(parts, Render(c, ss))
	}

	var out string
	switch n.Tag {
	case "row", "li":
		out = lipgloss.JoinHorizontal(lipgloss.Top, spaced(parts)...)
	case "span":
		out = strings.Join(parts, "")
	case "button":
		out = "[" + strings.Join(parts, "") + "]"
	default:
		out = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	if st, ok := ss.styleFor(n); ok {
		out = st.Render(out)
	}
	if n.Tag == "li" {
		prefix := "  "
		if n.Attr("selected") == "true" {
			prefix = "> "
			if st, ok := ss["selected"]; ok {
				prefix = st.Render(prefix)
			}
		}
		out = prefix + out
	}
	return out
}

func spaced(parts []string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, 2*len(parts)-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, " ")
		}
		out = append(out, p)
	}
	return out
}
