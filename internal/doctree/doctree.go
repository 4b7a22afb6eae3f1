package doctree

import (
	"strings"
	"unicode"
)

// DocTree is the root of a parsed document.
type DocTree struct {
	Title    string     // Document title (from <title> or filename)
	Children []*DocNode // Top-level sections
}

// DocNode is a recursive section in the document tree.
type DocNode struct {
	ID       string     // Anchor id (explicit or slugified from Title; empty for leaf text)
	Title    string     // Section heading (empty for leaf text)
	Text     string     // Prose content of this node
	Items    []string   // List items found directly under this heading
	Children []*DocNode // Subsections
}

// Walk visits every node depth-first in document order. Returning false
// from fn skips the node's children.
func (t *DocTree) Walk(fn func(n *DocNode, depth int) bool) {
	var walk func(nodes []*DocNode, depth int)
	walk = func(nodes []*DocNode, depth int) {
		for _, n := range nodes {
			if fn(n, depth) {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(t.Children, 0)
}

// Slugify turns a heading into an anchor id: lowercase letters and digits
// separated by single hyphens.
func Slugify(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}
	return b.String()
}
