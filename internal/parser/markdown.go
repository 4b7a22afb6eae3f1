package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/dgallion1/folio/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings accept an
// explicit anchor with the {#id} attribute syntax; otherwise goldmark
// generates one from the heading text.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(goldmark.WithParserOptions(
		gmparser.WithAttribute(),
		gmparser.WithAutoHeadingID(),
	))
	doc := md.Parser().Parse(text.NewReader(src))

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(strings.TrimSuffix(filename, ".md"), ".markdown"),
	}

	// Walk the AST and build a tree based on heading levels.
	type stackEntry struct {
		node  *doctree.DocNode
		level int
	}

	// Root is level 0; all h1+ nest under it.
	root := &doctree.DocNode{Title: tree.Title}
	stack := []stackEntry{{node: root, level: 0}}
	ids := idSet{}

	var currentText bytes.Buffer

	flushText := func() {
		t := strings.TrimSpace(currentText.String())
		if t != "" {
			top := stack[len(stack)-1].node
			if top.Text != "" {
				top.Text += "\n\n" + t
			} else {
				top.Text = t
			}
		}
		currentText.Reset()
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			flushText()
			level := node.Level
			title := string(node.Text(src))

			newNode := &doctree.DocNode{ID: headingID(node, title, ids), Title: title}

			// Pop stack until we find a parent with lower level.
			for len(stack) > 1 && stack[len(stack)-1].level >= level {
				stack = stack[:len(stack)-1]
			}

			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, newNode)
			stack = append(stack, stackEntry{node: newNode, level: level})

		case *ast.List:
			top := stack[len(stack)-1].node
			for item := node.FirstChild(); item != nil; item = item.NextSibling() {
				if t := extractText(item, src); t != "" {
					top.Items = append(top.Items, t)
				}
			}

		default:
			t := extractText(n, src)
			if t != "" {
				if currentText.Len() > 0 {
					currentText.WriteString("\n\n")
				}
				currentText.WriteString(t)
			}
		}
	}
	flushText()

	tree.Children = root.Children
	// Text before the first heading becomes an untitled leading node.
	if root.Text != "" || len(root.Items) > 0 {
		lead := &doctree.DocNode{Text: root.Text, Items: root.Items}
		tree.Children = append([]*doctree.DocNode{lead}, tree.Children...)
	}

	return tree, nil
}

func headingID(h *ast.Heading, title string, ids idSet) string {
	if v, ok := h.AttributeString("id"); ok {
		if b, ok := v.([]byte); ok && len(b) > 0 {
			id := string(b)
			ids[id]++
			return id
		}
	}
	return ids.claim(doctree.Slugify(title))
}

// extractText returns the markdown source of a block. Leaf blocks are copied
// verbatim so inline markup survives for later rendering; containers join
// their children.
func extractText(n ast.Node, src []byte) string {
	if fence, ok := n.(*ast.FencedCodeBlock); ok {
		var buf bytes.Buffer
		buf.WriteString("```")
		buf.Write(fence.Language(src))
		buf.WriteByte('\n')
		writeLines(&buf, n, src)
		buf.WriteString("```")
		return buf.String()
	}
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		var buf bytes.Buffer
		writeLines(&buf, n, src)
		return strings.TrimSpace(buf.String())
	}

	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t := extractText(c, src); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n")
}

func writeLines(buf *bytes.Buffer, n ast.Node, src []byte) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
}
