package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/dgallion1/folio/internal/doctree"
)

// TextParser handles plain text bodies. A line underlined with "=" opens a
// top-level section and one underlined with "-" opens a subsection of it.
// Paragraphs whose lines all start with "- " or "* " become list items.
// Prose before the first heading becomes one untitled leading node.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*doctree.DocTree, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), " \t\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(filename, ".txt"),
	}
	b := textBuilder{tree: tree, ids: idSet{}}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == "" {
			b.flush()
			continue
		}
		if len(b.para) == 0 && i+1 < len(lines) {
			if level := underline(lines[i+1]); level > 0 {
				b.heading(strings.TrimSpace(line), level)
				i++
				continue
			}
		}
		b.para = append(b.para, line)
	}
	b.flush()

	return tree, nil
}

type textBuilder struct {
	tree *doctree.DocTree
	ids  idSet
	para []string
	// top is the open "=" section, cur receives text and items.
	top, cur *doctree.DocNode
	lead     *doctree.DocNode
}

func (b *textBuilder) heading(title string, level int) {
	b.flush()
	node := &doctree.DocNode{ID: b.ids.claim(doctree.Slugify(title)), Title: title}
	if level == 2 && b.top != nil {
		b.top.Children = append(b.top.Children, node)
	} else {
		b.tree.Children = append(b.tree.Children, node)
		b.top = node
	}
	b.cur = node
}

func (b *textBuilder) flush() {
	if len(b.para) == 0 {
		return
	}
	para := b.para
	b.para = nil

	target := b.cur
	if target == nil {
		if b.lead == nil {
			b.lead = &doctree.DocNode{}
			b.tree.Children = append(b.tree.Children, b.lead)
		}
		target = b.lead
	}

	if items, ok := listItems(para); ok {
		target.Items = append(target.Items, items...)
		return
	}
	t := strings.Join(para, "\n")
	if target.Text != "" {
		target.Text += "\n\n" + t
	} else {
		target.Text = t
	}
}

// underline reports 1 for a run of "=", 2 for a run of "-", and 0 otherwise.
// Runs shorter than three characters are not underlines.
func underline(line string) int {
	s := strings.TrimSpace(line)
	if len(s) < 3 || strings.Trim(s, s[:1]) != "" {
		return 0
	}
	switch s[0] {
	case '=':
		return 1
	case '-':
		return 2
	}
	return 0
}

func listItems(para []string) ([]string, bool) {
	items := make([]string, 0, len(para))
	for _, line := range para {
		rest, ok := strings.CutPrefix(line, "- ")
		if !ok {
			rest, ok = strings.CutPrefix(line, "* ")
		}
		if !ok {
			return nil, false
		}
		if rest = strings.TrimSpace(rest); rest != "" {
			items = append(items, rest)
		}
	}
	return items, true
}
