package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_HeadingsAndIDs(t *testing.T) {
	input := `<html><head><title>Analytics Hub</title></head><body>
<header><h1>Site Header</h1></header>
<h2 id="overview">Overview</h2>
<p>The client needed a dashboard.</p>
<h3>Key Goals</h3>
<ul><li>Realtime charts</li><li>SSO</li></ul>
<h2>Tech Stack</h2>
<p>Go and templ.</p>
<script>var x = 1;</script>
</body></html>`

	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader(input), "hub.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "Analytics Hub" {
		t.Errorf("expected title from <title>, got %q", tree.Title)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 h2 children, got %d", len(tree.Children))
	}

	overview := tree.Children[0]
	if overview.ID != "overview" || overview.Text != "The client needed a dashboard." {
		t.Errorf("unexpected overview node %+v", overview)
	}
	if len(overview.Children) != 1 {
		t.Fatalf("expected 1 h3 child, got %d", len(overview.Children))
	}
	goals := overview.Children[0]
	if goals.ID != "key-goals" {
		t.Errorf("expected slugified id %q, got %q", "key-goals", goals.ID)
	}
	if len(goals.Items) != 2 || goals.Items[0] != "Realtime charts" || goals.Items[1] != "SSO" {
		t.Errorf("unexpected items %q", goals.Items)
	}

	stack := tree.Children[1]
	if stack.ID != "tech-stack" {
		t.Errorf("expected %q, got %q", "tech-stack", stack.ID)
	}
	if strings.Contains(stack.Text, "var x") {
		t.Errorf("script content leaked into text: %q", stack.Text)
	}
}

func TestHTMLParser_DuplicateHeadings(t *testing.T) {
	input := `<body><h2>Notes</h2><p>a</p><h2>Notes</h2><p>b</p></body>`

	p := &HTMLParser{}
	tree, err := p.Parse(strings.NewReader(input), "dup.htm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(tree.Children))
	}
	if tree.Children[0].ID != "notes" || tree.Children[1].ID != "notes-1" {
		t.Errorf("expected notes/notes-1, got %q/%q", tree.Children[0].ID, tree.Children[1].ID)
	}
	if tree.Title != "dup" {
		t.Errorf("expected title from filename, got %q", tree.Title)
	}
}
