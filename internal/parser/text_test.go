package parser

import (
	"strings"
	"testing"
)

func TestTextParser_LeadParagraphs(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\n\n\nSecond paragraph.\n   \nThird paragraph."
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", tree.Title)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 lead node, got %d", len(tree.Children))
	}
	lead := tree.Children[0]
	if lead.Title != "" || lead.ID != "" {
		t.Errorf("lead node should be untitled, got %q/%q", lead.ID, lead.Title)
	}
	want := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	if lead.Text != want {
		t.Errorf("expected %q, got %q", want, lead.Text)
	}
}

func TestTextParser_UnderlinedHeadings(t *testing.T) {
	input := `Intro before any heading.

Goals
=====
Ship faster.

Less toil.

- fast
* small

Speed
-----
Quick.

Goals
=====
Again.
`
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(input), "study.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 3 {
		t.Fatalf("expected lead plus 2 sections, got %d", len(tree.Children))
	}
	if tree.Children[0].Text != "Intro before any heading." {
		t.Errorf("lead text: got %q", tree.Children[0].Text)
	}

	goals := tree.Children[1]
	if goals.ID != "goals" || goals.Title != "Goals" {
		t.Errorf("expected goals section, got %q/%q", goals.ID, goals.Title)
	}
	if goals.Text != "Ship faster.\n\nLess toil." {
		t.Errorf("goals text: got %q", goals.Text)
	}
	if len(goals.Items) != 2 || goals.Items[0] != "fast" || goals.Items[1] != "small" {
		t.Errorf("goals items: got %v", goals.Items)
	}
	if len(goals.Children) != 1 {
		t.Fatalf("expected 1 subsection, got %d", len(goals.Children))
	}
	if speed := goals.Children[0]; speed.ID != "speed" || speed.Text != "Quick." {
		t.Errorf("subsection: got %q with %q", speed.ID, speed.Text)
	}

	if dup := tree.Children[2]; dup.ID != "goals-1" {
		t.Errorf("duplicate heading should get a suffixed id, got %q", dup.ID)
	}
}

func TestTextParser_DashUnderlineWithoutSection(t *testing.T) {
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader("Notes\n---\nBody."), "n.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 1 || tree.Children[0].ID != "notes" {
		t.Fatalf("subsection with no open section should be top-level, got %+v", tree.Children)
	}
}

func TestTextParser_UnderlineNeedsFreshParagraph(t *testing.T) {
	// A rule below a multi-line paragraph is prose, not a heading.
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader("one\ntwo\n===="), "p.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 1 || tree.Children[0].Title != "" {
		t.Fatalf("expected one untitled node, got %+v", tree.Children)
	}
	if tree.Children[0].Text != "one\ntwo\n====" {
		t.Errorf("got %q", tree.Children[0].Text)
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	tree, err := p.Parse(strings.NewReader(" \n\n\t\n"), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Title != "empty" {
		t.Errorf("expected title %q, got %q", "empty", tree.Title)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected 0 children for blank input, got %d", len(tree.Children))
	}
}
