package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/dgallion1/folio/internal/doctree"
	"github.com/dgallion1/folio/internal/parser"
	"gopkg.in/yaml.v3"
)

//go:embed data
var embedded embed.FS

// index is the studies.yaml document.
type index struct {
	Studies []string `yaml:"studies"`
}

// Embedded loads the content compiled into the binary.
func Embedded() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadDir loads content from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads a content tree:
//
//	studies.yaml             display order
//	studies/<slug>.yaml      study metadata, optionally with content_groups
//	studies/<slug>.md|.html  optional body, split into groups by heading
//	components/<slug>.yaml   component docs
func LoadFS(fsys fs.FS) (*Catalog, error) {
	studies, err := loadStudies(fsys)
	if err != nil {
		return nil, err
	}
	components, err := loadComponents(fsys)
	if err != nil {
		return nil, err
	}
	return New(studies, components)
}

func loadStudies(fsys fs.FS) ([]CaseStudy, error) {
	var idx index
	if err := readYAML(fsys, "studies.yaml", &idx); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	files, err := fs.Glob(fsys, "studies/*.yaml")
	if err != nil {
		return nil, err
	}
	bySlug := make(map[string]CaseStudy, len(files))
	for _, name := range files {
		var s CaseStudy
		if err := readYAML(fsys, name, &s); err != nil {
			return nil, err
		}
		if s.Slug == "" {
			s.Slug = strings.TrimSuffix(path.Base(name), ".yaml")
		}
		if err := loadBody(fsys, &s); err != nil {
			return nil, err
		}
		bySlug[s.Slug] = s
	}

	studies := make([]CaseStudy, 0, len(bySlug))
	for _, slug := range idx.Studies {
		s, ok := bySlug[slug]
		if !ok {
			return nil, fmt.Errorf("studies.yaml: no study file for %q", slug)
		}
		studies = append(studies, s)
		delete(bySlug, slug)
	}

	// Studies missing from the index go last, alphabetically.
	rest := make([]string, 0, len(bySlug))
	for slug := range bySlug {
		rest = append(rest, slug)
	}
	sort.Strings(rest)
	for _, slug := range rest {
		studies = append(studies, bySlug[slug])
	}
	return studies, nil
}

// loadBody parses studies/<slug>.<ext> into content groups when present.
func loadBody(fsys fs.FS, s *CaseStudy) error {
	for _, ext := range parser.SupportedExtensions {
		name := "studies/" + s.Slug + ext
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if len(s.ContentGroups) > 0 {
			return fmt.Errorf("%s: study already defines content_groups", name)
		}

		p, err := parser.ForFile(name)
		if err != nil {
			return err
		}
		tree, err := p.Parse(bytes.NewReader(data), path.Base(name))
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		lead, groups := groupsFromTree(tree)
		if s.Description == "" {
			s.Description = lead
		}
		s.ContentGroups = groups
		return nil
	}
	return nil
}

// leadGroupID names the group that holds prose written before the first
// heading.
const leadGroupID = "overview"

// groupsFromTree maps top-level headings to groups and their subheadings to
// sections. Prose directly under a group heading becomes an intro section.
// Untitled leading text becomes an "overview" group, or the first section of
// one when the body already has an overview heading. The lead text is also
// returned for use as a fallback description.
func groupsFromTree(tree *doctree.DocTree) (string, []ContentGroup) {
	var lead []string
	var leadItems []string
	var groups []ContentGroup
	for _, n := range tree.Children {
		if n.Title == "" {
			if n.Text != "" {
				lead = append(lead, n.Text)
			}
			leadItems = append(leadItems, n.Items...)
			continue
		}
		g := ContentGroup{ID: n.ID, Title: n.Title}
		if n.Text != "" || len(n.Items) > 0 {
			g.Sections = append(g.Sections, ContentSection{
				ID:      n.ID + "-intro",
				Title:   n.Title,
				Content: n.Text,
				Items:   n.Items,
			})
		}
		for _, c := range n.Children {
			g.Sections = append(g.Sections, sectionFromNode(c))
		}
		groups = append(groups, g)
	}

	text := strings.Join(lead, "\n\n")
	if text == "" && len(leadItems) == 0 {
		return text, groups
	}
	for i := range groups {
		if groups[i].ID == leadGroupID {
			sec := ContentSection{ID: leadGroupID + "-lead", Title: groups[i].Title, Content: text, Items: leadItems}
			groups[i].Sections = append([]ContentSection{sec}, groups[i].Sections...)
			return text, groups
		}
	}
	overview := ContentGroup{
		ID:    leadGroupID,
		Title: "Overview",
		Sections: []ContentSection{{
			ID:      leadGroupID + "-intro",
			Title:   "Overview",
			Content: text,
			Items:   leadItems,
		}},
	}
	return text, append([]ContentGroup{overview}, groups...)
}

// sectionFromNode folds deeper headings into the section's markdown.
func sectionFromNode(n *doctree.DocNode) ContentSection {
	sec := ContentSection{ID: n.ID, Title: n.Title, Content: n.Text, Items: n.Items}
	var parts []string
	if n.Text != "" {
		parts = append(parts, n.Text)
	}
	sub := &doctree.DocTree{Children: n.Children}
	sub.Walk(func(c *doctree.DocNode, _ int) bool {
		if c.Title != "" {
			parts = append(parts, "**"+c.Title+"**")
		}
		if c.Text != "" {
			parts = append(parts, c.Text)
		}
		sec.Items = append(sec.Items, c.Items...)
		return true
	})
	sec.Content = strings.Join(parts, "\n\n")
	return sec
}

func loadComponents(fsys fs.FS) ([]Component, error) {
	files, err := fs.Glob(fsys, "components/*.yaml")
	if err != nil {
		return nil, err
	}
	components := make([]Component, 0, len(files))
	for _, name := range files {
		var c Component
		if err := readYAML(fsys, name, &c); err != nil {
			return nil, err
		}
		if c.Slug == "" {
			c.Slug = strings.TrimSuffix(path.Base(name), ".yaml")
		}
		components = append(components, c)
	}
	return components, nil
}

func readYAML(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
