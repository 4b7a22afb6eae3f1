package content

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dgallion1/folio/internal/toc"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Catalog is an immutable snapshot of all site content.
type Catalog struct {
	studies    []CaseStudy
	studyIdx   map[string]int
	components []Component
	compIdx    map[string]int
}

// New validates the content and builds a catalog. Studies keep the given
// order, which is display order; components are sorted by name.
func New(studies []CaseStudy, components []Component) (*Catalog, error) {
	if err := Validate(studies, components); err != nil {
		return nil, err
	}

	c := &Catalog{
		studies:    append([]CaseStudy(nil), studies...),
		studyIdx:   make(map[string]int, len(studies)),
		components: make([]Component, len(components)),
		compIdx:    make(map[string]int, len(components)),
	}
	for i, s := range c.studies {
		c.studyIdx[s.Slug] = i
	}

	copy(c.components, components)
	for i := range c.components {
		if c.components[i].Name == "" {
			c.components[i].Name = DisplayName(c.components[i].Slug)
		}
	}
	sort.SliceStable(c.components, func(i, j int) bool {
		return strings.ToLower(c.components[i].Name) < strings.ToLower(c.components[j].Name)
	})
	for i, comp := range c.components {
		c.compIdx[comp.Slug] = i
	}
	return c, nil
}

// Studies returns every case study in display order.
func (c *Catalog) Studies() []CaseStudy {
	return append([]CaseStudy(nil), c.studies...)
}

// Published returns the studies that have a detail page.
func (c *Catalog) Published() []CaseStudy {
	var out []CaseStudy
	for _, s := range c.studies {
		if !s.ComingSoon {
			out = append(out, s)
		}
	}
	return out
}

// Study looks up a published case study. A coming-soon study is returned
// together with ErrComingSoon.
func (c *Catalog) Study(slug string) (CaseStudy, error) {
	i, ok := c.studyIdx[slug]
	if !ok {
		return CaseStudy{}, fmt.Errorf("case study %q: %w", slug, ErrNotFound)
	}
	s := c.studies[i]
	if s.ComingSoon {
		return s, fmt.Errorf("case study %q: %w", slug, ErrComingSoon)
	}
	return s, nil
}

// Adjacent returns the studies before and after slug in display order.
// Either is nil at the ends of the list or when slug is unknown.
func (c *Catalog) Adjacent(slug string) (prev, next *CaseStudy) {
	i, ok := c.studyIdx[slug]
	if !ok {
		return nil, nil
	}
	if i > 0 {
		p := c.studies[i-1]
		prev = &p
	}
	if i < len(c.studies)-1 {
		n := c.studies[i+1]
		next = &n
	}
	return prev, next
}

// Components returns every component sorted by display name.
func (c *Catalog) Components() []Component {
	return append([]Component(nil), c.components...)
}

// Component looks up a component by slug.
func (c *Catalog) Component(slug string) (Component, error) {
	i, ok := c.compIdx[slug]
	if !ok {
		return Component{}, fmt.Errorf("component %q: %w", slug, ErrNotFound)
	}
	return c.components[i], nil
}

// Groups returns the study's content groups, or the default outline when it
// has none.
func Groups(s CaseStudy) []ContentGroup {
	if len(s.ContentGroups) > 0 {
		return s.ContentGroups
	}
	return DefaultGroups(s)
}

// TOC lists one entry per content group, in document order.
func TOC(s CaseStudy) []toc.Entry {
	groups := Groups(s)
	entries := make([]toc.Entry, 0, len(groups))
	for _, g := range groups {
		entries = append(entries, toc.Entry{ID: g.ID, Title: g.Title})
	}
	return entries
}

// DisplayName derives a title from a slug: "date-picker" becomes
// "Date Picker".
func DisplayName(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}
