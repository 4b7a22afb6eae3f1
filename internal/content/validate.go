package content

import (
	"errors"
	"fmt"

	"github.com/dgallion1/folio/internal/doctree"
)

// Validate checks slugs and anchors. Every problem found is reported.
func Validate(studies []CaseStudy, components []Component) error {
	var errs []error

	seen := make(map[string]bool, len(studies))
	for i, s := range studies {
		if err := checkSlug(s.Slug); err != nil {
			errs = append(errs, fmt.Errorf("study %d: %w", i, err))
			continue
		}
		if seen[s.Slug] {
			errs = append(errs, fmt.Errorf("study %q: duplicate slug", s.Slug))
		}
		seen[s.Slug] = true
		if s.Title == "" {
			errs = append(errs, fmt.Errorf("study %q: missing title", s.Slug))
		}
		errs = append(errs, validateGroups(s)...)
	}

	seen = make(map[string]bool, len(components))
	for i, c := range components {
		if err := checkSlug(c.Slug); err != nil {
			errs = append(errs, fmt.Errorf("component %d: %w", i, err))
			continue
		}
		if seen[c.Slug] {
			errs = append(errs, fmt.Errorf("component %q: duplicate slug", c.Slug))
		}
		seen[c.Slug] = true
	}

	return errors.Join(errs...)
}

// validateGroups requires non-empty titles and page-unique anchor ids.
func validateGroups(s CaseStudy) []error {
	var errs []error
	ids := make(map[string]bool)
	claim := func(kind, id, title string) {
		switch {
		case id == "":
			errs = append(errs, fmt.Errorf("study %q: %s %q has no id", s.Slug, kind, title))
		case ids[id]:
			errs = append(errs, fmt.Errorf("study %q: duplicate anchor %q", s.Slug, id))
		}
		ids[id] = true
		if title == "" {
			errs = append(errs, fmt.Errorf("study %q: %s %q has no title", s.Slug, kind, id))
		}
	}
	for _, g := range s.ContentGroups {
		claim("group", g.ID, g.Title)
		for _, sec := range g.Sections {
			claim("section", sec.ID, sec.Title)
		}
	}
	return errs
}

func checkSlug(slug string) error {
	if slug == "" {
		return errors.New("missing slug")
	}
	if doctree.Slugify(slug) != slug {
		return fmt.Errorf("slug %q must be lowercase words joined by hyphens", slug)
	}
	return nil
}
