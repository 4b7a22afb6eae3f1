// Package content holds the case studies and component docs the site
// renders. A Catalog is an immutable snapshot; Store swaps snapshots on
// reload.
package content

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned for unknown slugs.
	ErrNotFound = errors.New("not found")
	// ErrComingSoon is returned when a case study exists but is not yet
	// published.
	ErrComingSoon = errors.New("coming soon")
)

// Stat is a headline number shown under a case study's hero.
type Stat struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Image is an illustration attached to a section.
type Image struct {
	Src     string `json:"src" yaml:"src"`
	Alt     string `json:"alt" yaml:"alt"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// ContentSection is one anchored block of prose. Content is markdown.
type ContentSection struct {
	ID      string   `json:"id" yaml:"id"`
	Title   string   `json:"title" yaml:"title"`
	Content string   `json:"content" yaml:"content"`
	Items   []string `json:"items,omitempty" yaml:"items,omitempty"`
	Image   *Image   `json:"image,omitempty" yaml:"image,omitempty"`
}

// ContentGroup is a top-level part of a case study and one TOC entry.
type ContentGroup struct {
	ID       string           `json:"id" yaml:"id"`
	Title    string           `json:"title" yaml:"title"`
	Sections []ContentSection `json:"sections" yaml:"sections"`
}

// CaseStudy is a long-form project write-up.
type CaseStudy struct {
	Slug          string         `json:"slug" yaml:"slug"`
	Title         string         `json:"title" yaml:"title"`
	Client        string         `json:"client" yaml:"client"`
	Description   string         `json:"description" yaml:"description"`
	Industry      string         `json:"industry" yaml:"industry"`
	Duration      string         `json:"duration" yaml:"duration"`
	TeamSize      string         `json:"teamSize" yaml:"team_size"`
	Tags          []string       `json:"tags" yaml:"tags"`
	Thumbnail     string         `json:"thumbnail" yaml:"thumbnail"`
	Gradient      string         `json:"gradient" yaml:"gradient"`
	ComingSoon    bool           `json:"comingSoon,omitempty" yaml:"coming_soon,omitempty"`
	Stats         []Stat         `json:"stats,omitempty" yaml:"stats,omitempty"`
	ContentGroups []ContentGroup `json:"contentGroups,omitempty" yaml:"content_groups,omitempty"`
}

// Text returns the study's prose for word counting.
func (s CaseStudy) Text() string {
	var b strings.Builder
	b.WriteString(s.Description)
	for _, g := range s.ContentGroups {
		for _, sec := range g.Sections {
			b.WriteString("\n\n")
			b.WriteString(sec.Content)
			for _, item := range sec.Items {
				b.WriteString("\n")
				b.WriteString(item)
			}
		}
	}
	return b.String()
}

// Example is a titled code sample on a component page.
type Example struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Code        string `json:"code" yaml:"code"`
}

// Component documents one UI component.
type Component struct {
	Slug        string    `json:"slug" yaml:"slug"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Install     string    `json:"install,omitempty" yaml:"install,omitempty"`
	Usage       []string  `json:"usage,omitempty" yaml:"usage,omitempty"`
	Examples    []Example `json:"examples" yaml:"examples"`
}
