package content

import (
	"errors"
	"testing"

	"github.com/dgallion1/folio/internal/toc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStudies() []CaseStudy {
	return []CaseStudy{
		{Slug: "alpha", Title: "Alpha", Client: "Acme", ContentGroups: []ContentGroup{
			{ID: "intro", Title: "Intro", Sections: []ContentSection{{ID: "intro-a", Title: "A", Content: "one two three"}}},
			{ID: "outcome", Title: "Outcome"},
		}},
		{Slug: "beta", Title: "Coming Soon", ComingSoon: true},
		{Slug: "gamma", Title: "Gamma", Client: "Globex", Tags: []string{"Go", "templ"}},
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New(testStudies(), []Component{
		{Slug: "tooltip", Name: "Tooltip"},
		{Slug: "date-picker"},
		{Slug: "accordion", Name: "Accordion"},
	})
	require.NoError(t, err)
	return c
}

func TestCatalog_StudiesKeepOrder(t *testing.T) {
	c := testCatalog(t)

	var slugs []string
	for _, s := range c.Studies() {
		slugs = append(slugs, s.Slug)
	}
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, slugs)

	slugs = nil
	for _, s := range c.Published() {
		slugs = append(slugs, s.Slug)
	}
	assert.Equal(t, []string{"alpha", "gamma"}, slugs)
}

func TestCatalog_Study(t *testing.T) {
	c := testCatalog(t)

	s, err := c.Study("alpha")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", s.Title)

	_, err = c.Study("nope")
	assert.True(t, errors.Is(err, ErrNotFound))

	s, err = c.Study("beta")
	assert.True(t, errors.Is(err, ErrComingSoon))
	assert.Equal(t, "beta", s.Slug)
}

func TestCatalog_Adjacent(t *testing.T) {
	c := testCatalog(t)

	prev, next := c.Adjacent("alpha")
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "beta", next.Slug)

	prev, next = c.Adjacent("beta")
	assert.Equal(t, "alpha", prev.Slug)
	assert.Equal(t, "gamma", next.Slug)

	prev, next = c.Adjacent("gamma")
	assert.Equal(t, "beta", prev.Slug)
	assert.Nil(t, next)

	prev, next = c.Adjacent("unknown")
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestCatalog_Components(t *testing.T) {
	c := testCatalog(t)

	var names []string
	for _, comp := range c.Components() {
		names = append(names, comp.Name)
	}
	assert.Equal(t, []string{"Accordion", "Date Picker", "Tooltip"}, names)

	comp, err := c.Component("date-picker")
	require.NoError(t, err)
	assert.Equal(t, "Date Picker", comp.Name)

	_, err = c.Component("missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestTOC_FromGroups(t *testing.T) {
	s := testStudies()[0]
	assert.Equal(t, []toc.Entry{
		{ID: "intro", Title: "Intro"},
		{ID: "outcome", Title: "Outcome"},
	}, TOC(s))
}

func TestTOC_DefaultOutline(t *testing.T) {
	s := testStudies()[2]
	assert.Equal(t, []toc.Entry{
		{ID: "overview", Title: "Overview"},
		{ID: "challenge", Title: "The Challenge"},
		{ID: "solution", Title: "Our Solution"},
		{ID: "tech-stack", Title: "Technical Stack"},
		{ID: "results", Title: "Results"},
		{ID: "testimonial", Title: "Testimonial"},
	}, TOC(s))

	groups := DefaultGroups(s)
	require.Len(t, groups, 6)
	assert.Contains(t, groups[0].Sections[0].Content, "Globex")
	assert.Equal(t, []string{"Go", "templ"}, groups[3].Sections[0].Items)
	// The default outline must itself be valid.
	s.ContentGroups = groups
	assert.NoError(t, Validate([]CaseStudy{s}, nil))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Button", DisplayName("button"))
	assert.Equal(t, "Date Picker", DisplayName("date-picker"))
	assert.Equal(t, "", DisplayName(""))
}

func TestCaseStudyText(t *testing.T) {
	s := CaseStudy{Description: "desc", ContentGroups: []ContentGroup{{Sections: []ContentSection{
		{Content: "body", Items: []string{"x", "y"}},
	}}}}
	assert.Equal(t, "desc\n\nbody\nx\ny", s.Text())
}

func TestValidate(t *testing.T) {
	studies := []CaseStudy{
		{Slug: "ok", Title: "OK"},
		{Slug: "ok", Title: "Dup"},
		{Slug: "Bad Slug", Title: "x"},
		{Slug: "no-title"},
		{Slug: "anchors", Title: "Anchors", ContentGroups: []ContentGroup{
			{ID: "a", Title: "A", Sections: []ContentSection{{ID: "a", Title: "Again"}, {ID: "", Title: "Blank"}}},
		}},
	}
	err := Validate(studies, []Component{{Slug: "x"}, {Slug: "x"}, {}})
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		`study "ok": duplicate slug`,
		`slug "Bad Slug" must be lowercase`,
		`study "no-title": missing title`,
		`duplicate anchor "a"`,
		`section "Blank" has no id`,
		`component "x": duplicate slug`,
		`component 2: missing slug`,
	} {
		assert.Contains(t, msg, want)
	}

	_, err = New(studies, nil)
	assert.Error(t, err)
}
