package content

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/dgallion1/folio/internal/doctree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedded(t *testing.T) {
	c, err := Embedded()
	require.NoError(t, err)

	studies := c.Studies()
	require.Len(t, studies, 6)
	assert.Equal(t, "commercial-analytics-hub", studies[0].Slug)
	assert.Equal(t, "ecommerce-platform", studies[1].Slug)

	published := c.Published()
	require.Len(t, published, 1)

	hub := published[0]
	var ids []string
	for _, g := range hub.ContentGroups {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []string{
		"overview", "context", "problem", "goals", "role", "research",
		"ia", "design", "evolution", "impact", "closing",
	}, ids)

	overview := hub.ContentGroups[0]
	require.Len(t, overview.Sections, 3)
	assert.Equal(t, "overview-intro", overview.Sections[0].ID)
	assert.Equal(t, "What is the Commercial Analytics Hub?", overview.Sections[0].Title)

	start := hub.ContentGroups[1].Sections[1]
	assert.Equal(t, "context-starting-point", start.ID)
	assert.Len(t, start.Items, 5)

	_, err = c.Study("ecommerce-platform")
	assert.True(t, errors.Is(err, ErrComingSoon))

	var names []string
	for _, comp := range c.Components() {
		names = append(names, comp.Name)
	}
	assert.Equal(t, []string{"Accordion", "Button", "Card"}, names)

	button, err := c.Component("button")
	require.NoError(t, err)
	assert.Equal(t, "npx shadcn@latest add button", button.Install)
	assert.Equal(t, `<Button variant="outline">Button</Button>`, button.Usage[1])
	assert.Len(t, button.Examples, 8)
}

func TestLoadFS_OrderAndBodies(t *testing.T) {
	fsys := fstest.MapFS{
		"studies.yaml":         {Data: []byte("studies: [second, first]\n")},
		"studies/first.yaml":   {Data: []byte("title: First\n")},
		"studies/second.yaml":  {Data: []byte("slug: second\ntitle: Second\n")},
		"studies/extra.yaml":   {Data: []byte("title: Extra\n")},
		"studies/first.md":     {Data: []byte("Lead paragraph.\n\n# Goals {#goals}\n\nWhy.\n\n- fast\n\n## Speed\n\nQuick.\n\n### Detail\n\nDeep.\n")},
		"studies/second.html":  {Data: []byte(`<body><h2 id="setup">Setup</h2><h3>Install</h3><p>Run it.</p></body>`)},
		"components/tabs.yaml": {Data: []byte("description: Tabs.\nexamples:\n  - title: Basic\n    code: <Tabs />\n")},
	}

	c, err := LoadFS(fsys)
	require.NoError(t, err)

	var slugs []string
	for _, s := range c.Studies() {
		slugs = append(slugs, s.Slug)
	}
	assert.Equal(t, []string{"second", "first", "extra"}, slugs)

	first, err := c.Study("first")
	require.NoError(t, err)
	assert.Equal(t, "Lead paragraph.", first.Description)
	require.Len(t, first.ContentGroups, 2)
	assert.Equal(t, ContentGroup{ID: "overview", Title: "Overview", Sections: []ContentSection{
		{ID: "overview-intro", Title: "Overview", Content: "Lead paragraph."},
	}}, first.ContentGroups[0])
	goals := first.ContentGroups[1]
	assert.Equal(t, "goals", goals.ID)
	require.Len(t, goals.Sections, 2)
	assert.Equal(t, ContentSection{ID: "goals-intro", Title: "Goals", Content: "Why.", Items: []string{"fast"}}, goals.Sections[0])
	assert.Equal(t, "speed", goals.Sections[1].ID)
	assert.Equal(t, "Quick.\n\n**Detail**\n\nDeep.", goals.Sections[1].Content)

	second, err := c.Study("second")
	require.NoError(t, err)
	require.Len(t, second.ContentGroups, 1)
	assert.Equal(t, "setup", second.ContentGroups[0].ID)
	assert.Equal(t, "install", second.ContentGroups[0].Sections[0].ID)

	tabs, err := c.Component("tabs")
	require.NoError(t, err)
	assert.Equal(t, "Tabs", tabs.Name)
}

func TestLoadFS_TextBodyKeepsLeadProse(t *testing.T) {
	fsys := fstest.MapFS{
		"studies/plain.yaml": {Data: []byte("title: Plain\ndescription: Short blurb.\n")},
		"studies/plain.txt":  {Data: []byte("We rebuilt the billing flow.\n\nIt took a quarter.\n\n- fewer tickets\n- faster checkout\n\nOutcome\n=======\nRevenue grew.\n")},
	}

	c, err := LoadFS(fsys)
	require.NoError(t, err)
	plain, err := c.Study("plain")
	require.NoError(t, err)

	assert.Equal(t, "Short blurb.", plain.Description)
	require.Len(t, plain.ContentGroups, 2)
	overview := plain.ContentGroups[0]
	assert.Equal(t, "overview", overview.ID)
	require.Len(t, overview.Sections, 1)
	assert.Equal(t, "We rebuilt the billing flow.\n\nIt took a quarter.", overview.Sections[0].Content)
	assert.Equal(t, []string{"fewer tickets", "faster checkout"}, overview.Sections[0].Items)
	assert.Equal(t, "outcome", plain.ContentGroups[1].ID)
	assert.Contains(t, plain.Text(), "billing flow")

	var ids []string
	for _, e := range TOC(plain) {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"overview", "outcome"}, ids)
}

func TestGroupsFromTree_LeadJoinsExistingOverview(t *testing.T) {
	tree := &doctree.DocTree{Children: []*doctree.DocNode{
		{Text: "Before."},
		{ID: "overview", Title: "At a Glance", Text: "Under."},
	}}
	lead, groups := groupsFromTree(tree)
	assert.Equal(t, "Before.", lead)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Sections, 2)
	assert.Equal(t, ContentSection{ID: "overview-lead", Title: "At a Glance", Content: "Before."}, groups[0].Sections[0])
	assert.Equal(t, "overview-intro", groups[0].Sections[1].ID)
}

func TestLoadFS_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{
			name: "index names missing study",
			fsys: fstest.MapFS{"studies.yaml": {Data: []byte("studies: [ghost]\n")}},
			want: `no study file for "ghost"`,
		},
		{
			name: "unknown field",
			fsys: fstest.MapFS{"studies/a.yaml": {Data: []byte("title: A\ncolour: red\n")}},
			want: "decode studies/a.yaml",
		},
		{
			name: "body and inline groups",
			fsys: fstest.MapFS{
				"studies/a.yaml": {Data: []byte("title: A\ncontent_groups:\n  - id: x\n    title: X\n")},
				"studies/a.md":   {Data: []byte("# Y\n")},
			},
			want: "already defines content_groups",
		},
		{
			name: "invalid content",
			fsys: fstest.MapFS{"studies/a.yaml": {Data: []byte("slug: a\n")}},
			want: "missing title",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFS(tt.fsys)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFS_Empty(t *testing.T) {
	c, err := LoadFS(fstest.MapFS{"studies.yaml": {Data: []byte("")}})
	require.NoError(t, err)
	assert.Empty(t, c.Studies())
	assert.Empty(t, c.Components())
}
