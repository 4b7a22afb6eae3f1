package export

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dgallion1/folio/internal/config"
	"github.com/dgallion1/folio/internal/content"
	"github.com/dgallion1/folio/internal/session"
	"github.com/dgallion1/folio/internal/site"
	"github.com/dgallion1/folio/internal/toc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFileFor(t *testing.T) {
	out := filepath.FromSlash("/tmp/site")
	assert.Equal(t, filepath.Join(out, "index.html"), FileFor(out, "/"))
	assert.Equal(t, filepath.Join(out, "docs", "index.html"), FileFor(out, "/docs"))
	assert.Equal(t, filepath.Join(out, "docs", "components", "button", "index.html"), FileFor(out, "/docs/components/button/"))
	assert.Equal(t, filepath.Join(out, "etc", "index.html"), FileFor(out, "/../etc"))
}

func TestPages_SkipsComingSoon(t *testing.T) {
	cat, err := content.Embedded()
	require.NoError(t, err)

	var paths []string
	for _, p := range Pages(cat) {
		paths = append(paths, p.Path)
	}
	assert.Equal(t, []string{
		"/",
		"/case-studies",
		"/case-studies/coming-soon",
		"/case-studies/commercial-analytics-hub",
		"/docs",
		"/docs/components",
		"/docs/components/accordion",
		"/docs/components/button",
		"/docs/components/card",
	}, paths)
	assert.NotEmpty(t, Pages(cat)[3].TOC)
}

func TestExporter_Site(t *testing.T) {
	store, err := content.NewStore(content.Embedded, testLogger())
	require.NoError(t, err)
	v, err := config.New("")
	require.NoError(t, err)
	reg := session.NewRegistry(time.Minute, 0, testLogger())
	srv := site.NewServer(store, reg, testLogger(), config.Load(v))

	out := t.TempDir()
	sum, err := New(srv, out, 3, testLogger()).Run(context.Background(), Pages(store.Catalog()))
	require.NoError(t, err)

	assert.Equal(t, 9, sum.Pages)
	assert.Equal(t, 2, sum.Assets)
	assert.Empty(t, sum.Failed())
	assert.Empty(t, sum.MissingAnchors())
	assert.Positive(t, sum.Bytes)
	assert.Contains(t, sum.String(), "9 pages")

	for _, name := range []string{
		"index.html",
		"case-studies/commercial-analytics-hub/index.html",
		"docs/components/button/index.html",
		"404.html",
		"static/site.js",
		"static/site.css",
	} {
		_, err := os.Stat(filepath.Join(out, filepath.FromSlash(name)))
		assert.NoError(t, err, name)
	}
}

func TestExporter_ReportsFailuresAndMissingAnchors(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			io.WriteString(w, `<html><body><h2 id="a">A</h2></body></html>`)
		case "/broken":
			http.Error(w, "boom", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	})

	out := t.TempDir()
	sum, err := New(handler, out, 2, testLogger()).Run(context.Background(), []Page{
		{Path: "/", TOC: []toc.Entry{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}},
		{Path: "/broken"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, sum.Pages)
	failed := sum.Failed()
	require.Len(t, failed, 1)
	assert.Equal(t, "/broken", failed[0].Path)
	assert.Error(t, failed[0].Err)

	assert.Equal(t, map[string][]toc.Entry{"/": {{ID: "b", Title: "B"}}}, sum.MissingAnchors())

	_, err = os.Stat(filepath.Join(out, "broken", "index.html"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(out, "404.html"))
	assert.NoError(t, err)
}

func TestExporter_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	_, err := New(handler, t.TempDir(), 1, testLogger()).Run(ctx, []Page{{Path: "/"}})
	assert.ErrorIs(t, err, context.Canceled)
}
