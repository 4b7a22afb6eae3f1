// Package export renders every page of the site into a directory that can
// be served by any static file host.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dgallion1/folio/internal/content"
	"github.com/dgallion1/folio/internal/toc"
	"github.com/dgallion1/folio/internal/view"
	"github.com/dustin/go-humanize"
)

// NotFoundPath is rendered to 404.html.
const NotFoundPath = "/404"

// Page is one route to export and the TOC entries its HTML must anchor.
type Page struct {
	Path string
	TOC  []toc.Entry
}

// PageStatus is the outcome of exporting one page.
type PageStatus string

const (
	StatusWritten PageStatus = "written"
	StatusFailed  PageStatus = "failed"
)

// Result describes one exported page.
type Result struct {
	Path    string
	File    string
	Status  PageStatus
	Bytes   int
	Missing []toc.Entry
	Err     error
}

// Summary aggregates an export run.
type Summary struct {
	Pages    int
	Assets   int
	Bytes    int64
	Duration time.Duration
	Results  []Result
}

// Failed returns the results that could not be written.
func (s Summary) Failed() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.Status == StatusFailed {
			out = append(out, r)
		}
	}
	return out
}

// MissingAnchors maps page paths to TOC entries with no matching element.
func (s Summary) MissingAnchors() map[string][]toc.Entry {
	out := make(map[string][]toc.Entry)
	for _, r := range s.Results {
		if len(r.Missing) > 0 {
			out[r.Path] = r.Missing
		}
	}
	return out
}

func (s Summary) String() string {
	return fmt.Sprintf("%s pages, %s assets, %s in %s (%d failed, %d pages with missing anchors)",
		humanize.Comma(int64(s.Pages)),
		humanize.Comma(int64(s.Assets)),
		humanize.Bytes(uint64(s.Bytes)),
		s.Duration.Round(time.Millisecond),
		len(s.Failed()),
		len(s.MissingAnchors()),
	)
}

// Pages lists every exportable route in the catalog. Coming-soon studies
// have no detail page.
func Pages(c *content.Catalog) []Page {
	pages := []Page{
		{Path: "/"},
		{Path: "/case-studies"},
		{Path: view.ComingSoonPath},
	}
	for _, s := range c.Published() {
		pages = append(pages, Page{Path: view.StudyHref(s), TOC: content.TOC(s)})
	}
	pages = append(pages, Page{Path: "/docs"}, Page{Path: "/docs/components"})
	for _, comp := range c.Components() {
		pages = append(pages, Page{Path: view.ComponentHref(comp)})
	}
	return pages
}

// Exporter renders pages through an http.Handler with a bounded worker pool.
type Exporter struct {
	handler http.Handler
	out     string
	workers int
	log     *slog.Logger
}

func New(handler http.Handler, out string, workers int, log *slog.Logger) *Exporter {
	if workers <= 0 {
		workers = 4
	}
	return &Exporter{handler: handler, out: out, workers: workers, log: log}
}

// Run writes pages, the not-found page, and the static assets under the
// output directory. Page failures are reported in the summary; an error is
// returned only when the export cannot proceed.
func (e *Exporter) Run(ctx context.Context, pages []Page) (Summary, error) {
	start := time.Now()
	if err := os.MkdirAll(e.out, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output dir: %w", err)
	}

	queue := make(chan Page)
	results := make(chan Result, len(pages))

	var wg sync.WaitGroup
	for i := 0; i < e.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := range queue {
				results <- e.exportPage(ctx, p)
			}
		}()
	}

	go func() {
		defer close(queue)
		for _, p := range pages {
			select {
			case <-ctx.Done():
				return
			case queue <- p:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var sum Summary
	for r := range results {
		sum.Results = append(sum.Results, r)
		if r.Status == StatusWritten {
			sum.Pages++
			sum.Bytes += int64(r.Bytes)
		}
	}
	if err := ctx.Err(); err != nil {
		return sum, err
	}
	sort.Slice(sum.Results, func(i, j int) bool { return sum.Results[i].Path < sum.Results[j].Path })

	n, err := e.writeNotFound(ctx)
	if err != nil {
		return sum, err
	}
	sum.Bytes += int64(n)

	assets, size, err := e.copyAssets()
	if err != nil {
		return sum, err
	}
	sum.Assets = assets
	sum.Bytes += size
	sum.Duration = time.Since(start)

	e.log.Info("export complete",
		"out", e.out,
		"pages", sum.Pages,
		"assets", sum.Assets,
		"bytes", humanize.Bytes(uint64(sum.Bytes)),
		"failed", len(sum.Failed()),
		"duration_ms", sum.Duration.Milliseconds(),
	)
	return sum, nil
}

func (e *Exporter) exportPage(ctx context.Context, p Page) Result {
	log := e.log.With("path", p.Path)
	res := Result{Path: p.Path, File: FileFor(e.out, p.Path), Status: StatusFailed}

	body, status := e.get(ctx, p.Path)
	if status != http.StatusOK {
		res.Err = fmt.Errorf("GET %s: status %d", p.Path, status)
		log.Error("render failed", "status", status)
		return res
	}

	if len(p.TOC) > 0 {
		doc, err := toc.NewHTMLDocument(bytes.NewReader(body))
		if err != nil {
			res.Err = fmt.Errorf("parse %s: %w", p.Path, err)
			return res
		}
		res.Missing = toc.Missing(p.TOC, doc)
		for _, m := range res.Missing {
			log.Warn("toc entry has no anchor", "id", m.ID, "title", m.Title)
		}
	}

	if err := writeFile(res.File, body); err != nil {
		res.Err = err
		log.Error("write failed", "error", err)
		return res
	}
	res.Status = StatusWritten
	res.Bytes = len(body)
	log.Debug("page written", "file", res.File, "bytes", res.Bytes)
	return res
}

func (e *Exporter) get(ctx context.Context, target string) ([]byte, int) {
	req := httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec.Body.Bytes(), rec.Code
}

func (e *Exporter) writeNotFound(ctx context.Context) (int, error) {
	body, status := e.get(ctx, NotFoundPath)
	if status != http.StatusNotFound {
		return 0, fmt.Errorf("GET %s: expected 404, got %d", NotFoundPath, status)
	}
	if err := writeFile(filepath.Join(e.out, "404.html"), body); err != nil {
		return 0, err
	}
	return len(body), nil
}

func (e *Exporter) copyAssets() (int, int64, error) {
	var count int
	var size int64
	err := fs.WalkDir(view.Static, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(view.Static, name)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(e.out, "static", filepath.FromSlash(name)), data); err != nil {
			return err
		}
		count++
		size += int64(len(data))
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("copy assets: %w", err)
	}
	return count, size, nil
}

// FileFor maps a route to its index.html under out.
func FileFor(out, route string) string {
	clean := strings.Trim(path.Clean("/"+route), "/")
	if clean == "" {
		return filepath.Join(out, "index.html")
	}
	return filepath.Join(out, filepath.FromSlash(clean), "index.html")
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(name), err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
