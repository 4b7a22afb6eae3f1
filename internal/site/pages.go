package site

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/dgallion1/folio/internal/content"
	"github.com/dgallion1/folio/internal/summary"
	"github.com/dgallion1/folio/internal/view"
	"github.com/go-chi/chi/v5"
)

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}

// render writes a full page. Successful pages carry a content-hash ETag and
// answer a matching If-None-Match with 304.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page view.Page, body templ.Component) {
	start := time.Now()
	html, err := view.Render(r.Context(), view.Layout(page, body))
	if err != nil {
		s.log.Error("render failed", "path", r.URL.Path, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	s.stats.Record(time.Since(start))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if status == http.StatusOK {
		etag := `"` + ContentHashHex(html)[:32] + `"`
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	w.WriteHeader(status)
	w.Write(html)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	c := s.store.Catalog()
	s.render(w, r, http.StatusOK, view.Page{
		Description: "Case studies and component documentation.",
		Path:        "/",
	}, view.Home(c.Studies(), c.Components()))
}

func (s *Server) handleCaseStudies(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, view.Page{
		Title: "Case Studies",
		Path:  "/case-studies",
	}, view.CaseStudies(s.store.Catalog().Studies()))
}

func (s *Server) handleComingSoon(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, view.Page{
		Title: "Coming Soon",
		Path:  view.ComingSoonPath,
	}, view.ComingSoon())
}

func (s *Server) handleCaseStudy(w http.ResponseWriter, r *http.Request) {
	c := s.store.Catalog()
	study, err := c.Study(chi.URLParam(r, "slug"))
	switch {
	case errors.Is(err, content.ErrComingSoon):
		http.Redirect(w, r, view.ComingSoonPath, http.StatusTemporaryRedirect)
		return
	case err != nil:
		s.notFound(w, r, "case study")
		return
	}

	prev, next := c.Adjacent(study.Slug)
	s.render(w, r, http.StatusOK, view.Page{
		Title:       study.Title,
		Description: study.Description,
		Path:        r.URL.Path,
		Live:        true,
	}, view.CaseStudy(view.StudyPage{
		Study:          study,
		Groups:         content.Groups(study),
		TOC:            content.TOC(study),
		Prev:           prev,
		Next:           next,
		ReadingMinutes: summary.ReadingMinutes(study.Text()),
	}))
}

func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, view.Page{
		Title: "Docs",
		Path:  "/docs",
		Live:  true,
	}, view.DocsIndex(s.store.Catalog().Components()))
}

func (s *Server) handleComponents(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, view.Page{
		Title: "Components",
		Path:  "/docs/components",
	}, view.ComponentsIndex(s.store.Catalog().Components()))
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	c := s.store.Catalog()
	comp, err := c.Component(chi.URLParam(r, "slug"))
	if err != nil {
		s.notFound(w, r, "component")
		return
	}

	var prev, next *content.Component
	all := c.Components()
	for i := range all {
		if all[i].Slug != comp.Slug {
			continue
		}
		if i > 0 {
			prev = &all[i-1]
		}
		if i < len(all)-1 {
			next = &all[i+1]
		}
		break
	}

	s.render(w, r, http.StatusOK, view.Page{
		Title:       comp.Name,
		Description: comp.Description,
		Path:        r.URL.Path,
		Live:        true,
	}, view.ComponentPage(comp, prev, next))
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request, what string) {
	s.render(w, r, http.StatusNotFound, view.Page{Title: "Not Found", Path: r.URL.Path}, view.NotFound(what))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	templ.Handler(
		view.Layout(view.Page{Title: "Not Found", Path: r.URL.Path}, view.NotFound("page")),
		templ.WithStatus(http.StatusNotFound),
	).ServeHTTP(w, r)
}
