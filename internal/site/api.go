package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dgallion1/folio/internal/content"
	"github.com/dgallion1/folio/internal/highlight"
	"github.com/dgallion1/folio/internal/session"
	"github.com/dgallion1/folio/internal/summary"
	"github.com/dgallion1/folio/internal/toc"
	"github.com/dgallion1/folio/internal/view"
	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
)

const excerptWords = 30

type studySummary struct {
	Slug           string   `json:"slug"`
	Title          string   `json:"title"`
	Client         string   `json:"client,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Excerpt        string   `json:"excerpt"`
	ReadingMinutes int      `json:"readingMinutes"`
	ComingSoon     bool     `json:"comingSoon"`
	Href           string   `json:"href"`
}

type studyDetail struct {
	content.CaseStudy
	TOC            []toc.Entry `json:"toc"`
	ReadingMinutes int         `json:"readingMinutes"`
}

type componentSummary struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Examples    int    `json:"examples"`
	Href        string `json:"href"`
}

type highlightRequest struct {
	Code string `json:"code"`
}

type highlightResponse struct {
	Lines []highlight.Line `json:"lines"`
}

func (s *Server) handleListStudies(w http.ResponseWriter, r *http.Request) {
	studies := s.store.Catalog().Studies()
	out := make([]studySummary, 0, len(studies))
	for _, st := range studies {
		out = append(out, studySummary{
			Slug:           st.Slug,
			Title:          st.Title,
			Client:         st.Client,
			Industry:       st.Industry,
			Tags:           st.Tags,
			Excerpt:        summary.Excerpt(st.Description, excerptWords),
			ReadingMinutes: summary.ReadingMinutes(st.Text()),
			ComingSoon:     st.ComingSoon,
			Href:           view.StudyHref(st),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"caseStudies": out})
}

func (s *Server) handleGetStudy(w http.ResponseWriter, r *http.Request) {
	study, err := s.store.Catalog().Study(chi.URLParam(r, "slug"))
	if errors.Is(err, content.ErrNotFound) {
		jsonError(w, "case study not found", http.StatusNotFound)
		return
	}
	// Coming-soon studies are still described; the flag is in the payload.
	writeJSON(w, http.StatusOK, studyDetail{
		CaseStudy:      study,
		TOC:            content.TOC(study),
		ReadingMinutes: summary.ReadingMinutes(study.Text()),
	})
}

func (s *Server) handleListComponents(w http.ResponseWriter, r *http.Request) {
	comps := s.store.Catalog().Components()
	out := make([]componentSummary, 0, len(comps))
	for _, c := range comps {
		out = append(out, componentSummary{
			Slug:        c.Slug,
			Name:        c.Name,
			Description: c.Description,
			Examples:    len(c.Examples),
			Href:        view.ComponentHref(c),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"components": out})
}

func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.HighlightMaxBytes)

	var req highlightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("code exceeds max size (%d bytes)", s.cfg.HighlightMaxBytes), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, highlightResponse{Lines: highlight.Lines(req.Code)})
}

type catalogStats struct {
	Version    uint64    `json:"version"`
	LoadedAt   time.Time `json:"loaded_at"`
	LoadedAgo  string    `json:"loaded_ago"`
	Studies    int       `json:"studies"`
	Published  int       `json:"published"`
	Components int       `json:"components"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	c := s.store.Catalog()
	loadedAt := s.store.LoadedAt()
	writeJSON(w, http.StatusOK, map[string]any{
		"render": s.stats.Snapshot(),
		"catalog": catalogStats{
			Version:    s.store.Version(),
			LoadedAt:   loadedAt,
			LoadedAgo:  humanize.Time(loadedAt),
			Studies:    len(c.Studies()),
			Published:  len(c.Published()),
			Components: len(c.Components()),
		},
		"sessions": map[string]any{
			"count":  s.sessions.Len(),
			"active": sessionsOrEmpty(s.sessions.Snapshots()),
		},
		"uptime": humanize.RelTime(s.started, time.Now(), "", ""),
	})
}

func sessionsOrEmpty(in []session.Snapshot) []session.Snapshot {
	if in == nil {
		return []session.Snapshot{}
	}
	return in
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
