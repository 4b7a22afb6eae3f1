package site

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dgallion1/folio/internal/config"
	"github.com/dgallion1/folio/internal/content"
	"github.com/dgallion1/folio/internal/session"
	"github.com/dgallion1/folio/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP server for the folio site.
type Server struct {
	router   chi.Router
	store    *content.Store
	sessions *session.Registry
	stats    *RenderStats
	log      *slog.Logger
	cfg      config.Config
	started  time.Time
}

// NewServer creates and configures the HTTP server.
func NewServer(store *content.Store, sessions *session.Registry, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store:    store,
		sessions: sessions,
		stats:    NewRenderStats(time.Hour),
		log:      log,
		cfg:      cfg,
		started:  time.Now(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	// Pages.
	r.Get("/", s.handleHome)
	r.Get("/case-studies", s.handleCaseStudies)
	r.Get("/case-studies/coming-soon", s.handleComingSoon)
	r.Get("/case-studies/{slug}", s.handleCaseStudy)
	r.Get("/docs", s.handleDocs)
	r.Get("/docs/components", s.handleComponents)
	r.Get("/docs/components/{slug}", s.handleComponent)
	r.NotFound(s.handleNotFound)

	r.With(CacheControl("public, max-age=300")).
		Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(view.Static))))

	// JSON API.
	r.Route("/api", func(r chi.Router) {
		r.Get("/case-studies", s.handleListStudies)
		r.Get("/case-studies/{slug}", s.handleGetStudy)
		r.Get("/components", s.handleListComponents)
		r.Post("/highlight", s.handleHighlight)
		r.Get("/stats", s.handleStats)
	})

	// Live page sessions.
	r.Get("/ws/page", s.handlePageSocket)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
