// Package server serves the rendered resume page over HTTP.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikogura/resume-page/pkg/metrics"
	"github.com/nikogura/resume-page/pkg/sections"
	"github.com/nikogura/resume-page/pkg/viewer"
)

// RecordRoute is where the raw record is published.
const RecordRoute = "/data/cv.json"

// Options configure a Server.
type Options struct {
	// Loader fetches the record for every page view.
	Loader viewer.Loader
	// Source is the URL or file path handed to Loader.
	Source string
	// RecordPath, when set, is served at RecordRoute.
	RecordPath string
	// ShellPath is the built page shell; the document is mounted into its
	// element with id "root". Empty means a bare default shell.
	ShellPath string
	Sections  sections.Options
	Metrics   *metrics.Recorder
	Log       *slog.Logger
}

// Server is the HTTP front end of the resume page.
type Server struct {
	router chi.Router
	opts   Options
	log    *slog.Logger
}

// NewServer creates and configures the HTTP server.
func NewServer(opts Options) (s *Server) {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	s = &Server{
		opts: opts,
		log:  log,
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

	r.Get("/", s.handlePage)
	r.Get("/index.html", s.handlePage)
	r.Get(RecordRoute, s.handleRecord)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.opts.Metrics.Handler())

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	if s.opts.RecordPath == "" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	http.ServeFile(w, r, s.opts.RecordPath)
}
