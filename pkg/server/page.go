package server

import (
	"net/http"
	"time"

	"github.com/nikogura/resume-page/pkg/renderer"
	"github.com/nikogura/resume-page/pkg/viewer"
)

// handlePage runs one page view: a single record load, then the document or
// the error message mounted into the shell.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	view := viewer.New(s.opts.Loader, s.opts.Source, s.opts.Sections)

	start := time.Now()
	state := view.Load(r.Context())
	s.opts.Metrics.ObserveLoad(state.Status.String(), time.Since(start))
	if state.Status == viewer.StatusFailed {
		s.log.Warn("resume load failed", "source", s.opts.Source, "error", state.Err)
	}

	shell, err := renderer.ReadShell(s.opts.ShellPath)
	if err != nil {
		s.log.Error("failed to read page shell", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	page, err := renderer.Mount(shell, view.Render())
	if err != nil {
		s.log.Error("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if state.Status == viewer.StatusFailed {
		w.WriteHeader(http.StatusBadGateway)
	}
	_, _ = w.Write(page)
}
