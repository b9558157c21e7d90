// Package preview serves composed documents from an in-memory snapshot,
// rebuilding on docs changes (fsnotify) and on a periodic schedule (gocron).
package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"git.home.luguber.info/inful/pagecompose/internal/config"
	"git.home.luguber.info/inful/pagecompose/internal/metrics"
	"git.home.luguber.info/inful/pagecompose/internal/renderlog"
	"git.home.luguber.info/inful/pagecompose/internal/site"
)

// Server holds the current site snapshot and serves it over HTTP. Renders
// swap the snapshot atomically under a RWMutex; concurrent readers are safe.
type Server struct {
	cfg     *config.Config
	builder *site.Builder

	promRecorder *metrics.PrometheusRecorder
	log          *renderlog.Store

	mu       sync.RWMutex
	snapshot map[string][]byte
	lastErr  error
	warnings []string
	builtAt  time.Time
}

// Option customizes a Server.
type Option func(*Server)

// WithPrometheus exposes the recorder's registry on /metrics.
func WithPrometheus(pr *metrics.PrometheusRecorder) Option {
	return func(s *Server) { s.promRecorder = pr }
}

// WithRenderLog surfaces recent render events on /status.
func WithRenderLog(store *renderlog.Store) Option {
	return func(s *Server) { s.log = store }
}

// New creates a preview server around builder.
func New(cfg *config.Config, builder *site.Builder, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		builder:  builder,
		snapshot: map[string][]byte{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rebuild composes the whole site and swaps the snapshot. On failure the
// previous snapshot keeps serving and the error is surfaced on /status.
func (s *Server) Rebuild(ctx context.Context) error {
	docs, err := s.builder.BuildAll(ctx)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		slog.Error("Preview rebuild failed", "error", err)
		return err
	}

	snap := make(map[string][]byte, len(docs))
	var warnings []string
	for _, doc := range docs {
		snap[doc.PageID] = doc.Bytes()
		for _, w := range doc.Warnings {
			warnings = append(warnings, fmt.Sprintf("%s: %s", doc.PageID, w))
		}
	}

	s.mu.Lock()
	s.snapshot = snap
	s.lastErr = nil
	s.warnings = warnings
	s.builtAt = time.Now()
	s.mu.Unlock()

	slog.Info("Preview snapshot updated", "pages", len(snap), "nav_warnings", len(warnings))
	return nil
}

// Handler returns the preview HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/search.html", s.handleSearch)
	if s.promRecorder != nil {
		mux.Handle("/metrics", s.promRecorder.Handler())
	}
	mux.HandleFunc("/", s.handlePage)
	return mux
}

// Run serves until ctx is canceled. It performs the initial build, starts
// the docs watcher and the periodic rebuild schedule, then blocks on the
// HTTP server.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Rebuild(ctx); err != nil {
		return err
	}

	watcher, err := newWatcher(s.cfg.DocsDir, func() {
		_ = s.Rebuild(ctx) // failure already surfaced on /status
	})
	if err != nil {
		return err
	}
	defer watcher.Close()
	go watcher.Run(ctx)

	sched, err := newScheduler(s.cfg.Preview.Interval(), func() {
		_ = s.Rebuild(ctx)
	})
	if err != nil {
		return err
	}
	sched.Start()
	defer func() { _ = sched.Stop() }()

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Preview.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("Preview server listening", "port", s.cfg.Preview.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/")
	if path == "" {
		path = "index.html"
	}
	id := strings.TrimSuffix(path, ".html")

	s.mu.RLock()
	body, ok := s.snapshot[id]
	s.mu.RUnlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	healthy := s.lastErr == nil && len(s.snapshot) > 0
	s.mu.RUnlock()
	if !healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = fmt.Fprintln(w, "unhealthy")
		return
	}
	_, _ = fmt.Fprintln(w, "ok")
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	status := struct {
		Pages       int               `json:"pages"`
		BuiltAt     time.Time         `json:"built_at"`
		LastError   string            `json:"last_error,omitempty"`
		NavWarnings []string          `json:"nav_warnings,omitempty"`
		Recent      []renderlog.Event `json:"recent,omitempty"`
	}{
		Pages:       len(s.snapshot),
		BuiltAt:     s.builtAt,
		NavWarnings: s.warnings,
	}
	if s.lastErr != nil {
		status.LastError = s.lastErr.Error()
	}
	s.mu.RUnlock()

	if s.log != nil {
		if events, err := s.log.Recent(r.Context(), 20); err == nil {
			status.Recent = events
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(status)
}

// handleSearch answers the composed document's GET search form. Search is
// an external collaborator; the preview server only acknowledges the route.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	w.WriteHeader(http.StatusNotImplemented)
	_, _ = fmt.Fprintf(w, "search is handled by an external backend (q=%q)\n", q)
}
