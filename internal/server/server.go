package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"SignalScope/internal/collector"
	"SignalScope/internal/config"
)

// Server exposes the analytics engine over a JSON API consumed by the
// charting frontend.
type Server struct {
	Collector *collector.Collector
	Cfg       *config.Config
	Metrics   *Metrics

	httpSrv   *http.Server
	startedAt time.Time
}

// NewServer creates a Server with its routes and metrics wired.
func NewServer(cfg *config.Config, col *collector.Collector) *Server {
	s := &Server{
		Collector: col,
		Cfg:       cfg,
		Metrics:   NewMetrics(),
		startedAt: time.Now(),
	}
	s.httpSrv = &http.Server{
		Addr:         cfg.Server.ListenAddr,
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/analysis", s.handleAnalysis)
	mux.HandleFunc("GET /api/v1/symbols", s.handleSymbols)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /metrics", s.Metrics.Handler())
	return mux
}

// Start begins serving; it blocks until the listener fails or Shutdown
// is called.
func (s *Server) Start() error {
	log.Printf("[INFO] http server listening on %s", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("[INFO] http server shutting down")
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"uptime_sec": int64(time.Since(s.startedAt).Seconds()),
	})
}

func (s *Server) handleSymbols(w http.ResponseWriter, _ *http.Request) {
	symbols := s.Cfg.Symbols
	if len(symbols) == 0 {
		symbols = collector.DefaultSymbols
	}
	writeJSON(w, http.StatusOK, map[string]any{"symbols": symbols})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
