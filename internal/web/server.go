// Package web serves the dashboard: the embedded frontend assets, the
// bindings WebSocket channel, and JSON endpoints mirroring the output
// bindings.
package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"anthropic-dashboard/internal/service"
)

//go:embed static/*
var staticFiles embed.FS

type Server struct {
	svc      *service.Service
	router   *http.ServeMux
	port     int
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

func NewServer(svc *service.Service, port int, logger *slog.Logger) *Server {
	s := &Server{
		svc:    svc,
		router: http.NewServeMux(),
		port:   port,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// SPA shell; every non-API path gets index.html
	s.router.HandleFunc("GET /", s.handleIndex)

	// Bindings channel
	s.router.HandleFunc("GET /ws", s.handleWS)

	// JSON mirrors of the output bindings
	s.router.HandleFunc("GET /api/stats", s.handleAPIStats)
	s.router.HandleFunc("GET /api/charts/tokens", s.handleAPIChartTokens)
	s.router.HandleFunc("GET /api/charts/cost-by-model", s.handleAPIChartCostByModel)
	s.router.HandleFunc("GET /api/charts/service-tier", s.handleAPIChartServiceTier)
	s.router.HandleFunc("GET /api/tables/usage", s.handleAPITableUsage)
	s.router.HandleFunc("GET /api/tables/cost", s.handleAPITableCost)
	s.router.HandleFunc("GET /api/filters", s.handleAPIFilters)
	s.router.HandleFunc("GET /api/status", s.handleAPIStatus)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	index, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "index not available", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(index)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown", "error", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}
