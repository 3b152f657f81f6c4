// Package server provides the HTTP surface of poseview: the MJPEG overlay
// stream, the landmarks WebSocket, camera control, and metrics.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/poseview/internal/control"
	"github.com/ayusman/poseview/internal/metrics"
	"github.com/ayusman/poseview/internal/view"
)

// Config holds the server configuration.
type Config struct {
	StaticDir  string
	Controller *control.Controller
	Feed       *view.Feed
	Metrics    *metrics.Metrics
}

// Server routes HTTP requests to the pipeline's consumers.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	if s.config.Controller != nil {
		cameraHandler := NewCameraHandler(s.config.Controller, s.config.Metrics)
		s.mux.Handle("/api/camera", cameraHandler)
		s.mux.Handle("/api/camera/switch", cameraHandler)
	}

	if s.config.Feed != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Feed))
		s.mux.Handle("/api/landmarks", NewLandmarksHandler(s.config.Feed))
	}

	if s.config.Metrics != nil {
		s.mux.Handle("/metrics", s.config.Metrics.Handler())
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(s.start).String(),
	}
	if s.config.Feed != nil {
		response["fps"] = s.config.Feed.FPS()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
