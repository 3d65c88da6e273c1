package api

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"yt-tools/config"
	"yt-tools/middleware"
	"yt-tools/models"
	"yt-tools/services/video"
	"yt-tools/validation"
)

type Server struct {
	video  *VideoHandler
	config *config.Config
	logger *logrus.Logger
	server *http.Server
}

type ServerOption func(*Server)

// NewServer creates a new API server with the provided services and options
func NewServer(cfg *config.Config, opts ...ServerOption) *Server {
	s := &Server{
		config: cfg,
		logger: logrus.StandardLogger(),
	}

	// Apply options
	for _, opt := range opts {
		opt(s)
	}

	// Create HTTP server
	s.server = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      s.routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

// WithService sets up the handlers with the provided video service
func WithService(videoSvc video.Service) ServerOption {
	return func(s *Server) {
		validator := validation.NewValidator(s.config)
		s.video = NewVideoHandler(videoSvc, validator)
	}
}

// WithLogger sets a custom logger for the server
func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.WithField("addr", s.config.Addr()).Info("Starting server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// routes sets up all the routes for the API
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /video-data", s.video.HandleVideoData)
	mux.HandleFunc("POST /video-captions", s.video.HandleVideoCaptions)
	mux.HandleFunc("POST /video-timestamps", s.video.HandleVideoTimestamps)
	mux.HandleFunc("POST /video-transcript-languages", s.video.HandleTranscriptLanguages)

	// Health check
	mux.HandleFunc("GET /health", s.handleHealth)

	// Apply middleware stack
	return s.middleware(mux)
}

// middleware sets up the middleware chain
func (s *Server) middleware(handler http.Handler) http.Handler {
	middlewares := []func(http.Handler) http.Handler{
		middleware.Recovery(s.logger),
		middleware.RequestID(),
		middleware.Logging(s.logger),
		middleware.CORS(s.config.CORS),
		middleware.Timeout(s.config.RequestTimeout),
	}

	return middleware.Chain(handler, middlewares...)
}

// handleHealth reports server and proxy status. Always 200; the proxy
// username is exposed only while the proxy is enabled.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	proxyStatus := "webshare_disabled"
	var proxyUsername *string
	if s.config.Proxy.Enabled() {
		proxyStatus = "webshare_enabled"
		username := s.config.Proxy.Username
		if username == "" {
			username = "not_set"
		}
		proxyUsername = &username
	}

	respondJSON(w, r, http.StatusOK, models.HealthResponse{
		Status:             "healthy",
		Timestamp:          time.Now().UTC().Format(time.RFC3339),
		ProxyStatus:        proxyStatus,
		ProxyUsername:      proxyUsername,
		ParallelProcessing: "enabled",
	})
}
