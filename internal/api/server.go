package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/config"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/drafting"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/drive"
	"github.com/nbecerra-cpu/actas-sas-duelegal/internal/pipeline"
)

// Server is the HTTP API server for the acta generator.
type Server struct {
	router       chi.Router
	orchestrator *pipeline.Orchestrator
	drive        *drive.Client
	stats        *drafting.Stats
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server. drive and stats may be
// nil when the respective integrations are not configured.
func NewServer(orch *pipeline.Orchestrator, dr *drive.Client, stats *drafting.Stats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		orchestrator: orch,
		drive:        dr,
		stats:        stats,
		log:          log,
		cfg:          cfg,
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

	// Public endpoints. The OAuth pair stays open because Google's redirect
	// carries no bearer token.
	r.Get("/health", s.handleHealth)
	r.Get("/api/drive/auth", s.handleDriveAuth)
	r.Get("/api/drive/callback", s.handleDriveCallback)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.ActagenAPIKey, s.log))

		r.Post("/api/actas/docx", s.handleDocx)
		r.Post("/api/actas/preview", s.handlePreview)

		r.Post("/api/actas/jobs", s.handleCreateJob)
		r.Get("/api/actas/jobs/{jobID}", s.handleJobStatus)
		r.Get("/api/actas/jobs/{jobID}/file", s.handleJobFile)

		r.Get("/api/drive/status", s.handleDriveStatus)
		r.Post("/api/drive/upload", s.handleDriveUpload)

		r.Get("/api/stats/llm", s.handleLLMStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
