package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/storage"
	"github.com/go-chi/chi/v5"
	"tailscale.com/client/local"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	eng    *engine.Engine
	log    *slog.Logger
	apiKey string
	lc     *local.Client
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, eng *engine.Engine, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		eng:    eng,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		// Logbook sync endpoint (API key required)
		r.Route("/sync", func(r chi.Router) {
			r.Use(APIKeyAuth(s.apiKey))
			r.Post("/progression", s.handleProgressionSync)
		})

		// Interactive API (identity resolved per request: tsnet whois or dev)
		r.Group(func(r chi.Router) {
			r.Use(s.identity)

			r.Get("/me", s.handleMe)
			r.Get("/profile", s.handleGetProfile)
			r.Put("/profile", s.handleUpdateProfile)

			r.Post("/programs", s.handleGenerateProgram)
			r.Get("/programs", s.handleListPrograms)
			r.Get("/programs/{id}", s.handleGetProgram)

			r.Post("/starting-weights", s.handleStartingWeights)

			r.Post("/progression", s.handleProgression)
			r.Get("/progression/log", s.handleProgressionLog)
			r.Get("/progression/{exercise}", s.handleExerciseProgress)

			r.Get("/settings/equipment", s.handleGetEquipmentSettings)
			r.Put("/settings/equipment", s.handlePutEquipmentSettings)

			r.Get("/catalog/exercises", s.handleCatalogExercises)
		})
	})
}

// SetMCP mounts an MCP handler (streamable HTTP transport).
func (s *Server) SetMCP(h http.Handler) {
	s.router.Mount("/mcp", h)
}
