package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/liftlog/internal/logbook"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	book   *logbook.Logbook
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(book *logbook.Logbook, log *slog.Logger) *Server {
	s := &Server{
		book:   book,
		log:    log,
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
		r.Get("/catalog", s.handleCatalog)
		r.Get("/sessions", s.handleSessions)
		r.Get("/history/last", s.handleLastWorkout)
		r.Get("/history/best", s.handleBestSets)

		r.Get("/state", s.handleState)
		r.Post("/state/type", s.handleSelectType)

		r.Post("/draft/sets", s.handleAddSet)
		r.Patch("/draft/sets/{id}", s.handleUpdateSet)
		r.Delete("/draft/sets/{id}", s.handleRemoveSet)

		r.Post("/save", s.handleSave)
	})
}

// Mount attaches an extra handler subtree, used for the MCP endpoint.
func (s *Server) Mount(pattern string, h http.Handler) {
	s.router.Mount(pattern, h)
}
