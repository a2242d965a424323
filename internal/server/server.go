package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/gorm"

	"github.com/valenieksvladislavs/ScandiWebTest2025/internal/database"
)

// Server wires the HTTP surface: the /graphql endpoint, a health check and
// JSON bodies for routing errors, with permissive CORS for the storefront UI.
type Server struct {
	router chi.Router
	db     *gorm.DB
}

func New(db *gorm.DB, graphql http.Handler) *Server {
	s := &Server{
		router: chi.NewRouter(),
		db:     db,
	}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.StripSlashes)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	s.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	s.router.Get("/health", s.healthCheck)
	s.router.Method(http.MethodGet, "/graphql", graphql)
	s.router.Method(http.MethodPost, "/graphql", graphql)

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	if err := database.HealthCheck(s.db); err != nil {
		writeError(w, http.StatusServiceUnavailable, "database connection failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Start blocks serving HTTP on the given address.
func (s *Server) Start(addr string) error {
	return http.ListenAndServe(addr, s.router)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
