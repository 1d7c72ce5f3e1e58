package api

import (
	"log/slog"
	"net/http"

	"kurosuwado/internal/service"
	"kurosuwado/internal/store"
)

// Config holds API server configuration.
type Config struct {
	Store  store.Repository
	Pool   *service.Pool
	Logger *slog.Logger
}

// NewRouter creates a new HTTP router with all routes configured.
func NewRouter(cfg Config) http.Handler {
	handler := NewHandler(cfg.Store, cfg.Pool)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", handler.HealthCheck)

	mux.HandleFunc("POST /v1/puzzles", handler.GeneratePuzzle)
	mux.HandleFunc("GET /v1/puzzles", handler.ListPuzzles)
	mux.HandleFunc("GET /v1/puzzles/{id}", handler.GetPuzzle)
	mux.HandleFunc("DELETE /v1/puzzles/{id}", handler.DeletePuzzle)
	mux.HandleFunc("POST /v1/puzzles/{id}/check", handler.CheckAnswers)
	mux.HandleFunc("GET /v1/puzzles/{id}/hint", handler.Hint)

	var h http.Handler = mux
	h = CORS(h)
	h = Gzip(h)
	h = Logger(cfg.Logger)(h)
	h = Recover(cfg.Logger)(h)

	return h
}
