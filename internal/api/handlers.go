// Package api provides HTTP handlers for the crossword puzzle API.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"kurosuwado/internal/domain"
	"kurosuwado/internal/puzzle"
	"kurosuwado/internal/service"
	"kurosuwado/internal/store"
	"kurosuwado/internal/validate"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	store store.Repository
	pool  *service.Pool
}

// NewHandler creates a new Handler backed by s, dispatching synthesis
// through pool so the request goroutine never blocks on it directly.
func NewHandler(s store.Repository, pool *service.Pool) *Handler {
	return &Handler{store: s, pool: pool}
}

// GeneratePuzzle synthesizes a new puzzle and stores it.
// POST /v1/puzzles
func (h *Handler) GeneratePuzzle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	req, verrs := validate.ValidateGenerationRequestJSON(body)
	if verrs != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "invalid generation request",
			"fields": verrs,
		})
		return
	}

	record, stats, err := h.pool.Submit(r.Context(), service.GenerateRequest{
		Size:           req.Size,
		CandidateWords: req.CandidateWords,
	})
	if err != nil {
		if errors.Is(err, puzzle.ErrInsufficientWords) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to generate puzzle")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"puzzle":     record,
		"word_count": humanize.Comma(int64(stats.WordCount)),
		"density":    stats.Density,
	})
}

// GetPuzzle returns a puzzle by ID, with its answer table stripped.
// GET /v1/puzzles/{id}
func (h *Handler) GetPuzzle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing puzzle id")
		return
	}

	record, err := h.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "puzzle not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch puzzle")
		return
	}

	writeJSONWithETag(w, record.StripAnswers())
}

// ListPuzzles returns every stored puzzle's listing projection.
// GET /v1/puzzles
func (h *Handler) ListPuzzles(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list puzzles")
		return
	}
	if summaries == nil {
		summaries = []domain.Summary{}
	}

	type listEntry struct {
		domain.Summary
		Age string `json:"age"`
	}
	entries := make([]listEntry, len(summaries))
	for i, s := range summaries {
		entries[i] = listEntry{Summary: s, Age: humanize.Time(s.CreatedAt)}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"puzzles": entries,
		"count":   len(entries),
	})
}

// DeletePuzzle removes a puzzle by ID.
// DELETE /v1/puzzles/{id}
func (h *Handler) DeletePuzzle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing puzzle id")
		return
	}

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "puzzle not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete puzzle")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}

// CheckRequest is the body for CheckAnswers: a clue key ("1-across") to
// submitted answer text.
type CheckRequest struct {
	Answers map[string]string `json:"answers"`
}

// CheckAnswers compares submitted answers against the stored record.
// POST /v1/puzzles/{id}/check
func (h *Handler) CheckAnswers(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing puzzle id")
		return
	}

	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "puzzle not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch puzzle")
		return
	}

	result, err := puzzle.Check(record, req.Answers)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to check answers")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Hint returns a partially revealed form of one clue's answer.
// GET /v1/puzzles/{id}/hint?number=1&orientation=across
func (h *Handler) Hint(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing puzzle id")
		return
	}

	number, err := strconv.Atoi(r.URL.Query().Get("number"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "number must be an integer")
		return
	}
	orientation := domain.Orientation(r.URL.Query().Get("orientation"))
	if orientation != domain.Across && orientation != domain.Down {
		writeError(w, http.StatusBadRequest, "orientation must be \"across\" or \"down\"")
		return
	}

	record, err := h.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "puzzle not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to fetch puzzle")
		return
	}

	result, err := puzzle.Hint(record, number, orientation)
	if errors.Is(err, puzzle.ErrUnknownClue) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build hint")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HealthCheck returns server health status.
// GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// APIError represents an error response.
type APIError struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, APIError{Error: http.StatusText(status), Message: message})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeJSONWithETag(w http.ResponseWriter, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	hash := sha256.Sum256(body)
	etag := `"` + hex.EncodeToString(hash[:8]) + `"`

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "public, max-age=300")

	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
