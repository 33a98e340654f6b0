// Package api implements the reelay REST API.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/reelay/reelay/internal/metadata"
)

// Config holds API server configuration.
type Config struct {
	Version string
}

// Server is the reelay API server.
type Server struct {
	deps ServerDeps
	cfg  Config
}

// New creates a new API server.
func New(deps ServerDeps, cfg Config) *Server {
	return &Server{
		deps: deps,
		cfg:  cfg,
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Movies
	mux.HandleFunc("GET /movies/{movie_id}", s.getMovie)
	mux.HandleFunc("GET /search", s.searchMovies)

	// System
	mux.HandleFunc("GET /status", s.getStatus)
	mux.HandleFunc("GET /{$}", s.getRoot)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// durationMS converts an elapsed time to fractional milliseconds rounded
// to two decimal places.
func durationMS(d time.Duration) float64 {
	ms := float64(d.Nanoseconds()) / 1e6
	return math.Round(ms*100) / 100
}

// writeLookupError maps metadata errors onto API status codes. Anything not
// recognized is reported as an upstream availability problem.
func writeLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, metadata.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Movie not found")
	case errors.Is(err, metadata.ErrMalformed):
		writeError(w, http.StatusBadGateway, "UPSTREAM_MALFORMED", "Upstream returned a malformed response")
	default:
		writeError(w, http.StatusServiceUnavailable, "UPSTREAM_UNAVAILABLE", "Upstream service unavailable")
	}
}

// GET /movies/{movie_id}
func (s *Server) getMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "movie_id")
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Movie ID must be a positive integer")
		return
	}

	start := time.Now()
	details, err := s.deps.Movies.GetMovieDetails(r.Context(), id)
	elapsed := time.Since(start)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, movieToResponse(details, durationMS(elapsed)))
}

// GET /search?query=...
func (s *Server) searchMovies(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "INVALID_QUERY", "Query must be a non-empty string")
		return
	}

	start := time.Now()
	result, err := s.deps.Movies.SearchMovies(r.Context(), query)
	elapsed := time.Since(start)
	if err != nil {
		writeLookupError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchToResponse(result, durationMS(elapsed)))
}

// GET /status
func (s *Server) getStatus(w http.ResponseWriter, r *http.Request) {
	stats := s.deps.Movies.Stats()
	writeJSON(w, http.StatusOK, statusResponse{
		Status:  "ok",
		Version: s.cfg.Version,
		Cache: cacheStats{
			Movies:   stats.Movies,
			Searches: stats.Searches,
			Hits:     stats.Hits,
			Misses:   stats.Misses,
		},
	})
}

// GET /
func (s *Server) getRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Service: "reelay",
		Version: s.cfg.Version,
		Message: "movie metadata proxy",
	})
}
