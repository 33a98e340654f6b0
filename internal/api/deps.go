package api

import (
	"context"
	"errors"

	"github.com/reelay/reelay/internal/metadata"
)

// MovieSource defines the interface for movie metadata lookups.
type MovieSource interface {
	GetMovieDetails(ctx context.Context, movieID int64) (*metadata.MovieDetails, error)
	SearchMovies(ctx context.Context, query string) (*metadata.SearchResult, error)
	Stats() metadata.CacheStats
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil.
type ServerDeps struct {
	// Required dependencies
	Movies MovieSource
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Movies == nil {
		return errors.New("movie source is required")
	}
	return nil
}
