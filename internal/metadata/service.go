package metadata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/reelay/reelay/pkg/tmdb"
)

// Service provides cached access to TMDB movie metadata. It owns the
// process-wide memoization table: on a hit the provider is never contacted;
// on a miss exactly one fetch is attempted (no retries) and the normalized
// value is stored for the life of the process. Failed fetches are never
// cached.
type Service struct {
	client *tmdb.Client
	cache  *Cache
	log    *slog.Logger
}

// NewService creates a new metadata service.
func NewService(client *tmdb.Client, cache *Cache, log *slog.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		log:    log,
	}
}

// GetMovieDetails resolves a movie id to normalized details (cached).
func (s *Service) GetMovieDetails(ctx context.Context, movieID int64) (*MovieDetails, error) {
	if movieID <= 0 {
		return nil, tmdb.ErrInvalidID
	}

	// Check cache first
	if details, ok := s.cache.GetMovie(movieID); ok {
		if s.log != nil {
			s.log.Debug("cache hit for movie", "movie_id", movieID)
		}
		return details, nil
	}

	// Cache miss - call API
	if s.log != nil {
		s.log.Debug("cache miss for movie, calling API", "movie_id", movieID)
	}

	// A dropped caller must not abort a fetch whose result is cacheable for
	// future callers; the client's own timeout still bounds the call.
	movie, err := s.client.GetMovie(context.WithoutCancel(ctx), movieID)
	if err != nil {
		return nil, mapProviderError(err)
	}

	details, err := movieDetailsFrom(movie)
	if err != nil {
		return nil, err
	}

	s.cache.SetMovie(movieID, details)
	return details, nil
}

// SearchMovies resolves a search query to a normalized result set (cached).
// The cache key is the normalized query, so queries differing only in case
// or surrounding whitespace share one entry. An empty result set is a valid,
// cacheable success.
func (s *Service) SearchMovies(ctx context.Context, query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, tmdb.ErrEmptyQuery
	}

	key := NormalizeQuery(query)

	// Check cache first
	if result, ok := s.cache.GetSearch(key); ok {
		if s.log != nil {
			s.log.Debug("cache hit for search", "query", query, "results", len(result.Results))
		}
		return result, nil
	}

	// Cache miss - call API
	if s.log != nil {
		s.log.Debug("cache miss for search, calling API", "query", query)
	}

	resp, err := s.client.SearchMovies(context.WithoutCancel(ctx), query)
	if err != nil {
		return nil, mapProviderError(err)
	}

	result := searchResultFrom(query, resp)
	s.cache.SetSearch(key, result)
	return result, nil
}

// Stats reports cache usage for the status surface.
func (s *Service) Stats() CacheStats {
	return s.cache.Stats()
}

// mapProviderError folds provider errors into the service taxonomy. Anything
// that is not an affirmative not-found or a malformed payload counts as the
// upstream being unavailable.
func mapProviderError(err error) error {
	switch {
	case errors.Is(err, tmdb.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, tmdb.ErrMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, tmdb.ErrInvalidID), errors.Is(err, tmdb.ErrEmptyQuery):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

// movieDetailsFrom maps the provider payload onto the normalized schema.
// A payload without an id or title cannot be mapped.
func movieDetailsFrom(movie *tmdb.Movie) (*MovieDetails, error) {
	if movie.ID == 0 || movie.Title == "" {
		return nil, fmt.Errorf("%w: missing id or title", ErrMalformed)
	}
	return &MovieDetails{
		ID:          movie.ID,
		Title:       movie.Title,
		ReleaseDate: releaseDate(movie.ReleaseDate),
		Rating:      movie.VoteAverage,
		Summary:     movie.Overview,
	}, nil
}

// searchResultFrom wraps the provider search payload, preserving result
// ordering exactly and trusting the provider's reported total.
func searchResultFrom(query string, resp *tmdb.SearchResponse) *SearchResult {
	results := make([]MovieSummary, 0, len(resp.Results))
	for _, item := range resp.Results {
		results = append(results, MovieSummary{
			ID:          item.ID,
			Title:       item.Title,
			ReleaseDate: releaseDate(item.ReleaseDate),
			Rating:      item.VoteAverage,
		})
	}
	return &SearchResult{
		Query:        query,
		TotalResults: resp.TotalResults,
		Results:      results,
	}
}
