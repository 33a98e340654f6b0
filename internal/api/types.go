package api

import "github.com/reelay/reelay/internal/metadata"

// movieResponse is returned by GET /movies/{movie_id}.
type movieResponse struct {
	MovieID     int64   `json:"movie_id"`
	Title       string  `json:"title"`
	ReleaseDate *string `json:"release_date"`
	Rating      float64 `json:"rating"`
	Summary     string  `json:"summary"`
	DurationMS  float64 `json:"duration_ms"`
}

// searchItem is a single entry in a search response.
type searchItem struct {
	MovieID     int64   `json:"movie_id"`
	Title       string  `json:"title"`
	ReleaseDate *string `json:"release_date"`
	Rating      float64 `json:"rating"`
}

// searchResponse is returned by GET /search.
type searchResponse struct {
	Query        string       `json:"query"`
	TotalResults int          `json:"total_results"`
	Results      []searchItem `json:"results"`
	DurationMS   float64      `json:"duration_ms"`
}

// cacheStats reports cache occupancy and usage counters.
type cacheStats struct {
	Movies   int   `json:"movies"`
	Searches int   `json:"searches"`
	Hits     int64 `json:"hits"`
	Misses   int64 `json:"misses"`
}

// statusResponse is returned by GET /status.
type statusResponse struct {
	Status  string     `json:"status"`
	Version string     `json:"version"`
	Cache   cacheStats `json:"cache"`
}

// rootResponse is the banner returned at the root path.
type rootResponse struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Message string `json:"message"`
}

func movieToResponse(m *metadata.MovieDetails, durationMS float64) movieResponse {
	return movieResponse{
		MovieID:     m.ID,
		Title:       m.Title,
		ReleaseDate: m.ReleaseDate,
		Rating:      m.Rating,
		Summary:     m.Summary,
		DurationMS:  durationMS,
	}
}

func searchToResponse(r *metadata.SearchResult, durationMS float64) searchResponse {
	items := make([]searchItem, 0, len(r.Results))
	for _, m := range r.Results {
		items = append(items, searchItem{
			MovieID:     m.ID,
			Title:       m.Title,
			ReleaseDate: m.ReleaseDate,
			Rating:      m.Rating,
		})
	}
	return searchResponse{
		Query:        r.Query,
		TotalResults: r.TotalResults,
		Results:      items,
		DurationMS:   durationMS,
	}
}
