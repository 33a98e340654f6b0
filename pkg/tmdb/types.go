// Package tmdb provides a client for the TMDB API v3.
package tmdb

// Movie is the TMDB movie details payload.
type Movie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"` // YYYY-MM-DD, may be empty
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
	Overview    string  `json:"overview"`
	Popularity  float64 `json:"popularity"`
	Runtime     int     `json:"runtime"`
	Status      string  `json:"status"`
}

// SearchMovie is a single movie search result.
type SearchMovie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
	Overview    string  `json:"overview"`
	Popularity  float64 `json:"popularity"`
}

// SearchResponse is the TMDB paginated movie search response.
type SearchResponse struct {
	Page         int           `json:"page"`
	Results      []SearchMovie `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}
