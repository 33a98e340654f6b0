// Package metadata provides cached access to normalized movie metadata.
package metadata

// MovieDetails is the normalized record for a single movie lookup.
// Immutable once constructed.
type MovieDetails struct {
	ID          int64
	Title       string
	ReleaseDate *string // nil when the provider has no date
	Rating      float64
	Summary     string
}

// MovieSummary is a single entry in a search result.
type MovieSummary struct {
	ID          int64
	Title       string
	ReleaseDate *string // nil when the provider has no date
	Rating      float64
}

// SearchResult holds the normalized results for one search query. Results
// preserve the provider's ordering exactly; TotalResults is the provider's
// reported count, which may exceed len(Results) when the provider paginates.
type SearchResult struct {
	Query        string
	TotalResults int
	Results      []MovieSummary
}

// releaseDate converts a provider date string into a nullable date.
func releaseDate(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
