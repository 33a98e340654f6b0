package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// Sentinel errors for TMDB API responses.
var (
	ErrInvalidID    = errors.New("movie id must be positive")
	ErrEmptyQuery   = errors.New("search query must not be empty")
	ErrNotFound     = errors.New("movie not found")
	ErrUnauthorized = errors.New("unauthorized: invalid API key")
	ErrRateLimited  = errors.New("rate limited: too many requests")
	ErrUnavailable  = errors.New("tmdb unavailable")
	ErrMalformed    = errors.New("malformed tmdb response")
)

// Client is a TMDB API v3 client using bearer token authentication.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLanguage sets the language sent with every request (e.g. "en-US").
func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		c.log = log.With("component", "tmdb")
	}
}

// New creates a new TMDB API v3 client.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetMovie fetches movie details by TMDB ID.
func (c *Client) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	start := time.Now()

	resp, err := c.doRequest(ctx, fmt.Sprintf("/movie/%d", id), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkResponse(resp); err != nil {
		if c.log != nil && errors.Is(err, ErrNotFound) {
			c.log.Debug("movie not found", "id", id)
		}
		return nil, err
	}

	var movie Movie
	if err := json.NewDecoder(resp.Body).Decode(&movie); err != nil {
		return nil, fmt.Errorf("%w: decode movie response: %v", ErrMalformed, err)
	}

	if c.log != nil {
		c.log.Debug("fetched movie", "id", id, "title", movie.Title, "duration_ms", time.Since(start).Milliseconds())
	}

	return &movie, nil
}

// SearchMovies searches for movies by title.
func (c *Client) SearchMovies(ctx context.Context, query string) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	start := time.Now()

	params := url.Values{}
	params.Set("query", query)
	resp, err := c.doRequest(ctx, "/search/movie", params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := c.checkResponse(resp); err != nil {
		return nil, err
	}

	var searchResp SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %v", ErrMalformed, err)
	}

	if c.log != nil {
		c.log.Debug("search completed", "query", query, "results", len(searchResp.Results), "total", searchResp.TotalResults, "duration_ms", time.Since(start).Milliseconds())
	}

	return &searchResp, nil
}

// doRequest performs a single authenticated GET request. One attempt per
// call; there is no retry.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) (*http.Response, error) {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse tmdb url: %w", err)
	}
	if params == nil {
		params = url.Values{}
	}
	if c.language != "" {
		params.Set("language", c.language)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return resp, nil
}

// checkResponse checks the HTTP response for errors and returns appropriate sentinel errors.
func (c *Client) checkResponse(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusTooManyRequests:
		return ErrRateLimited
	default:
		return fmt.Errorf("%w: TMDB API error: %s", ErrUnavailable, resp.Status)
	}
}
