package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client wraps HTTP calls to the reelay server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new reelay API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: serverURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// errorBody matches the server's structured error responses.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil && eb.Error != "" {
			return fmt.Errorf("server error %d: %s (%s)", resp.StatusCode, eb.Error, eb.Code)
		}
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

// API response types (mirror server types)

type MovieResponse struct {
	MovieID     int64   `json:"movie_id"`
	Title       string  `json:"title"`
	ReleaseDate *string `json:"release_date"`
	Rating      float64 `json:"rating"`
	Summary     string  `json:"summary"`
	DurationMS  float64 `json:"duration_ms"`
}

type SearchItem struct {
	MovieID     int64   `json:"movie_id"`
	Title       string  `json:"title"`
	ReleaseDate *string `json:"release_date"`
	Rating      float64 `json:"rating"`
}

type SearchResponse struct {
	Query        string       `json:"query"`
	TotalResults int          `json:"total_results"`
	Results      []SearchItem `json:"results"`
	DurationMS   float64      `json:"duration_ms"`
}

type CacheStats struct {
	Movies   int   `json:"movies"`
	Searches int   `json:"searches"`
	Hits     int64 `json:"hits"`
	Misses   int64 `json:"misses"`
}

type StatusResponse struct {
	Status  string     `json:"status"`
	Version string     `json:"version"`
	Cache   CacheStats `json:"cache"`
}

// API methods

func (c *Client) Movie(id int64) (*MovieResponse, error) {
	var resp MovieResponse
	if err := c.get(fmt.Sprintf("/movies/%d", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Search(query string) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp SearchResponse
	if err := c.get("/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
