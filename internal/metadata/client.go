// Package metadata provides a client for the external movie-metadata API.
// Lookups are best-effort: callers substitute placeholder data on failure.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/singleflight"
)

const lookupTimeout = 10 * time.Second

// MovieInfo is the subset of metadata used to enrich review listings.
type MovieInfo struct {
	Title       string  `json:"title"`
	Poster      *string `json:"poster"`
	ReleaseDate *string `json:"releaseDate"`
}

// Client defines the interface for metadata lookups.
type Client interface {
	// Lookup fetches metadata for a movie id.
	Lookup(ctx context.Context, movieID string) (*MovieInfo, error)
}

// HTTPClient implements Client against an HTTP metadata API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	group      singleflight.Group // dedupes concurrent lookups per movie id
}

// NewHTTPClient creates a metadata client for the given API base URL.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: lookupTimeout,
		},
	}
}

// lookupResponse mirrors the metadata API's movie detail payload.
type lookupResponse struct {
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
}

// Lookup fetches metadata for a movie id, collapsing concurrent requests
// for the same id into a single upstream call.
func (c *HTTPClient) Lookup(ctx context.Context, movieID string) (*MovieInfo, error) {
	val, err, _ := c.group.Do(movieID, func() (interface{}, error) {
		return c.fetch(ctx, movieID)
	})
	if err != nil {
		return nil, err
	}
	return val.(*MovieInfo), nil
}

func (c *HTTPClient) fetch(ctx context.Context, movieID string) (*MovieInfo, error) {
	url := fmt.Sprintf("%s/movie/%s?api_key=%s", c.baseURL, movieID, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("metadata lookup failed with status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	info := &MovieInfo{Title: body.Title}
	if body.PosterPath != "" {
		info.Poster = &body.PosterPath
	}
	if body.ReleaseDate != "" {
		info.ReleaseDate = &body.ReleaseDate
	}

	return info, nil
}

// Ensure HTTPClient implements Client interface
var _ Client = (*HTTPClient)(nil)

// StaticClient is a test double returning a fixed result or error.
type StaticClient struct {
	Info *MovieInfo
	Err  error
}

// Lookup returns the configured result.
func (s *StaticClient) Lookup(ctx context.Context, movieID string) (*MovieInfo, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Info, nil
}

var _ Client = (*StaticClient)(nil)
