// Package metadata implements the movie metadata lookup against the OMDb
// HTTP API.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/cinebox/cinema-box-office/internal/domain"
)

// OMDbClient is a thin client for the one operation the cinema needs:
// resolve a title to its descriptive record, or report that none exists.
type OMDbClient struct {
	baseURL   string
	apiKey    string
	client    *http.Client
	validator *validator.Validate
}

func NewOMDbClient(baseURL string, apiKey string, validator *validator.Validate) *OMDbClient {
	return &OMDbClient{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		apiKey:    apiKey,
		client:    &http.Client{Timeout: 10 * time.Second},
		validator: validator,
	}
}

type omdbResponse struct {
	domain.Movie
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

func (c *OMDbClient) Lookup(ctx context.Context, title string) (*domain.Movie, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	query := url.Values{}
	query.Set("t", title)
	query.Set("apikey", c.apiKey)

	// url.Values encodes spaces as '+', the form OMDb expects.
	reqURL := c.baseURL + "/?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMetadataSearchFailed, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMetadataSearchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrMetadataSearchFailed, resp.StatusCode)
	}

	var payload omdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMetadataSearchFailed, err)
	}

	// OMDb answers 200 for misses too, flagged by Response=False.
	if !strings.EqualFold(payload.Response, "True") {
		return nil, fmt.Errorf("%w: movie %q", domain.ErrNotFound, title)
	}

	if err := c.validator.Struct(payload.Movie); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMetadataSearchFailed, err)
	}

	movie := payload.Movie

	return &movie, nil
}
