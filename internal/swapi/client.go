// Package swapi fetches the people list from the Star Wars API.
package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/yildizm/swdex/internal/logger"
	"github.com/yildizm/swdex/internal/people"
)

// Client performs the people list request
type Client struct {
	config  *Config
	client  *http.Client
	baseURL *url.URL
	log     *logger.Logger
}

// New creates a new client instance
func New(config *Config, log *logger.Logger) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("swapi: invalid base_url: %w", err)
	}

	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
		baseURL: baseURL,
		log:     log,
	}, nil
}

// Endpoint returns the absolute URL of the people list
func (c *Client) Endpoint() string {
	return c.baseURL.JoinPath(PeoplePath).String()
}

// FetchAll issues one GET for the people list and returns the records in
// response order. Every failure is a *FetchError.
func (c *Client) FetchAll(ctx context.Context) ([]people.Record, error) {
	start := time.Now()
	endpoint := c.Endpoint()

	c.log.DebugWithFields("fetching people", []logger.Field{logger.F("url", endpoint)})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, newFetchError("failed to create request", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.WarnWithFields("request failed", []logger.Field{logger.Error(err), logger.Duration(time.Since(start))})
		return nil, newFetchError("request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.WarnWithFields("unexpected status", []logger.Field{logger.F("status", resp.StatusCode)})
		return nil, newStatusError(resp.StatusCode)
	}

	var payload peopleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.WarnWithFields("decode failed", []logger.Field{logger.Error(err)})
		return nil, newFetchError("failed to decode response", err)
	}

	records := make([]people.Record, 0, len(payload.Results))
	for _, p := range payload.Results {
		records = append(records, p.toRecord())
	}

	c.log.InfoWithFields("fetched people", []logger.Field{
		logger.Count(len(records)),
		logger.Duration(time.Since(start)),
	})

	return records, nil
}
