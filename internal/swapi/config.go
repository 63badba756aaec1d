package swapi

import (
	"fmt"
	"net/url"
	"time"
)

// DefaultBaseURL is the public API root
const DefaultBaseURL = "https://swapi.dev/api/"

// PeoplePath is appended to the base URL for the list request
const PeoplePath = "people/"

// Config holds client configuration
type Config struct {
	// BaseURL is the API root; PeoplePath is appended to it
	BaseURL string `json:"base_url"`

	// Timeout bounds the whole request, body read included
	Timeout time.Duration `json:"timeout"`
}

// DefaultConfig returns a default client configuration
func DefaultConfig() *Config {
	return &Config{
		BaseURL: DefaultBaseURL,
		Timeout: 15 * time.Second,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("swapi: base_url is required")
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("swapi: invalid base_url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("swapi: base_url must be an absolute URL, got %q", c.BaseURL)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("swapi: timeout must be positive")
	}

	return nil
}
