package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0" {
		t.Errorf("Expected version 1.0, got %s", cfg.Version)
	}

	if cfg.API.BaseURL != "https://swapi.dev/api/" {
		t.Errorf("Expected default base URL, got %s", cfg.API.BaseURL)
	}

	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("Expected API timeout 15s, got %v", cfg.API.Timeout)
	}

	if cfg.Output.DefaultFormat != "text" {
		t.Errorf("Expected output format text, got %s", cfg.Output.DefaultFormat)
	}

	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("Expected server addr 127.0.0.1:8080, got %s", cfg.Server.Addr)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Expected log level info, got %s", cfg.Logging.Level)
	}
}

func TestConfigValidation(t *testing.T) {
	modified := func(mutate func(*Config)) *Config {
		cfg := DefaultConfig()
		mutate(cfg)
		return cfg
	}

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			config:  DefaultConfig(),
			wantErr: false,
		},
		{
			name:    "missing base url",
			config:  modified(func(c *Config) { c.API.BaseURL = "" }),
			wantErr: true,
			errMsg:  "api.base_url is required",
		},
		{
			name:    "unsupported scheme",
			config:  modified(func(c *Config) { c.API.BaseURL = "ftp://swapi.dev/api/" }),
			wantErr: true,
			errMsg:  "invalid api.base_url: ftp://swapi.dev/api/ (scheme must be http or https)",
		},
		{
			name:    "zero api timeout",
			config:  modified(func(c *Config) { c.API.Timeout = 0 }),
			wantErr: true,
			errMsg:  "api.timeout must be positive",
		},
		{
			name:    "invalid output format",
			config:  modified(func(c *Config) { c.Output.DefaultFormat = "invalid" }),
			wantErr: true,
			errMsg:  "invalid output format: invalid (must be one of: json, text, markdown, csv)",
		},
		{
			name:    "invalid color mode",
			config:  modified(func(c *Config) { c.Output.ColorMode = "invalid" }),
			wantErr: true,
			errMsg:  "invalid color mode: invalid (must be one of: auto, always, never)",
		},
		{
			name:    "invalid theme",
			config:  modified(func(c *Config) { c.Output.Theme = "neon" }),
			wantErr: true,
			errMsg:  "invalid theme: neon (must be one of: default, high-contrast, minimal)",
		},
		{
			name:    "missing server addr",
			config:  modified(func(c *Config) { c.Server.Addr = "" }),
			wantErr: true,
			errMsg:  "server.addr is required",
		},
		{
			name:    "negative shutdown timeout",
			config:  modified(func(c *Config) { c.Server.ShutdownTimeout = -time.Second }),
			wantErr: true,
			errMsg:  "server.shutdown_timeout must be non-negative",
		},
		{
			name:    "invalid log level",
			config:  modified(func(c *Config) { c.Logging.Level = "trace" }),
			wantErr: true,
			errMsg:  "invalid log level: trace (must be one of: debug, info, warn, error)",
		},
		{
			name:    "empty log level is allowed",
			config:  modified(func(c *Config) { c.Logging.Level = "" }),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errMsg != "" && err.Error() != tt.errMsg {
					t.Errorf("Expected error message '%s', got '%s'", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
			}
		})
	}
}

func TestConfigMerging(t *testing.T) {
	dst := DefaultConfig()

	src := &Config{
		API: APIConfig{
			BaseURL: "http://localhost:9000/api/",
		},
		Output: OutputConfig{
			DefaultFormat: "json",
			Verbose:       true,
		},
		Logging: LoggingConfig{
			File: "/tmp/swdex.log",
		},
	}

	mergeConfigs(dst, src)

	if dst.API.BaseURL != "http://localhost:9000/api/" {
		t.Errorf("Expected merged base URL, got %s", dst.API.BaseURL)
	}
	if dst.Output.DefaultFormat != "json" {
		t.Errorf("Expected output format json, got %s", dst.Output.DefaultFormat)
	}
	if !dst.Output.Verbose {
		t.Errorf("Expected verbose to be true")
	}
	if dst.Logging.File != "/tmp/swdex.log" {
		t.Errorf("Expected log file to be merged, got %s", dst.Logging.File)
	}

	// Unset values in source don't override destination
	if dst.API.Timeout != 15*time.Second {
		t.Errorf("Expected API timeout to remain 15s, got %v", dst.API.Timeout)
	}
	if dst.Server.Addr != "127.0.0.1:8080" {
		t.Errorf("Expected server addr to remain, got %s", dst.Server.Addr)
	}
	if dst.Logging.Level != "info" {
		t.Errorf("Expected log level to remain info, got %s", dst.Logging.Level)
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "relative path",
			input:    "./config.yaml",
			expected: "./config.yaml",
		},
		{
			name:     "absolute path",
			input:    "/etc/swdex/config.yaml",
			expected: "/etc/swdex/config.yaml",
		},
		{
			name:     "home directory path",
			input:    "~/.config/swdex/config.yaml",
			expected: "~/.config/swdex/config.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if tt.input == "~/.config/swdex/config.yaml" {
				if result == tt.input {
					t.Errorf("Expected path to be expanded, but got same path")
				}
			} else {
				if result != tt.expected {
					t.Errorf("Expected %s, got %s", tt.expected, result)
				}
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := GetConfigPaths()
	if len(paths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(paths))
	}

	expectedPaths := []string{
		"./.swdex.yaml",
		"~/.config/swdex/config.yaml",
		"/etc/swdex/config.yaml",
	}

	for i, expectedPath := range expectedPaths {
		if i >= len(paths) {
			break
		}
		if expectedPath == "~/.config/swdex/config.yaml" {
			if paths[i] == expectedPath {
				t.Errorf("Expected path %s to be expanded", expectedPath)
			}
		} else if paths[i] != expectedPath {
			t.Errorf("Expected path %s, got %s", expectedPath, paths[i])
		}
	}
}
