package config

// SampleConfig returns a fully commented configuration file
func SampleConfig() string {
	return `# swdex configuration
version: "1.0"

api:
  # Root of the API; people/ is appended to it
  base_url: "https://swapi.dev/api/"
  # Whole-request timeout for the people fetch
  timeout: 15s

output:
  # Format for non-interactive commands: text, json, markdown, csv
  default_format: "text"
  # auto, always, never
  color_mode: "auto"
  # default, high-contrast, minimal
  theme: "default"
  verbose: false

server:
  # Listen address for "swdex serve"
  addr: "127.0.0.1:8080"
  read_header_timeout: 5s
  shutdown_timeout: 10s

logging:
  # debug, info, warn, error
  level: "info"
  # Log file; the interactive browser writes logs only here
  file: ""
`
}

// MinimalSampleConfig returns a compact configuration file
func MinimalSampleConfig() string {
	return `version: "1.0"
api:
  base_url: "https://swapi.dev/api/"
  timeout: 15s
output:
  default_format: "text"
`
}
