package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the root configuration for tahvelcheck, stored in
// ~/.tahvelcheck/config.json. The file supports single-line // comments
// for documentation purposes.
type Config struct {
	// BaseURL is the Tahvel backend root.
	BaseURL string `json:"base_url"`
	// Lang is the language parameter sent on listing requests.
	Lang string `json:"lang"`
	// PageSize is the page size for paginated endpoints.
	PageSize int `json:"page_size"`
	// TimeoutSeconds is the per-request HTTP timeout.
	TimeoutSeconds int `json:"timeout_seconds"`
}

const (
	// DefaultBaseURL is the production Tahvel backend.
	DefaultBaseURL = "https://tahvel.edu.ee/hois_back"
	// DefaultLang requests Estonian names, matching the Tahvel UI.
	DefaultLang = "ET"
	// DefaultPageSize matches the page size the Tahvel frontend uses.
	DefaultPageSize = 50
	// DefaultTimeoutSeconds is the per-request HTTP timeout.
	DefaultTimeoutSeconds = 30
)

// defaultConfig returns a Config pre-filled with sensible defaults.
func defaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		Lang:           DefaultLang,
		PageSize:       DefaultPageSize,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// configTemplate is the annotated config written on first run.
// Lines whose trimmed content starts with // are stripped before JSON
// parsing, allowing human-readable documentation inside the file.
const configTemplate = `// tahvelcheck configuration – ~/.tahvelcheck/config.json
//
// All settings are optional; the built-in defaults shown below work out
// of the box against the production Tahvel instance.
{
  // Tahvel backend root URL.
  "base_url": "https://tahvel.edu.ee/hois_back",

  // Language parameter for listing requests ("ET" or "EN").
  "lang": "ET",

  // Page size for paginated endpoints (journals, journal entries).
  "page_size": 50,

  // Per-request HTTP timeout in seconds.
  "timeout_seconds": 30
}
`

// configFilePath returns the path to ~/.tahvelcheck/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".tahvelcheck", "config.json"), nil
}

// stripLineComments removes lines whose leading non-whitespace content
// starts with //. Only full-line comments are handled; inline comments
// are not stripped.
func stripLineComments(data []byte) []byte {
	var out []byte
	for _, line := range bytes.Split(data, []byte("\n")) {
		if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), []byte("//")) {
			continue
		}
		out = append(out, line...)
		out = append(out, '\n')
	}
	return out
}

// Load reads ~/.tahvelcheck/config.json, creating it with annotated
// defaults on first run. Lines starting with // are treated as comments
// and stripped before JSON parsing.
func Load() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return defaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	}
	if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	cleaned := stripLineComments(data)
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	// Fill zero-value fields with built-in defaults so callers always get
	// a usable Config even if the user only partially fills in the file.
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Lang == "" {
		cfg.Lang = DefaultLang
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated
// default config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
