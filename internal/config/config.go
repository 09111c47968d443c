// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Output formats for the optimize command
const (
	FormatLaTeX = "latex"
	FormatJSON  = "json"
	FormatText  = "text"
)

// Environment variables read by FromEnv
const (
	EnvAPIKey     = "GEMINI_API_KEY"
	EnvConfigPath = "RESUME_TAILOR_CONFIG"
	EnvPort       = "PORT"
)

// Config represents the configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume   string `json:"resume,omitempty" yaml:"resume,omitempty"`     // Path to master resume (JSON or YAML)
	Job      string `json:"job,omitempty" yaml:"job,omitempty"`           // Path to job description file, or "-" for stdin
	JobURL   string `json:"job_url,omitempty" yaml:"job_url,omitempty"`   // URL to fetch job posting from
	Template string `json:"template,omitempty" yaml:"template,omitempty"` // Path to LaTeX template
	Output   string `json:"output,omitempty" yaml:"output,omitempty"`     // Output file; empty writes to stdout

	// Selection
	Format       string `json:"format,omitempty" yaml:"format,omitempty"`               // latex, json or text
	MaxProjects  int    `json:"max_projects,omitempty" yaml:"max_projects,omitempty"`   // Projects kept; -1 keeps all
	KeywordLimit int    `json:"keyword_limit,omitempty" yaml:"keyword_limit,omitempty"` // Keywords reported

	// Layout checks. MaxPages applies only when check-latex compiles; MaxCharsPerLine 0 disables the line check.
	MaxPages         int      `json:"max_pages,omitempty" yaml:"max_pages,omitempty"`
	MaxCharsPerLine  int      `json:"max_chars_per_line,omitempty" yaml:"max_chars_per_line,omitempty"`
	ForbiddenPhrases []string `json:"forbidden_phrases,omitempty" yaml:"forbidden_phrases,omitempty"`

	// Behavior
	APIKey        string `json:"api_key,omitempty" yaml:"api_key,omitempty"`                 // Gemini API key
	Model         string `json:"model,omitempty" yaml:"model,omitempty"`                     // Gemini model override for resume extraction
	UseBrowser    bool   `json:"use_browser,omitempty" yaml:"use_browser,omitempty"`         // Use headless browser for SPA sites
	FetchCacheTTL string `json:"fetch_cache_ttl,omitempty" yaml:"fetch_cache_ttl,omitempty"` // e.g. "15m"
	Verbose       bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`                 // Print detailed debug information

	// Server
	Port int `json:"port,omitempty" yaml:"port,omitempty"`
}

// Defaults returns the built-in defaults.
func Defaults() Config {
	return Config{
		Format:        FormatLaTeX,
		MaxProjects:   3,
		KeywordLimit:  12,
		MaxPages:      1,
		FetchCacheTTL: "15m",
		Port:          8080,
	}
}

// FromEnv returns a Config holding only the values set in the environment.
func FromEnv() Config {
	cfg := Config{APIKey: os.Getenv(EnvAPIKey)}
	if port, err := strconv.Atoi(os.Getenv(EnvPort)); err == nil {
		cfg.Port = port
	}
	return cfg
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	// Validate numeric ranges
	if c.MaxProjects < -1 {
		return fmt.Errorf("config error: 'max_projects' must be -1 or greater")
	}
	if c.KeywordLimit < 0 {
		return fmt.Errorf("config error: 'keyword_limit' must be non-negative")
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("config error: 'max_pages' must be non-negative")
	}
	if c.MaxCharsPerLine < 0 {
		return fmt.Errorf("config error: 'max_chars_per_line' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.Format {
	case "", FormatLaTeX, FormatJSON, FormatText:
	default:
		return fmt.Errorf("config error: unknown format %q (want latex, json or text)", c.Format)
	}

	if c.FetchCacheTTL != "" {
		if _, err := time.ParseDuration(c.FetchCacheTTL); err != nil {
			return fmt.Errorf("config error: invalid 'fetch_cache_ttl': %w", err)
		}
	}

	// Validate file paths exist (if specified)
	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Job != "" && c.Job != "-" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// CacheTTL returns FetchCacheTTL as a duration; zero when unset or invalid.
func (c *Config) CacheTTL() time.Duration {
	ttl, err := time.ParseDuration(c.FetchCacheTTL)
	if err != nil {
		return 0
	}
	return ttl
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.FetchCacheTTL == "" {
		result.FetchCacheTTL = defaults.FetchCacheTTL
	}

	// Int fields: use default if zero
	if result.MaxProjects == 0 {
		result.MaxProjects = defaults.MaxProjects
	}
	if result.KeywordLimit == 0 {
		result.KeywordLimit = defaults.KeywordLimit
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}
	if result.MaxCharsPerLine == 0 {
		result.MaxCharsPerLine = defaults.MaxCharsPerLine
	}

	// Slice fields: use default if empty
	if len(result.ForbiddenPhrases) == 0 {
		result.ForbiddenPhrases = defaults.ForbiddenPhrases
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
