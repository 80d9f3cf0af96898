package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harrison/repoqa/internal/tools"
)

// Render modes for answers
const (
	RenderAuto     = "auto"
	RenderPlain    = "plain"
	RenderMarkdown = "markdown"
	RenderHTML     = "html"
	RenderTerminal = "terminal"
)

// DefaultMaxFileSize bounds the files search reads into memory
const DefaultMaxFileSize int64 = 10 << 20

// SearchConfig narrows the files search questions visit
type SearchConfig struct {
	// SkipHidden skips files and directories whose name starts with "."
	SkipHidden bool `yaml:"skip_hidden"`

	// ExcludeDirs lists directory names never descended into
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// Extensions restricts search to these file extensions (empty = all)
	Extensions []string `yaml:"extensions"`

	// MaxDepth limits recursion depth (0 = unlimited)
	MaxDepth int `yaml:"max_depth"`

	// MaxFileSize skips files larger than this many bytes (0 = unlimited)
	MaxFileSize int64 `yaml:"max_file_size"`
}

// Config represents repoqa configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory for the JSON log file; empty disables file logging
	LogDir string `yaml:"log_dir"`

	// Timeout bounds answering one question (0 = no deadline)
	Timeout time.Duration `yaml:"timeout"`

	// Render selects the answer output format
	Render string `yaml:"render"`

	// Search contains search tool configuration
	Search SearchConfig `yaml:"search"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		LogDir:   "",
		Timeout:  30 * time.Second,
		Render:   RenderAuto,
		Search:   SearchConfig{MaxFileSize: DefaultMaxFileSize},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Durations are written as strings ("30s", "2m")
	type yamlConfig struct {
		LogLevel string       `yaml:"log_level"`
		LogDir   string       `yaml:"log_dir"`
		Timeout  string       `yaml:"timeout"`
		Render   string       `yaml:"render"`
		Search   SearchConfig `yaml:"search"`
	}

	yamlCfg := yamlConfig{Search: cfg.Search}
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	if yamlCfg.Timeout != "" {
		timeout, err := time.ParseDuration(yamlCfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout format %q: %w", yamlCfg.Timeout, err)
		}
		cfg.Timeout = timeout
	}
	if yamlCfg.Render != "" {
		cfg.Render = yamlCfg.Render
	}

	// Keys missing from the search section keep their defaults
	cfg.Search = yamlCfg.Search

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .repoqa/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ".repoqa", "config.yaml")
	return LoadConfig(configPath)
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, logDir *string, timeout *time.Duration, render *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if logDir != nil {
		c.LogDir = *logDir
	}
	if timeout != nil {
		c.Timeout = *timeout
	}
	if render != nil {
		c.Render = *render
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid. The log level is normalized
// to lower case first.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	validRenders := map[string]bool{
		RenderAuto:     true,
		RenderPlain:    true,
		RenderMarkdown: true,
		RenderHTML:     true,
		RenderTerminal: true,
	}
	if !validRenders[c.Render] {
		return fmt.Errorf("invalid render %q, must be one of: auto, plain, markdown, html, terminal", c.Render)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %v", c.Timeout)
	}

	if c.Search.MaxDepth < 0 {
		return fmt.Errorf("search.max_depth must be >= 0, got %d", c.Search.MaxDepth)
	}
	if c.Search.MaxFileSize < 0 {
		return fmt.Errorf("search.max_file_size must be >= 0, got %d", c.Search.MaxFileSize)
	}

	return nil
}

// SearchOptions converts the search section into tool options
func (c *Config) SearchOptions() tools.SearchOptions {
	return tools.SearchOptions{
		SkipHidden:  c.Search.SkipHidden,
		ExcludeDirs: c.Search.ExcludeDirs,
		Extensions:  c.Search.Extensions,
		MaxDepth:    c.Search.MaxDepth,
		MaxFileSize: c.Search.MaxFileSize,
	}
}
