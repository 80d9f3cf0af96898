package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogDir != "" {
		t.Errorf("LogDir = %q, want empty", cfg.LogDir)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.Render != RenderAuto {
		t.Errorf("Render = %q, want %q", cfg.Render, RenderAuto)
	}
	if cfg.Search.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("Search.MaxFileSize = %d, want %d", cfg.Search.MaxFileSize, DefaultMaxFileSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got %v", err)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

// TestLoadConfigValidFile tests loading a full YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	path := writeConfig(t, `log_level: debug
log_dir: /tmp/repoqa/logs
timeout: 2m
render: markdown
search:
  skip_hidden: true
  exclude_dirs: [node_modules, .git]
  extensions: [.go, .py]
  max_depth: 3
  max_file_size: 1048576
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogDir != "/tmp/repoqa/logs" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/tmp/repoqa/logs")
	}
	if cfg.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %v, want 2m", cfg.Timeout)
	}
	if cfg.Render != RenderMarkdown {
		t.Errorf("Render = %q, want %q", cfg.Render, RenderMarkdown)
	}

	want := SearchConfig{
		SkipHidden:  true,
		ExcludeDirs: []string{"node_modules", ".git"},
		Extensions:  []string{".go", ".py"},
		MaxDepth:    3,
		MaxFileSize: 1048576,
	}
	if !reflect.DeepEqual(cfg.Search, want) {
		t.Errorf("Search = %+v, want %+v", cfg.Search, want)
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

// TestLoadConfigPartialValues tests that partial config merges with defaults
func TestLoadConfigPartialValues(t *testing.T) {
	path := writeConfig(t, "log_level: warn\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s (default)", cfg.Timeout)
	}
	if cfg.Render != RenderAuto {
		t.Errorf("Render = %q, want %q (default)", cfg.Render, RenderAuto)
	}
}

func TestLoadConfigSearchKeepsDefaultFileSize(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "search:\n  skip_hidden: true\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !cfg.Search.SkipHidden {
		t.Error("SkipHidden = false, want true")
	}
	if cfg.Search.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("MaxFileSize = %d, want default %d", cfg.Search.MaxFileSize, DefaultMaxFileSize)
	}

	cfg, err = LoadConfig(writeConfig(t, "search:\n  max_file_size: 0\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Search.MaxFileSize != 0 {
		t.Errorf("MaxFileSize = %d, want 0 (unlimited)", cfg.Search.MaxFileSize)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "log_level: debug\ntimeout: [this is not valid\n",
			wantErr: "failed to parse config file",
		},
		{
			name:    "bad timeout",
			content: "timeout: soon\n",
			wantErr: "invalid timeout format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("LoadConfig() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFromDir(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default", cfg.LogLevel)
	}

	if err := os.MkdirAll(filepath.Join(dir, ".repoqa"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".repoqa", "config.yaml"), []byte("render: plain\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}
	if cfg.Render != RenderPlain {
		t.Errorf("Render = %q, want %q", cfg.Render, RenderPlain)
	}
}

// TestMergeWithFlags verifies that only non-nil flags override
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	level := "trace"
	timeout := 5 * time.Second

	cfg.MergeWithFlags(&level, nil, &timeout, nil)

	if cfg.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "trace")
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
	if cfg.LogDir != "" {
		t.Errorf("LogDir = %q, want unchanged", cfg.LogDir)
	}
	if cfg.Render != RenderAuto {
		t.Errorf("Render = %q, want unchanged", cfg.Render)
	}

	dir := "/var/log/repoqa"
	render := RenderHTML
	cfg.MergeWithFlags(nil, &dir, nil, &render)
	if cfg.LogDir != dir || cfg.Render != RenderHTML {
		t.Errorf("LogDir/Render = %q/%q, want %q/%q", cfg.LogDir, cfg.Render, dir, RenderHTML)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{name: "defaults", modify: func(*Config) {}},
		{name: "zero timeout", modify: func(c *Config) { c.Timeout = 0 }},
		{name: "upper case level", modify: func(c *Config) { c.LogLevel = " DEBUG " }},
		{name: "bad level", modify: func(c *Config) { c.LogLevel = "loud" }, wantErr: "invalid log_level"},
		{name: "bad render", modify: func(c *Config) { c.Render = "pdf" }, wantErr: "invalid render"},
		{name: "negative timeout", modify: func(c *Config) { c.Timeout = -time.Second }, wantErr: "timeout must be >= 0"},
		{name: "negative depth", modify: func(c *Config) { c.Search.MaxDepth = -1 }, wantErr: "search.max_depth"},
		{name: "negative size", modify: func(c *Config) { c.Search.MaxFileSize = -1 }, wantErr: "search.max_file_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateNormalizesLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = " Warn"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "warn")
	}
}

func TestSearchOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search = SearchConfig{SkipHidden: true, ExcludeDirs: []string{"vendor"}, MaxDepth: 2}

	opts := cfg.SearchOptions()

	if !opts.SkipHidden || opts.MaxDepth != 2 || len(opts.ExcludeDirs) != 1 || opts.ExcludeDirs[0] != "vendor" {
		t.Errorf("SearchOptions() = %+v", opts)
	}
}
