package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/repoqa/internal/config"
	"github.com/harrison/repoqa/internal/dispatcher"
	"github.com/harrison/repoqa/internal/display"
	"github.com/harrison/repoqa/internal/logger"
)

// session bundles what every subcommand needs: merged configuration and
// the loggers built from it.
type session struct {
	cfg    *config.Config
	log    logger.Logger
	closer io.Closer // file logger, nil when file logging is off
}

// newSession loads configuration, applies flag overrides, and opens loggers.
// Callers must Close the session.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	rt := &session{cfg: cfg, log: console}

	if cfg.LogDir != "" {
		fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to create file logger: %w", err)
		}
		rt.log = logger.NewMultiLogger(console, fileLog)
		rt.closer = fileLog
		console.LogDebug(fmt.Sprintf("logging to %s", fileLog.Path()))
	}

	return rt, nil
}

// loadConfig reads --config (or .repoqa/config.yaml) and merges changed flags
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	configPath, _ := flags.GetString("config")
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var logLevelPtr, logDirPtr, renderPtr *string
	var timeoutPtr *time.Duration

	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		logLevelPtr = &v
	}
	if flags.Changed("log-dir") {
		v, _ := flags.GetString("log-dir")
		logDirPtr = &v
	}
	if flags.Changed("render") {
		v, _ := flags.GetString("render")
		renderPtr = &v
	}
	if flags.Changed("timeout") {
		v, _ := flags.GetString("timeout")
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout format: %w", err)
		}
		timeoutPtr = &timeout
	}

	cfg.MergeWithFlags(logLevelPtr, logDirPtr, timeoutPtr, renderPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// dispatcher builds a Dispatcher wired to the session's loggers and settings
func (rt *session) dispatcher() *dispatcher.Dispatcher {
	return dispatcher.New(
		dispatcher.WithLogger(rt.log),
		dispatcher.WithSearchOptions(rt.cfg.SearchOptions()),
		dispatcher.WithTimeout(rt.cfg.Timeout),
	)
}

// renderer builds the answer renderer for out
func (rt *session) renderer(out io.Writer) (*display.Renderer, error) {
	r, err := display.NewRenderer(rt.cfg.Render, out)
	if err != nil {
		return nil, err
	}
	rt.log.LogDebug(fmt.Sprintf("rendering answers as %s", r.Mode()))
	return r, nil
}

// withTimeout applies the configured deadline to direct tool calls
func (rt *session) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if rt.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, rt.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

// Close flushes and closes the file logger, if any
func (rt *session) Close() error {
	if rt.closer == nil {
		return nil
	}
	return rt.closer.Close()
}
