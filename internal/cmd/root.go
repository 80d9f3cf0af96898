package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for repoqa
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repoqa",
		Short: "Answer questions about a code repository",
		Long: `repoqa answers free-text questions about a code repository.

Questions are routed by keyword to one of three file-system tools:
listing files, reading a file, or searching file contents with a regular
expression. Anything else gets a short help message.

Configuration is loaded from .repoqa/config.yaml if present.
CLI flags override configuration file settings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text; main prints errors
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default: .repoqa/config.yaml)")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error")
	flags.String("log-dir", "", "Directory for the JSON log file (empty disables it)")
	flags.String("render", "", "Output format: auto, plain, markdown, html, terminal")
	flags.String("timeout", "", "Maximum time per question (e.g., 10s, 1m; 0 disables)")

	cmd.AddCommand(NewAskCommand())
	cmd.AddCommand(NewListCommand())
	cmd.AddCommand(NewCatCommand())
	cmd.AddCommand(NewGrepCommand())
	cmd.AddCommand(NewSmokeCommand())

	return cmd
}
