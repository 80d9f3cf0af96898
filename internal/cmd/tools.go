package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/repoqa/internal/display"
	"github.com/harrison/repoqa/internal/tools"
)

// NewListCommand creates the ls command
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [dir]",
		Short: "List the entries of a directory (hidden entries omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := tools.DefaultDir
			if len(args) == 1 {
				dir = args[0]
			}

			names, err := tools.List(dir)
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// NewCatCommand creates the cat command
func NewCatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <file>...",
		Short: "Print one or more text files",
		Long: `Print one or more text files.

Each file is read independently: a missing or unreadable file is reported
on stderr and the remaining files are still printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, content := range tools.Read(args) {
				if content.Err != nil {
					failed++
					fmt.Fprintln(cmd.ErrOrStderr(), content.Text())
					continue
				}
				fmt.Fprint(cmd.OutOrStdout(), content.Content)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be read", failed, len(args))
			}
			return nil
		},
	}
}

// NewGrepCommand creates the grep command
func NewGrepCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "grep <pattern> [dir]",
		Short: "Search files for a regular expression",
		Long: `Search every file under dir (default ".") for lines matching pattern.

Matches are printed as path:line:text. Binary files are skipped. The search
section of the configuration file narrows which files are visited.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: grepCommand,
	}
}

func grepCommand(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	dir := tools.DefaultDir
	if len(args) == 2 {
		dir = args[1]
	}

	rt, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx, cancel := rt.withTimeout(cmd.Context())
	defer cancel()

	result, err := tools.Search(ctx, pattern, dir, rt.cfg.SearchOptions())
	if err != nil {
		return err
	}
	rt.log.LogDebug(fmt.Sprintf("grep %q: %d matches in %d files", pattern, len(result.Matches), result.FilesScanned))

	if len(result.Skipped) > 0 {
		display.WarnSkippedFiles(result.Skipped).Display(cmd.ErrOrStderr())
	}

	if len(result.Matches) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No results found for '%s'.\n", pattern)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), result.String())
	return nil
}
