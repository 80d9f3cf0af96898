package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/repoqa/internal/display"
	"github.com/harrison/repoqa/internal/filelock"
)

// NewAskCommand creates the ask command
func NewAskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Answer a question about a repository",
		Long: `Answer a free-text question about the repository at --repo.

Questions are matched by keyword, in this order:
  "list files" or "files in the repository"   lists the top-level entries
  "read" or "content of" followed by a name   prints a file
  "search", "grep" or "find" and a pattern    searches every file (regular expression)

Anything else prints a short help message. A failed lookup is still an answer:
its message is printed, a warning with a suggestion goes to stderr, and the
command exits 0 unless --fail-on-error is set.

Examples:
  repoqa ask --repo . List files
  repoqa ask --repo ~/src/app "Read main.py"
  repoqa ask --repo . search for "func main"
  repoqa ask --render markdown --output answer.md "grep TODO"`,
		Args: cobra.ArbitraryArgs,
		RunE: askCommand,
	}

	cmd.Flags().String("repo", ".", "Path to the repository")
	cmd.Flags().Bool("fail-on-error", false, "Exit non-zero when the question cannot be answered")
	cmd.Flags().String("output", "", "Write the rendered answer to this file instead of stdout")

	return cmd
}

func askCommand(cmd *cobra.Command, args []string) error {
	repo, _ := cmd.Flags().GetString("repo")
	failOnError, _ := cmd.Flags().GetBool("fail-on-error")
	outputPath, _ := cmd.Flags().GetString("output")

	question := strings.TrimSpace(strings.Join(args, " "))
	if strings.TrimSpace(repo) == "" || question == "" {
		display.WarnMissingInput().Display(cmd.ErrOrStderr())
		return nil
	}

	rt, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	// Auto rendering resolves to plain for files
	var target io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		target = io.Discard
	}
	renderer, err := rt.renderer(target)
	if err != nil {
		return err
	}

	answer := rt.dispatcher().Answer(cmd.Context(), repo, question)

	rendered, err := renderer.Render(answer)
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := filelock.LockAndWrite(outputPath, []byte(rendered)); err != nil {
			return fmt.Errorf("failed to write answer: %w", err)
		}
		rt.log.LogInfo(fmt.Sprintf("answer written to %s", outputPath))
	} else {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
	}

	if !answer.Failed() {
		return nil
	}
	display.WarnFailedAnswer(answer).Display(cmd.ErrOrStderr())
	if failOnError {
		return fmt.Errorf("question could not be answered (%s)", answer.Err.Kind)
	}
	return nil
}
