package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/repoqa/internal/display"
)

// smokeQuestions exercise each tool once against a repository
var smokeQuestions = []string{
	"List files",
	"Read main.py",
	"Search for Streamlit",
}

// NewSmokeCommand creates the smoke command
func NewSmokeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smoke",
		Short: "Run the built-in smoke questions against a repository",
		Long: `Run a fixed set of questions against the repository at --repo
and print each answer:

  List files
  Read main.py
  Search for Streamlit

The command fails if any question cannot be answered.`,
		Args: cobra.NoArgs,
		RunE: smokeCommand,
	}

	cmd.Flags().String("repo", ".", "Path to the repository")

	return cmd
}

func smokeCommand(cmd *cobra.Command, args []string) error {
	repo, _ := cmd.Flags().GetString("repo")

	rt, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	out := cmd.OutOrStdout()
	renderer, err := rt.renderer(out)
	if err != nil {
		return err
	}
	d := rt.dispatcher()

	progress := display.NewProgressIndicator(out, "smoke questions", len(smokeQuestions))
	progress.Start()
	for _, question := range smokeQuestions {
		progress.Step(question)

		answer := d.Answer(cmd.Context(), repo, question)
		if answer.Failed() {
			progress.Fail(answer.Text)
			continue
		}

		rendered, err := renderer.Render(answer)
		if err != nil {
			return err
		}
		fmt.Fprint(out, rendered)
	}
	progress.Complete()

	if progress.Failed() > 0 {
		return fmt.Errorf("%d of %d smoke questions failed", progress.Failed(), len(smokeQuestions))
	}
	return nil
}
