// Package display formats answers, warnings, and progress for the repoqa CLI.
//
// # Rendering Answers
//
// A Renderer turns a models.Answer into output text in one of several modes:
//
//	r, err := display.NewRenderer(display.ModeAuto, os.Stdout)
//	if err != nil {
//	    return err
//	}
//	out, err := r.Render(answer)
//
// Modes:
//   - plain: the answer text exactly as the dispatcher produced it
//   - markdown: the heading as a paragraph and the payload in a fenced block
//   - html: the markdown document converted with goldmark
//   - terminal: the markdown document styled with glamour
//   - auto: terminal when the writer is a TTY, plain otherwise
//
// # Warning Messages
//
//	warning := display.Warning{
//	    Title:      "Missing Input",
//	    Message:    "Please provide both a repository path and a question.",
//	    Suggestion: "repoqa ask --repo . \"list files\"",
//	}
//	warning.Display(os.Stderr)
//
// # Progress Indicators
//
//	progress := display.NewProgressIndicator(os.Stdout, "smoke questions", len(questions))
//	progress.Start()
//	for _, q := range questions {
//	    progress.Step(q)
//	}
//	progress.Complete()
//
// Warnings and progress use ANSI escape codes directly (yellow for warnings,
// cyan for steps, green for completion). All output goes through io.Writer.
package display
