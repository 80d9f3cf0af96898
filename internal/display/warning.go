package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/repoqa/internal/models"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Files      []string // Related files (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("\x1b[33m")
	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Files) > 0 {
		b.WriteString("    ")
		if len(w.Files) == 1 {
			b.WriteString("Affected file:\n")
		} else {
			b.WriteString("Affected files:\n")
		}
		for i, file := range w.Files {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, file))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	b.WriteString("\x1b[0m")

	fmt.Fprint(out, b.String())
}

// MissingInputMessage is shown when the repository path or question is blank
const MissingInputMessage = "Please provide both a repository path and a question."

// WarnMissingInput creates the warning shown before any dispatch happens
func WarnMissingInput() Warning {
	return Warning{
		Title:      "Missing Input",
		Message:    MissingInputMessage,
		Suggestion: `repoqa ask --repo <path> "list files"`,
	}
}

// WarnFailedAnswer creates a warning describing a failed answer
func WarnFailedAnswer(answer models.Answer) Warning {
	w := Warning{
		Title:   fmt.Sprintf("Question could not be answered (%s)", answer.Intent),
		Message: answer.Text,
	}
	if answer.Err == nil {
		return w
	}

	switch answer.Err.Kind {
	case models.ErrorKindNotFound:
		w.Files = []string{answer.Argument}
		w.Suggestion = "Ask \"list files\" to see what the repository contains"
	case models.ErrorKindPattern:
		w.Suggestion = "Search terms are regular expressions; escape characters like ( [ * +"
	case models.ErrorKindTimeout:
		w.Suggestion = "Raise --timeout or narrow the search in .repoqa/config.yaml"
	case models.ErrorKindPath:
		w.Suggestion = "Check that --repo points at a readable directory"
	}
	return w
}

// WarnSkippedFiles creates a warning listing files a search could not read
func WarnSkippedFiles(files []string) Warning {
	return Warning{
		Title: "Some files were skipped",
		Files: files,
	}
}
