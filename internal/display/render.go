package display

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/yuin/goldmark"

	"github.com/harrison/repoqa/internal/models"
)

// Render modes
const (
	ModeAuto     = "auto"
	ModePlain    = "plain"
	ModeMarkdown = "markdown"
	ModeHTML     = "html"
	ModeTerminal = "terminal"
)

// wordWrap is the terminal rendering width
const wordWrap = 80

// Renderer formats answers for output. It is safe for use by one goroutine.
type Renderer struct {
	mode     string
	markdown goldmark.Markdown
	term     *glamour.TermRenderer
}

// NewRenderer creates a Renderer for mode. Auto mode resolves against out:
// terminal for a TTY, plain otherwise.
func NewRenderer(mode string, out io.Writer) (*Renderer, error) {
	tty := IsTerminal(out)
	if mode == ModeAuto || mode == "" {
		mode = ModePlain
		if tty {
			mode = ModeTerminal
		}
	}

	r := &Renderer{mode: mode}
	switch mode {
	case ModePlain, ModeMarkdown:
	case ModeHTML:
		r.markdown = goldmark.New()
	case ModeTerminal:
		style := glamour.WithStandardStyle("notty")
		if tty {
			style = glamour.WithAutoStyle()
		}
		term, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wordWrap))
		if err != nil {
			return nil, fmt.Errorf("failed to create terminal renderer: %w", err)
		}
		r.term = term
	default:
		return nil, fmt.Errorf("unknown render mode %q", mode)
	}

	return r, nil
}

// Mode returns the resolved render mode
func (r *Renderer) Mode() string {
	return r.mode
}

// Render formats answer. Output always ends with a newline.
func (r *Renderer) Render(answer models.Answer) (string, error) {
	switch r.mode {
	case ModeMarkdown:
		return Markdown(answer), nil
	case ModeHTML:
		var buf bytes.Buffer
		if err := r.markdown.Convert([]byte(Markdown(answer)), &buf); err != nil {
			return "", fmt.Errorf("failed to render html: %w", err)
		}
		return buf.String(), nil
	case ModeTerminal:
		out, err := r.term.Render(Markdown(answer))
		if err != nil {
			return "", fmt.Errorf("failed to render for terminal: %w", err)
		}
		return ensureNewline(out), nil
	default:
		return ensureNewline(answer.Text), nil
	}
}

// Markdown builds a markdown document for answer: the heading as an escaped
// paragraph and, when present, the payload as a fenced block.
func Markdown(answer models.Answer) string {
	var b strings.Builder

	heading := answer.Heading
	if heading == "" {
		heading = answer.Text
	}
	if answer.Failed() {
		b.WriteString("**Error:** ")
	}
	b.WriteString(escapeMarkdown(heading))
	b.WriteString("\n")

	if !answer.HasBody() || answer.Body == "" {
		return b.String()
	}

	fence := fenceFor(answer.Body)
	b.WriteString("\n")
	b.WriteString(fence)
	b.WriteString(languageHint(answer))
	b.WriteString("\n")
	b.WriteString(ensureNewline(answer.Body))
	b.WriteString(fence)
	b.WriteString("\n")
	return b.String()
}

// languageHint tags fenced file content with the file's extension
func languageHint(answer models.Answer) string {
	if answer.Intent != models.IntentRead {
		return ""
	}
	name := answer.Argument
	if i := strings.LastIndexByte(name, '.'); i >= 0 && i < len(name)-1 {
		ext := name[i+1:]
		if !strings.ContainsAny(ext, "/\\ `") {
			return ext
		}
	}
	return ""
}

// fenceFor returns a backtick fence longer than any backtick run in body
func fenceFor(body string) string {
	longest, run := 0, 0
	for _, c := range body {
		if c == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
	">", `\>`,
	"#", `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func ensureNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// IsTerminal reports whether w is a terminal file descriptor
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
