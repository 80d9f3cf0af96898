package display

import (
	"fmt"
	"io"
)

// ProgressIndicator manages multi-step progress display with ANSI colors
type ProgressIndicator struct {
	writer  io.Writer
	label   string
	total   int
	current int
	failed  int
}

// NewProgressIndicator creates a progress indicator for total steps of label
func NewProgressIndicator(w io.Writer, label string, total int) *ProgressIndicator {
	return &ProgressIndicator{
		writer: w,
		label:  label,
		total:  total,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Running %s:\n", p.label)
}

// Step displays progress for current item: [N/Total] item (cyan)
func (p *ProgressIndicator) Step(item string) {
	p.current++
	fmt.Fprintf(p.writer, "\x1b[36m  [%d/%d] %s\x1b[0m\n", p.current, p.total, item)
}

// Fail records the current step as failed and shows why (red)
func (p *ProgressIndicator) Fail(reason string) {
	p.failed++
	fmt.Fprintf(p.writer, "\x1b[31m        ✗ %s\x1b[0m\n", reason)
}

// Failed returns how many steps failed
func (p *ProgressIndicator) Failed() int {
	return p.failed
}

// Complete displays the summary: a green check when every step passed
func (p *ProgressIndicator) Complete() {
	if p.failed == 0 {
		fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m Completed %d %s\n", p.total, p.label)
		return
	}
	fmt.Fprintf(p.writer, "\x1b[31m✗\x1b[0m %d of %d %s failed\n", p.failed, p.total, p.label)
}
