package models

import (
	"fmt"
	"strings"
)

// SearchMatch is one line matching a search pattern
type SearchMatch struct {
	File       string // Path as visited during the walk
	LineNumber int    // One-based
	Line       string // Line text with surrounding whitespace trimmed
}

// String formats the match as "path:line:text"
func (m SearchMatch) String() string {
	return fmt.Sprintf("%s:%d:%s", m.File, m.LineNumber, m.Line)
}

// FormatMatches joins matches one per line in the given order.
// Returns an empty string for no matches.
func FormatMatches(matches []SearchMatch) string {
	if len(matches) == 0 {
		return ""
	}
	lines := make([]string, len(matches))
	for i, m := range matches {
		lines[i] = m.String()
	}
	return strings.Join(lines, "\n")
}
