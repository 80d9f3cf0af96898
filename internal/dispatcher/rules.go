package dispatcher

import (
	"strings"

	"github.com/harrison/repoqa/internal/models"
)

// Request is a classified question: the intent that matched first and the
// argument sliced out of the question text.
type Request struct {
	Intent   models.Intent
	Keyword  string // Keyword the argument was taken after, if any
	Argument string // Filename or search term; empty when none was given
}

// rule is one entry of the ordered intent table
type rule struct {
	intent  models.Intent
	matches func(lower string) bool
	extract func(question string) (keyword, argument string)
}

// rules are tried in order; the first match wins
var rules = []rule{
	{intent: models.IntentList, matches: matchesList},
	{intent: models.IntentRead, matches: matchesRead, extract: extractFilename},
	{intent: models.IntentSearch, matches: matchesSearch, extract: extractSearchTerm},
}

// searchKeywords in extraction priority order
var searchKeywords = []string{"search", "grep", "find"}

var quoteStripper = strings.NewReplacer("'", "", `"`, "")

// Classify maps a free-text question to a Request.
// Detection is case-insensitive; the argument keeps the question's casing.
func Classify(question string) Request {
	lower := strings.ToLower(question)
	for _, r := range rules {
		if !r.matches(lower) {
			continue
		}
		req := Request{Intent: r.intent}
		if r.extract != nil {
			req.Keyword, req.Argument = r.extract(question)
		}
		return req
	}
	return Request{Intent: models.IntentHelp}
}

func matchesList(lower string) bool {
	return strings.Contains(lower, "list files") ||
		(strings.Contains(lower, "files") && strings.Contains(lower, "in the repository"))
}

func matchesRead(lower string) bool {
	if !strings.Contains(lower, "read") {
		return false
	}
	if strings.Contains(lower, "file") || strings.Contains(lower, "content") || strings.Contains(lower, "of") {
		return true
	}
	return looksLikePath(afterLast(lower, "read"))
}

func matchesSearch(lower string) bool {
	for _, kw := range searchKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// looksLikePath reports whether s is a single token shaped like a file
// name ("main.py", "cmd/app", "docs\\x")
func looksLikePath(s string) bool {
	token := strings.TrimSpace(quoteStripper.Replace(s))
	if token == "" || len(strings.Fields(token)) != 1 {
		return false
	}
	return strings.ContainsAny(token, `./\`)
}

func extractFilename(question string) (string, string) {
	if strings.Contains(strings.ToLower(question), "content of") {
		name := strings.TrimSpace(afterLast(question, "content of"))
		return "content of", strings.TrimSpace(quoteStripper.Replace(name))
	}

	name := strings.TrimSpace(afterLast(question, "read"))
	name = quoteStripper.Replace(name)
	name = removeFold(name, "file")
	return "read", strings.TrimSpace(name)
}

// extractSearchTerm removes every "for" from the term, including inside
// words: "search for format" searches "mat".
func extractSearchTerm(question string) (string, string) {
	lower := strings.ToLower(question)
	keyword := ""
	for _, kw := range searchKeywords {
		if strings.Contains(lower, kw) {
			keyword = kw
			break
		}
	}

	term := strings.TrimSpace(afterLast(question, keyword))
	term = removeFold(term, "for")
	term = quoteStripper.Replace(term)
	return keyword, strings.TrimSpace(term)
}

// afterLast returns the text after the last case-insensitive occurrence of
// keyword, or s unchanged when keyword does not occur.
func afterLast(s, keyword string) string {
	for i := len(s) - len(keyword); i >= 0; i-- {
		if strings.EqualFold(s[i:i+len(keyword)], keyword) {
			return s[i+len(keyword):]
		}
	}
	return s
}

// removeFold deletes every non-overlapping case-insensitive occurrence of
// word from s, scanning left to right.
func removeFold(s, word string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if i+len(word) <= len(s) && strings.EqualFold(s[i:i+len(word)], word) {
			i += len(word)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
