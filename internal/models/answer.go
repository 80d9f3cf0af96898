package models

import (
	"fmt"
	"time"
)

// Intent is the caller's inferred goal, derived from keyword matching
type Intent string

// Recognized intents, in dispatch priority order
const (
	IntentList   Intent = "list"
	IntentRead   Intent = "read"
	IntentSearch Intent = "search"
	IntentHelp   Intent = "help"
)

// Answer status constants
const (
	StatusAnswered = "answered" // Tool ran and produced a payload
	StatusEmpty    = "empty"    // Tool ran and produced nothing (no matches, empty file list)
	StatusPrompt   = "prompt"   // Argument missing, user is asked for it
	StatusFailed   = "failed"   // Tool or dispatch failure, see Err
)

// ErrorKind classifies answer failures
type ErrorKind string

const (
	// ErrorKindPath means the directory could not be listed or walked
	ErrorKindPath ErrorKind = "path"
	// ErrorKindNotFound means a requested file does not exist
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindRead means a file exists but could not be read as text
	ErrorKindRead ErrorKind = "read"
	// ErrorKindPattern means the search term is not a valid regular expression
	ErrorKindPattern ErrorKind = "pattern"
	// ErrorKindTimeout means the call's deadline passed or it was canceled
	ErrorKindTimeout ErrorKind = "timeout"
	// ErrorKindInternal means an unexpected failure inside the dispatcher
	ErrorKindInternal ErrorKind = "internal"
)

// AnswerError is the structured failure carried by a failed Answer
type AnswerError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface
func (e *AnswerError) Error() string {
	return e.Message
}

// Answer is the result of dispatching one question.
// Text always holds the full human-readable response; Heading and Body split
// it for renderers that format the payload separately.
type Answer struct {
	RequestID string
	Intent    Intent
	Argument  string // Extracted filename or search term
	Status    string
	Heading   string
	Body      string
	Text      string
	Err       *AnswerError
	Duration  time.Duration
}

// Failed reports whether the answer carries an error instead of content
func (a Answer) Failed() bool {
	return a.Err != nil
}

// HasBody reports whether the answer has a payload section below its heading.
// The payload itself may be empty (an empty file).
func (a Answer) HasBody() bool {
	return a.Text != a.Heading
}

// String returns the response text
func (a Answer) String() string {
	return a.Text
}

// Summary returns a one-line description for logs
func (a Answer) Summary() string {
	if a.Err != nil {
		return fmt.Sprintf("%s %s (%s): %s", a.Intent, a.Status, a.Err.Kind, a.Err.Message)
	}
	if a.Argument != "" {
		return fmt.Sprintf("%s %s %q", a.Intent, a.Status, a.Argument)
	}
	return fmt.Sprintf("%s %s", a.Intent, a.Status)
}
