package tools

import (
	"errors"
	"fmt"

	"github.com/harrison/repoqa/internal/models"
)

// Tool operation names
const (
	OpList   = "list"
	OpRead   = "read"
	OpSearch = "search"
)

// errNotText marks file content that cannot be decoded as UTF-8 text
var errNotText = errors.New("content is not valid UTF-8 text")

// Error is a failed tool operation.
// Its message follows the conventional wording users see in answers:
// "Error listing files: ...", "File not found: <path>", and so on.
type Error struct {
	Op   string
	Path string
	Kind models.ErrorKind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case models.ErrorKindNotFound:
		return "File not found: " + e.Path
	case models.ErrorKindRead:
		return fmt.Sprintf("Error reading %s: %v", e.Path, e.Err)
	case models.ErrorKindPattern:
		return fmt.Sprintf("invalid search pattern: %v", e.Err)
	}

	switch e.Op {
	case OpList:
		return fmt.Sprintf("Error listing files: %v", e.Err)
	case OpSearch:
		return fmt.Sprintf("Error searching files: %v", e.Err)
	default:
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind of a tool error, or ErrorKindInternal for
// anything that is not a *Error.
func KindOf(err error) models.ErrorKind {
	var toolErr *Error
	if errors.As(err, &toolErr) {
		return toolErr.Kind
	}
	return models.ErrorKindInternal
}
