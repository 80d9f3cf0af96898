package tools

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/harrison/repoqa/internal/models"
)

// FileContent is the outcome of reading one path
type FileContent struct {
	Path    string
	Content string
	Err     error // *Error when the read failed
}

// Text returns the content, or the error message in its place
func (f FileContent) Text() string {
	if f.Err != nil {
		return f.Err.Error()
	}
	return f.Content
}

// Read reads each path independently. The result has the same length and
// order as paths; a failure on one path is recorded in its entry and never
// stops the others.
func Read(paths []string) []FileContent {
	contents := make([]FileContent, 0, len(paths))
	for _, path := range paths {
		content, err := readFile(path)
		contents = append(contents, FileContent{Path: path, Content: content, Err: err})
	}
	return contents
}

func readFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &Error{Op: OpRead, Path: path, Kind: models.ErrorKindNotFound, Err: err}
		}
		return "", &Error{Op: OpRead, Path: path, Kind: models.ErrorKindRead, Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", &Error{Op: OpRead, Path: path, Kind: models.ErrorKindRead, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &Error{Op: OpRead, Path: path, Kind: models.ErrorKindRead, Err: errNotText}
	}
	return string(data), nil
}
