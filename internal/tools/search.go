package tools

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/harrison/repoqa/internal/fileutil"
	"github.com/harrison/repoqa/internal/models"
)

// SearchOptions narrows which files Search visits.
// The zero value visits every regular file under the root.
type SearchOptions struct {
	SkipHidden  bool
	ExcludeDirs []string
	Extensions  []string
	MaxDepth    int
	MaxFileSize int64
}

// SearchResult holds the matches of one Search call
type SearchResult struct {
	Pattern      string
	Root         string
	Matches      []models.SearchMatch
	FilesScanned int
	Skipped      []string // Files and directories that could not be opened or read
}

// String returns all matches newline-joined in visit order, or "" when
// nothing matched.
func (r *SearchResult) String() string {
	return models.FormatMatches(r.Matches)
}

// Search walks the tree rooted at root and tests pattern against every line
// of every regular file. Files that are not valid UTF-8 text are treated as
// binary and contribute no matches. An empty root searches DefaultDir.
func Search(ctx context.Context, pattern, root string, opts SearchOptions) (*SearchResult, error) {
	if root == "" {
		root = DefaultDir
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &Error{Op: OpSearch, Path: root, Kind: models.ErrorKindPattern, Err: err}
	}

	scan, err := fileutil.ScanDirectory(ctx, root, fileutil.ScanOptions{
		Recursive:   true,
		ExcludeDirs: opts.ExcludeDirs,
		Extensions:  opts.Extensions,
		SkipHidden:  opts.SkipHidden,
		MaxDepth:    opts.MaxDepth,
		MaxFileSize: opts.MaxFileSize,
	})
	if err != nil {
		return nil, searchError(root, err)
	}

	result := &SearchResult{
		Pattern: pattern,
		Root:    root,
		Matches: make([]models.SearchMatch, 0),
	}
	for _, err := range scan.Errors {
		result.Skipped = append(result.Skipped, skippedPath(err))
	}

	for _, path := range scan.Files {
		if err := ctx.Err(); err != nil {
			return nil, searchError(root, err)
		}

		matches, err := searchFile(path, re)
		if err != nil {
			result.Skipped = append(result.Skipped, path)
			continue
		}
		result.FilesScanned++
		result.Matches = append(result.Matches, matches...)
	}

	return result, nil
}

func searchError(root string, err error) *Error {
	kind := models.ErrorKindPath
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		kind = models.ErrorKindTimeout
	}
	return &Error{Op: OpSearch, Path: root, Kind: kind, Err: err}
}

// skippedPath names the entry behind a non-fatal scan error
func skippedPath(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Path
	}
	return err.Error()
}

// searchFile returns the matching lines of one file.
// Binary content yields no matches and no error.
func searchFile(path string, re *regexp.Regexp) ([]models.SearchMatch, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, nil
	}

	var matches []models.SearchMatch

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if re.MatchString(line) {
			matches = append(matches, models.SearchMatch{
				File:       path,
				LineNumber: lineNum,
				Line:       strings.TrimSpace(line),
			})
		}
	}

	return matches, scanner.Err()
}
