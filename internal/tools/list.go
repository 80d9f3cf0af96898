package tools

import (
	"os"
	"strings"

	"github.com/harrison/repoqa/internal/models"
)

// DefaultDir is the directory used when a tool is given an empty path
const DefaultDir = "."

// hiddenPrefix marks entries List leaves out
const hiddenPrefix = "."

// List returns the names of the immediate entries of dir, files and
// subdirectories alike, leaving out hidden entries.
// An empty dir lists DefaultDir.
func List(dir string) ([]string, error) {
	if dir == "" {
		dir = DefaultDir
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &Error{Op: OpList, Path: dir, Kind: models.ErrorKindPath, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), hiddenPrefix) {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}
