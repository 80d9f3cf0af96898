package fileutil

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Extensions is a list of file extensions to include (e.g., ".go", "py"); empty includes all
	Extensions []string
	// Recursive enables recursive directory scanning
	Recursive bool
	// ExcludeDirs is a list of directory names to exclude (e.g., ".git", "node_modules")
	ExcludeDirs []string
	// SkipHidden skips files and directories whose name starts with "."
	SkipHidden bool
	// MaxDepth limits recursion depth (0 = unlimited, 1 = current dir only)
	MaxDepth int
	// MaxFileSize skips files larger than this many bytes (0 = unlimited)
	MaxFileSize int64
}

// ScanResult contains the results of a directory scan
type ScanResult struct {
	// Files contains the paths of all matched regular files, joined onto the
	// scanned directory, in walk order
	Files []string
	// Errors contains non-fatal errors encountered during scanning
	Errors []error
}

// ScanDirectory scans a directory for regular files matching the provided options.
// Fatal errors are a missing, unreadable or non-directory root and context
// cancellation; anything else is collected in ScanResult.Errors and the walk
// continues. Symlinks to regular files are included.
func ScanDirectory(ctx context.Context, dir string, opts ScanOptions) (*ScanResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	result := &ScanResult{
		Files:  make([]string, 0),
		Errors: make([]error, 0),
	}

	extMap := make(map[string]bool)
	for _, ext := range opts.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}

	excludeMap := make(map[string]bool)
	for _, name := range opts.ExcludeDirs {
		excludeMap[name] = true
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			// The root itself must be readable
			if path == dir {
				return err
			}
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", path, err))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == dir {
			return nil
		}

		hidden := strings.HasPrefix(d.Name(), ".")

		if d.IsDir() {
			if excludeMap[d.Name()] || (opts.SkipHidden && hidden) {
				return filepath.SkipDir
			}
			if !opts.Recursive {
				return filepath.SkipDir
			}
			if opts.MaxDepth > 0 {
				relPath, _ := filepath.Rel(dir, path)
				depth := strings.Count(relPath, string(filepath.Separator)) + 1
				if depth >= opts.MaxDepth {
					return filepath.SkipDir
				}
			}
			return nil
		}

		// Symlinked files are followed, symlinked directories are not
		if d.Type()&fs.ModeSymlink != 0 {
			target, err := os.Stat(path)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("error following %s: %w", path, err))
				return nil
			}
			if !target.Mode().IsRegular() {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}
		if opts.SkipHidden && hidden {
			return nil
		}

		if len(extMap) > 0 {
			ext := strings.ToLower(filepath.Ext(d.Name()))
			if !extMap[ext] {
				return nil
			}
		}

		if opts.MaxFileSize > 0 {
			fi, err := os.Stat(path)
			if err != nil {
				result.Errors = append(result.Errors, fmt.Errorf("failed to stat %s: %w", path, err))
				return nil
			}
			if fi.Size() > opts.MaxFileSize {
				return nil
			}
		}

		result.Files = append(result.Files, path)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return result, nil
}
