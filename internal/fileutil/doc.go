// Package fileutil provides the directory walk behind repository search.
//
// ScanDirectory walks a tree and returns the regular files a search should
// visit, in walk order. By default it visits everything, hidden files and
// directories included; ScanOptions narrows the walk:
//
//	result, err := fileutil.ScanDirectory(ctx, ".", fileutil.ScanOptions{
//	    Recursive:   true,
//	    ExcludeDirs: []string{".git", "node_modules"},
//	    Extensions:  []string{".go", ".md"},
//	})
//	if err != nil {
//	    return err
//	}
//	for _, path := range result.Files {
//	    fmt.Println(path)
//	}
//
// # Error Tolerance
//
// Only a missing or non-directory root and context cancellation are fatal.
// Unreadable subdirectories are recorded in ScanResult.Errors and skipped.
//
// # Paths
//
// Returned paths are joined onto the scanned directory exactly as given, so
// scanning "." yields "main.go" and "pkg/util.go" rather than absolute paths.
package fileutil
