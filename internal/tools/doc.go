// Package tools implements the three file-system operations questions are
// answered with: List, Read and Search.
//
// Every operation is stateless and fail-soft. Failures come back as *Error
// values whose messages use the wording shown to users ("Error listing
// files: ...", "File not found: <path>", "Error reading <path>: ...",
// "Error searching files: ..."); nothing panics past the package boundary.
package tools
