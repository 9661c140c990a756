package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/matsen/devvault/internal/snippet"
)

// Status values reported in JSON responses.
const (
	StatusAdded     = "added"
	StatusDuplicate = "duplicate"
	StatusDeleted   = "deleted"
	StatusNotFound  = "not_found"
	StatusFound     = "found"
)

// exitError carries a user-facing message and the process exit code.
// Commands return it; only main prints it and exits.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

// exitErrorf builds an exitError with a formatted message.
func exitErrorf(code int, format string, args ...any) error {
	return &exitError{code: code, msg: fmt.Sprintf(format, args...)}
}

// outputJSON writes a value as formatted JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Key    string `json:"key,omitempty"`
	Path   string `json:"path,omitempty"`
}

// SnippetResponse reports a status together with the affected snippet.
type SnippetResponse struct {
	Status  string           `json:"status"`
	Snippet *snippet.Snippet `json:"snippet,omitempty"`
	Copied  bool             `json:"copied,omitempty"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// emptyIfNil keeps JSON output an array, never null.
func emptyIfNil(c snippet.Collection) snippet.Collection {
	if c == nil {
		return snippet.Collection{}
	}
	return c
}
