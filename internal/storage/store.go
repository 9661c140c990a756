// Package storage handles persistence of the snippet collection and its query index.
package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/matsen/devvault/internal/snippet"
)

const (
	// VaultDir is the directory under the user's home that holds the store.
	VaultDir = ".devvault"
	// SnippetsFile is the store file name inside VaultDir.
	SnippetsFile = "snippets.json"
)

// ErrCorrupt is returned when the store file exists but cannot be parsed.
var ErrCorrupt = errors.New("store file is corrupt")

// CorruptError carries the path and parse failure for a corrupt store file.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("store file %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrCorrupt) hold for any *CorruptError.
func (e *CorruptError) Is(target error) bool { return target == ErrCorrupt }

// ResolvePath returns the store path for the current user: ~/.devvault/snippets.json.
// It is not configurable.
func ResolvePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, VaultDir, SnippetsFile), nil
}

// Store maps the in-memory collection to a single JSON file.
type Store struct {
	path string
}

// New returns a Store backed by the file at path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the backing file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads the whole collection. A missing or blank file is an empty
// collection; anything else that fails to decode is a *CorruptError.
func (s *Store) Load() (snippet.Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("store file not found, starting empty", "path", s.path)
			return snippet.Collection{}, nil
		}
		return nil, fmt.Errorf("reading store file %s: %w", s.path, err)
	}

	c, err := decodeJSON(data)
	if err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}
	slog.Debug("loaded store", "path", s.path, "snippets", len(c))
	return c, nil
}

// Save writes the whole collection, replacing the backing file atomically.
// Uses temp file + rename so a crash never leaves a half-written store.
func (s *Store) Save(c snippet.Collection) error {
	data, err := encodeJSON(c)
	if err != nil {
		return fmt.Errorf("encoding snippets: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	// Create temp file in same directory for atomic rename
	tmpFile, err := os.CreateTemp(dir, ".tmp-*.json")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("replacing store file %s: %w", s.path, err)
	}

	success = true
	slog.Debug("saved store", "path", s.path, "snippets", len(c))
	return nil
}

// encodeJSON renders the collection as an indented JSON array with a trailing newline.
func encodeJSON(c snippet.Collection) ([]byte, error) {
	if c == nil {
		c = snippet.Collection{}
	}
	normalized := make(snippet.Collection, len(c))
	for i, s := range c {
		if err := s.ValidateEncoding(); err != nil {
			return nil, fmt.Errorf("snippet %d (%q): %w", i+1, s.Key, err)
		}
		normalized[i] = snippet.New(s.Key, s.Description, s.Command, s.Tags)
	}
	// Shell commands are full of <, > and &; keep them readable.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Field names of a stored snippet. Matching is exact.
var snippetFields = []string{"key", "description", "command", "tags"}

// decodeJSON parses a JSON array of snippets. Blank input is an empty collection.
func decodeJSON(data []byte) (snippet.Collection, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return snippet.Collection{}, nil
	}
	// encoding/json would silently replace invalid bytes with U+FFFD.
	if !utf8.Valid(data) {
		return nil, snippet.ErrInvalidUTF8
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		// Literal "null" is not an array.
		return nil, errors.New("expected a JSON array of snippets")
	}

	c := make(snippet.Collection, 0, len(records))
	for i, raw := range records {
		s, err := decodeRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		c = append(c, s)
	}
	return c, nil
}

func decodeRecord(raw json.RawMessage) (snippet.Snippet, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return snippet.Snippet{}, err
	}
	if fields == nil {
		return snippet.Snippet{}, errors.New("null is not a snippet")
	}
	for name := range fields {
		if !slices.Contains(snippetFields, name) && slices.ContainsFunc(snippetFields, func(f string) bool {
			return strings.EqualFold(f, name)
		}) {
			return snippet.Snippet{}, fmt.Errorf("field %q: names are case-sensitive", name)
		}
	}

	var s snippet.Snippet
	if err := json.Unmarshal(raw, &s); err != nil {
		return snippet.Snippet{}, err
	}
	return snippet.New(s.Key, s.Description, s.Command, s.Tags), nil
}
