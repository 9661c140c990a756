// Package snippet defines the snippet record and the operations applied to a collection of them.
package snippet

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Snippet is one stored entry: a command the user wants back later, plus a description and tags.
type Snippet struct {
	Key         string   `json:"key" yaml:"key"`                 // Required, unique, case-sensitive
	Description string   `json:"description" yaml:"description"` // Human-readable purpose
	Command     string   `json:"command" yaml:"command"`         // Payload copied to the clipboard; never parsed
	Tags        []string `json:"tags" yaml:"tags"`               // Insertion order, duplicates allowed
}

// Errors returned by collection operations.
var (
	ErrEmptyKey     = errors.New("key is required")
	ErrDuplicateKey = errors.New("snippet with this key already exists")
	ErrInvalidUTF8  = errors.New("invalid UTF-8")
)

// DuplicateKeyError reports an Add whose key is already present in the collection.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("snippet with key %q already exists", e.Key)
}

// Is makes errors.Is(err, ErrDuplicateKey) hold for any *DuplicateKeyError.
func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// New builds a snippet, normalizing a nil tag list to an empty one.
func New(key, description, command string, tags []string) Snippet {
	s := Snippet{
		Key:         key,
		Description: description,
		Command:     command,
		Tags:        tags,
	}
	s.normalize()
	return s
}

// ValidateForCreate validates a snippet before it is added.
func (s *Snippet) ValidateForCreate() error {
	if s.Key == "" {
		return ErrEmptyKey
	}
	return s.ValidateEncoding()
}

// ValidateEncoding checks that every field is valid UTF-8, so the snippet
// survives a JSON round trip unchanged.
func (s *Snippet) ValidateEncoding() error {
	for _, f := range [...]struct{ name, value string }{
		{"key", s.Key},
		{"description", s.Description},
		{"command", s.Command},
	} {
		if !utf8.ValidString(f.value) {
			return fmt.Errorf("%w in %s", ErrInvalidUTF8, f.name)
		}
	}
	for i, t := range s.Tags {
		if !utf8.ValidString(t) {
			return fmt.Errorf("%w in tag %d", ErrInvalidUTF8, i+1)
		}
	}
	return nil
}

// normalize makes Tags non-nil so it always serializes as an array.
func (s *Snippet) normalize() {
	if s.Tags == nil {
		s.Tags = []string{}
	}
}

// Matches reports whether keyword occurs, case-insensitively, in the key,
// the description, or any single tag. The command is not searched.
func (s *Snippet) Matches(keyword string) bool {
	return s.matchesLower(strings.ToLower(keyword))
}

func (s *Snippet) matchesLower(kw string) bool {
	if strings.Contains(strings.ToLower(s.Key), kw) {
		return true
	}
	if strings.Contains(strings.ToLower(s.Description), kw) {
		return true
	}
	for _, t := range s.Tags {
		if strings.Contains(strings.ToLower(t), kw) {
			return true
		}
	}
	return false
}

// ParseTags splits comma-separated tag arguments. Values are kept as given,
// including surrounding whitespace, empty entries and duplicates.
func ParseTags(args []string) []string {
	tags := []string{}
	for _, arg := range args {
		tags = append(tags, strings.Split(arg, ",")...)
	}
	return tags
}
