package snippet

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Collection is the full ordered set of snippets. Order is insertion order
// and defines display order.
type Collection []Snippet

// FindByKey searches for a snippet by exact key.
// Returns the index of the first match and true if found, -1 and false otherwise.
func FindByKey(c Collection, key string) (int, bool) {
	for i, s := range c {
		if s.Key == key {
			return i, true
		}
	}
	return -1, false
}

// Add appends s to c if no snippet with the same key exists.
// On failure the original collection is returned unchanged along with
// ErrEmptyKey or a *DuplicateKeyError. The caller persists the result.
func Add(c Collection, s Snippet) (Collection, Snippet, error) {
	s.normalize()
	if err := s.ValidateForCreate(); err != nil {
		return c, Snippet{}, err
	}
	if _, found := FindByKey(c, s.Key); found {
		return c, Snippet{}, &DuplicateKeyError{Key: s.Key}
	}
	return append(c, s), s, nil
}

// List returns every snippet in collection order.
func List(c Collection) Collection {
	return c
}

// Get returns the first snippet whose key equals key exactly.
func Get(c Collection, key string) (Snippet, bool) {
	if i, found := FindByKey(c, key); found {
		return c[i], true
	}
	return Snippet{}, false
}

// Search returns the snippets matching keyword (see Snippet.Matches), in
// collection order. An empty keyword matches everything.
func Search(c Collection, keyword string) Collection {
	kw := strings.ToLower(keyword)
	out := Collection{}
	for _, s := range c {
		if s.matchesLower(kw) {
			out = append(out, s)
		}
	}
	return out
}

// Delete removes every snippet whose key equals key exactly and reports
// whether anything was removed. The order of the remaining snippets is kept
// and c itself is not modified.
func Delete(c Collection, key string) (Collection, bool) {
	out := make(Collection, 0, len(c))
	for _, s := range c {
		if s.Key != key {
			out = append(out, s)
		}
	}
	if len(out) == len(c) {
		return c, false
	}
	return out, true
}

// FilterKeys returns the snippets whose key matches the glob pattern
// (doublestar syntax: *, ?, [...], {a,b}).
func FilterKeys(c Collection, pattern string) (Collection, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid key pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	out := Collection{}
	for _, s := range c {
		ok, err := doublestar.Match(pattern, s.Key)
		if err != nil {
			return nil, fmt.Errorf("matching key %q: %w", s.Key, err)
		}
		if ok {
			out = append(out, s)
		}
	}
	return out, nil
}
