package storage

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/matsen/devvault/internal/snippet"
	"gopkg.in/yaml.v3"
)

// Supported export/import formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats lists the supported export/import format values.
var ValidFormats = []string{FormatJSON, FormatYAML}

// FormatFromPath guesses a format from a file extension, defaulting to JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ValidateFormat checks that the format value is supported.
func ValidateFormat(format string) error {
	for _, valid := range ValidFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s (valid: %v)", format, ValidFormats)
}

// Encode renders a collection in the given format.
// JSON output is byte-identical to the store file.
func Encode(c snippet.Collection, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(c)
	case FormatYAML:
		if c == nil {
			c = snippet.Collection{}
		}
		data, err := yaml.Marshal(c)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return data, nil
	default:
		return nil, ValidateFormat(format)
	}
}

// Decode parses a collection from data in the given format.
func Decode(data []byte, format string) (snippet.Collection, error) {
	switch format {
	case FormatJSON:
		c, err := decodeJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parsing json: %w", err)
		}
		return c, nil
	case FormatYAML:
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("parsing yaml: %w", snippet.ErrInvalidUTF8)
		}
		var c snippet.Collection
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing yaml: %w", err)
		}
		for i := range c {
			c[i] = snippet.New(c[i].Key, c[i].Description, c[i].Command, c[i].Tags)
		}
		if c == nil {
			c = snippet.Collection{}
		}
		return c, nil
	default:
		return nil, ValidateFormat(format)
	}
}
