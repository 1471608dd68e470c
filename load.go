package yamlfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// ErrNotFound is returned by Load when the file is absent, unreadable, or
// its content fails to parse. The three cases are deliberately one error
// kind; the distinguishing detail lives in the message only.
var ErrNotFound = errors.New("configuration file not found")

// ErrInvalidInput is returned by LoadString when the text fails to parse
// as valid YAML.
var ErrInvalidInput = errors.New("invalid yaml input")

// Load reads the file at path and parses it into a Document whose Origin
// is the cleaned path. Any failure wraps ErrNotFound.
func Load(path string) (*Document, error) {
	cleanPath := filepath.Clean(path)

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned, loading caller-chosen config is the point
	if err != nil {
		return nil, fmt.Errorf("%w: reading file %q: %v", ErrNotFound, cleanPath, err)
	}

	root, err := parseTree(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing file %q: %v", ErrNotFound, cleanPath, err)
	}

	return &Document{data: root, origin: cleanPath}, nil
}

// LoadString parses raw YAML text into a Document with no origin. Parse
// failures wrap ErrInvalidInput. An empty or null document normalizes to
// an empty mapping; a non-mapping root (e.g. a top-level sequence) is
// accepted as-is and path operations on it degrade to "key not found".
func LoadString(text string) (*Document, error) {
	root, err := parseTree([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return &Document{data: root}, nil
}

// parseTree decodes YAML into ordered mappings. goccy/go-yaml constructs
// only plain scalars, mappings, and sequences here; no arbitrary types
// are instantiated from tags.
func parseTree(data []byte) (any, error) {
	var root any

	err := yaml.UnmarshalWithOptions(data, &root, yaml.UseOrderedMap())
	if err != nil {
		return nil, err
	}

	if root == nil {
		return Mapping{}, nil
	}

	return root, nil
}
