package bind

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	yamlfile "github.com/0xalexb/hjarta-yamlfile"

	"github.com/goccy/go-yaml"
)

// ErrKeyNotFound is returned when the key path does not resolve in the document.
var ErrKeyNotFound = errors.New("key path not found")

// Validator is implemented by targets that validate themselves after binding.
type Validator interface {
	Validate() error
}

// Defaulter is implemented by targets that fill in default values after binding.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// To decodes the document section at keyPath into target. An empty key
// path decodes the entire document. The current tree is bound, including
// any mutations made since load, not the original source text.
func To(doc *yamlfile.Document, target any, keyPath string) error {
	data, err := yaml.Marshal(doc.Data())
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	if keyPath == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(toYAMLPath(keyPath))
	if err != nil {
		return fmt.Errorf("invalid key path %q: %w", keyPath, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrKeyNotFound, keyPath)
		}

		return fmt.Errorf("reading key path %q: %w", keyPath, err)
	}

	return nil
}

// Provider returns a function that binds the section at keyPath into
// target, sets defaults, and validates. The function shape suits DI
// containers that construct configuration values on demand.
func Provider[T any](target *T, keyPath string) func(*yamlfile.Document) (*T, error) {
	return func(doc *yamlfile.Document) (*T, error) {
		err := To(doc, target, keyPath)
		if err != nil {
			return nil, fmt.Errorf("binding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("keyPath", keyPath))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}

// toYAMLPath converts a dot-separated key path to goccy/go-yaml PathString
// format, e.g. "service.url" -> "$.service.url".
func toYAMLPath(keyPath string) string {
	return "$." + keyPath
}
