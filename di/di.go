package di

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	yamlfile "github.com/0xalexb/hjarta-yamlfile"
	"github.com/0xalexb/hjarta-yamlfile/bind"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrMissingRequiredKeys is returned when a loaded document lacks keys
// declared with WithRequiredKeys.
var ErrMissingRequiredKeys = errors.New("missing required keys")

// NewModule creates an Fx module that loads the YAML document at path and
// provides it as a *yamlfile.Document under the given name tag. Overrides
// are merged in declaration order and required keys are checked after all
// overrides apply. Call multiple times with different names to provide
// multiple documents.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, path string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (*yamlfile.Document, error) {
					return loadDocument(name, path, &options)
				},
				fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
			),
		),
	)
}

// Provide creates an Fx provider that binds the section at keyPath of the
// named document into a fresh *T, running bind's default and validation
// hooks. Use it alongside NewModule:
//
//	app := fx.New(
//	    di.NewModule("app", "config/app.yaml"),
//	    di.Provide[ServerConfig]("app", "server"),
//	)
//
//nolint:ireturn // fx.Option is the standard return type for Fx providers
func Provide[T any](name, keyPath string) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func(doc *yamlfile.Document) (*T, error) {
				var target T

				return bind.Provider(&target, keyPath)(doc)
			},
			fx.ParamTags(fmt.Sprintf(`name:"%s"`, name)),
		),
	)
}

func loadDocument(name, path string, options *Options) (*yamlfile.Document, error) {
	doc, err := yamlfile.Load(path)
	if err != nil {
		return nil, err
	}

	for _, override := range options.Overrides {
		doc = doc.Merge(override)
	}

	if !doc.HasRequiredKeys(options.RequiredKeys) {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequiredKeys, strings.Join(missingKeys(doc, options.RequiredKeys), ", "))
	}

	slog.Debug("configuration loaded",
		slog.String("name", name),
		slog.String("origin", doc.Origin()),
		slog.Int("overrides", len(options.Overrides)),
	)

	return doc, nil
}

// missingKeys re-checks each required key individually; HasRequiredKeys
// only reports a single bool.
func missingKeys(doc *yamlfile.Document, requiredKeys []string) []string {
	var missing []string

	for _, keyPath := range requiredKeys {
		if !doc.ExistsKey(keyPath) {
			missing = append(missing, keyPath)
		}
	}

	return missing
}
