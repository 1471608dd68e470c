package di

import yamlfile "github.com/0xalexb/hjarta-yamlfile"

// Options holds configuration settings for a document module.
type Options struct {
	Overrides    []yamlfile.Mapping
	RequiredKeys []string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithOverrides deep-merges the given mappings into the loaded document,
// in order, with override precedence. Useful for environment-specific
// values layered on top of a base file.
func WithOverrides(overrides ...yamlfile.Mapping) Option {
	return func(opts *Options) {
		opts.Overrides = append(opts.Overrides, overrides...)
	}
}

// WithRequiredKeys declares key paths that must exist in the document
// after overrides are applied. Loading fails with ErrMissingRequiredKeys
// when any of them is absent.
func WithRequiredKeys(keys ...string) Option {
	return func(opts *Options) {
		opts.RequiredKeys = append(opts.RequiredKeys, keys...)
	}
}
