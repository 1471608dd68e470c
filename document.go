package yamlfile

import (
	"strings"

	"github.com/goccy/go-yaml"
)

// Mapping is an ordered YAML mapping. It preserves key insertion order,
// unlike a plain map[string]any.
type Mapping = yaml.MapSlice

// MapItem is a single key/value pair of a Mapping.
type MapItem = yaml.MapItem

// Document is a value-oriented wrapper around a parsed YAML tree plus the
// optional path it was loaded from. It holds no other state: no caches,
// no retained file handles. Concurrent mutation from multiple goroutines
// is not supported; callers must serialize externally.
type Document struct {
	data   any
	origin string
}

// New creates a Document from an in-memory mapping with no origin.
func New(data Mapping) *Document {
	if data == nil {
		data = Mapping{}
	}

	return &Document{data: data}
}

// Data returns the root of the configuration tree. The root is a Mapping
// for typical configuration input, but a non-mapping root produced by the
// parser is kept as-is.
func (d *Document) Data() any {
	return d.data
}

// Origin returns the filesystem path the Document was loaded from, or ""
// when it was constructed from text or in-memory data. Origin is the
// implicit target of Save.
func (d *Document) Origin() string {
	return d.origin
}

// Get returns the value at the dot-separated key path, or nil when any
// segment of the path is missing. A key that exists with an explicit null
// value also yields nil; use ExistsKey to tell the two apart.
func (d *Document) Get(keyPath string) any {
	value, _ := d.lookup(keyPath)

	return value
}

// GetOr returns the value at the key path, or fallback when the path does
// not resolve. A key present with a null value returns nil, not fallback.
func (d *Document) GetOr(keyPath string, fallback any) any {
	value, found := d.lookup(keyPath)
	if !found {
		return fallback
	}

	return value
}

// GetValue is an alias of Get, kept for callers migrating from utility
// helpers that used this name.
func (d *Document) GetValue(keyPath string) any {
	return d.Get(keyPath)
}

// ExistsKey reports whether every segment of the key path resolves to an
// existing mapping key. A key holding an explicit null still exists.
func (d *Document) ExistsKey(keyPath string) bool {
	_, found := d.lookup(keyPath)

	return found
}

// HasValue reports whether the key path exists and holds a usable value:
// not null, and for container values (mappings, sequences) not empty.
// An empty string scalar counts as a value.
func (d *Document) HasValue(keyPath string) bool {
	value, found := d.lookup(keyPath)
	if !found || value == nil {
		return false
	}

	switch container := value.(type) {
	case Mapping:
		return len(container) > 0
	case map[string]any:
		return len(container) > 0
	case []any:
		return len(container) > 0
	default:
		return true
	}
}

// Set assigns value at the dot-separated key path, mutating the Document
// in place. Intermediate segments that are missing or hold a non-mapping
// value are overwritten with fresh mappings, so Set cannot fail. When the
// document root itself is not a mapping, Set is a no-op.
func (d *Document) Set(keyPath string, value any) {
	root, ok := d.data.(Mapping)
	if !ok {
		return
	}

	d.data = setPath(root, strings.Split(keyPath, "."), value)
}

// HasRequiredKeys reports whether every key path in requiredKeys exists.
// The result is a single bool; callers needing to know which keys are
// missing must re-check them individually with ExistsKey.
func (d *Document) HasRequiredKeys(requiredKeys []string) bool {
	for _, keyPath := range requiredKeys {
		if !d.ExistsKey(keyPath) {
			return false
		}
	}

	return true
}

// ValidateStructure reports whether every key path in requiredKeys exists.
// It is an alias of HasRequiredKeys kept for readability at call sites
// that treat the key list as a structural requirement.
func (d *Document) ValidateStructure(requiredKeys []string) bool {
	return d.HasRequiredKeys(requiredKeys)
}

// ToMap returns a shallow copy of the root mapping: top-level entries are
// copied into a new Mapping while nested values remain shared references.
// It returns nil when the root is not a mapping.
func (d *Document) ToMap() Mapping {
	root, ok := d.data.(Mapping)
	if !ok {
		return nil
	}

	result := make(Mapping, len(root))
	copy(result, root)

	return result
}

// lookup traverses the tree segment by segment. The empty key path is a
// single empty-string segment, i.e. a lookup of key "" at the root.
func (d *Document) lookup(keyPath string) (any, bool) {
	node := d.data

	for _, segment := range strings.Split(keyPath, ".") {
		mapping, ok := node.(Mapping)
		if !ok {
			return nil, false
		}

		idx := findKey(mapping, segment)
		if idx < 0 {
			return nil, false
		}

		node = mapping[idx].Value
	}

	return node, true
}

// setPath assigns value at the given segments, growing mappings in place.
// The returned Mapping must be stored back by the caller since appending
// a new key can reallocate the slice.
func setPath(mapping Mapping, segments []string, value any) Mapping {
	segment := segments[0]
	idx := findKey(mapping, segment)

	if len(segments) == 1 {
		if idx >= 0 {
			mapping[idx].Value = value

			return mapping
		}

		return append(mapping, MapItem{Key: segment, Value: value})
	}

	if idx < 0 {
		mapping = append(mapping, MapItem{Key: segment, Value: Mapping{}})
		idx = len(mapping) - 1
	}

	child, ok := mapping[idx].Value.(Mapping)
	if !ok {
		child = Mapping{}
	}

	mapping[idx].Value = setPath(child, segments[1:], value)

	return mapping
}

// findKey returns the index of the item whose key is the given string, or
// -1. Only string keys can match a path segment; YAML documents with
// non-string mapping keys are traversable only up to those keys.
func findKey(mapping Mapping, key string) int {
	for i, item := range mapping {
		if s, ok := item.Key.(string); ok && s == key {
			return i
		}
	}

	return -1
}
