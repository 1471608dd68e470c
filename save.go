package yamlfile

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Save writes the Document back to its Origin. It returns false when the
// Document has no origin or on any I/O failure; errors are never raised.
// Load failures are loud because a bad path or bad content is a caller
// bug; save failures are usually environmental and reported as a value so
// batch-save workflows can keep going.
func (d *Document) Save() bool {
	return d.SaveTo("")
}

// SaveTo writes the Document to the given path, falling back to Origin
// when path is empty. Parent directories are created as needed. The tree
// is emitted with mapping key order preserved and non-ASCII characters
// written literally. Returns true on success, false on any failure.
func (d *Document) SaveTo(path string) bool {
	target := path
	if target == "" {
		target = d.origin
	}

	if target == "" {
		return false
	}

	target = filepath.Clean(target)

	out, err := yaml.Marshal(d.data)
	if err != nil {
		return false
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return false
	}

	if err := os.WriteFile(target, out, 0o600); err != nil {
		return false
	}

	return true
}
