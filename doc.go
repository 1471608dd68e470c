// Package yamlfile provides a small, safe accessor over hierarchical YAML
// configuration documents.
//
// A Document wraps a parsed YAML tree together with the path it was loaded
// from. Values are addressed with dot-separated key paths:
//
//	"service"                -> document["service"]
//	"service.url"            -> document["service"]["url"]
//	"database.pool.max_size" -> three levels deep
//
// Mapping key order is preserved end to end: documents decode into ordered
// mappings (see Mapping), and Save emits keys in the order they appear in
// the tree, never alphabetically.
//
// # Loading
//
// Documents are created from a file or from raw text:
//
//	doc, err := yamlfile.Load("config/app.yaml")
//	doc, err := yamlfile.LoadString("service:\n  url: https://api.example.com\n")
//
// Load failures wrap ErrNotFound, LoadString failures wrap ErrInvalidInput;
// classify them with errors.Is.
//
// # Access
//
// Read accessors never fail. A missing key path is reported through the
// return value, not an error:
//
//	url := doc.GetOr("service.url", "http://localhost")
//	if !doc.HasRequiredKeys([]string{"service.url", "service.token"}) { ... }
//
// Set always succeeds, creating intermediate mappings as needed. Merge
// combines a document with an override mapping and returns a new Document,
// leaving the receiver untouched.
//
// # Persistence
//
// Save and SaveTo report success as a bool rather than an error: persistence
// failures are usually environmental (permissions, missing volumes) and
// callers running batch saves need to continue past them.
//
// Subpackages: bind decodes document sections into typed structs, di exposes
// documents through an Fx module, logging builds an slog logger configured
// from a document.
package yamlfile
