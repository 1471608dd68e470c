// Package bind decodes sections of a yamlfile.Document into typed structs.
//
// This package uses github.com/goccy/go-yaml PathString navigation to read
// a subtree of the document into a target value. Key paths use dot (.) as
// the separator, matching the Document accessors:
//
//	"service"       -> document["service"]
//	"database.pool" -> document["database"]["pool"]
//	""              -> the entire document
//
// Usage:
//
//	var cfg ServerConfig
//	err := bind.To(doc, &cfg, "service")
//
// Provider wraps To with two optional hooks on the target: Defaulter
// (applied after binding, logged when defaults change anything) and
// Validator (an error fails the bind). Binding operates on the document's
// current tree, so values written with Set participate.
package bind
