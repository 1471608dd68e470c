// Package logging builds structured slog loggers whose configuration lives
// in a YAML document. It outputs logs in JSON format and reads the log
// level from the "logging.level" key path of a yamlfile.Document.
package logging
