package logging

import (
	"io"
	"log/slog"
	"strings"

	yamlfile "github.com/0xalexb/hjarta-yamlfile"
)

// LevelKey is the key path a logger level is read from by FromDocument.
const LevelKey = "logging.level"

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level string
}

// NewLogger creates a new slog.Logger with JSON handler and the specified output.
// The level is parsed from the config; defaults to INFO if invalid or empty.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	level := parseLevel(config.Level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	})

	return slog.New(handler)
}

// FromDocument creates a logger whose level is read from the document at
// LevelKey. A missing key or a non-string value falls back to INFO.
func FromDocument(doc *yamlfile.Document, w io.Writer) *slog.Logger {
	level, _ := doc.GetOr(LevelKey, "").(string)

	return NewLogger(LoggerConfig{Level: level}, w)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
