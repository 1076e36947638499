// Package logging configures the zerolog logger shared by the service, the
// rule runner and the CLI.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const (
	// ModuleFieldName tags every entry with the emitting component.
	ModuleFieldName   = "module"
	DefaultTimeFormat = "2006-01-02 15:04:05.000"
)

// New creates a logger writing to stderr. Unknown levels fall back to info.
func New(level, module string, pretty bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, level, module, pretty)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, level, module string, pretty bool) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if pretty {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: DefaultTimeFormat,
			PartsOrder: []string{zerolog.TimestampFieldName, ModuleFieldName, zerolog.LevelFieldName, zerolog.MessageFieldName},
		}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str(ModuleFieldName, module).Logger()
}
