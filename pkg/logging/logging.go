// Package logging builds the zerolog loggers used across the service.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// New creates a structured logger writing to w. Unknown level strings fall
// back to info.
func New(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
