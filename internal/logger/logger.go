// Package logger builds the zerolog logger used by the command line.
package logger

import (
	"io"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/lpil/nushell/internal/config"
	"github.com/rs/zerolog"
)

// New returns a logger writing to w, formatted and filtered as cfg says.
func New(cfg config.Log, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), errors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	switch cfg.Format {
	case "json":
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	default:
		return zerolog.Nop(), errors.Errorf("invalid log format %q", cfg.Format)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
