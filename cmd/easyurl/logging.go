package main

import (
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func newLogger(w io.Writer, format, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "log level")
	}

	switch strings.ToLower(format) {
	case "text", "plain":
		w = newConsoleWriter(w)
	case "json":
	default:
		return zerolog.Nop(), errors.Errorf("unsupported log format: %s", format)
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

func newConsoleWriter(w io.Writer) *zerolog.ConsoleWriter {
	return &zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: time.RFC3339,
		FormatLevel: func(i interface{}) string {
			if ll, ok := i.(string); ok {
				return strings.ToUpper(ll)
			}
			return "????"
		},
	}
}
