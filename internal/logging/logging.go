// SPDX-License-Identifier: EPL-2.0

package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var ErrInvalidLevel = errors.New("invalid log level")

//nolint:gochecknoinits
func init() {
	// allow printing stack traces from pkg/errors
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack //nolint:reassign

	// use default golang time marshaller format
	zerolog.TimeFieldFormat = time.RFC3339
}

// New returns a logger writing to out at the given level. Any format other
// than "json" uses the human readable console writer.
func New(out io.Writer, format string, level zerolog.Level) zerolog.Logger {
	if strings.ToLower(format) != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:     out,
			NoColor: true,
		}
	}

	// add stacktrace on .Err() - Stack
	// include timestamps in output - Timestamp
	return zerolog.New(out).
		Level(level).
		With().
		Stack().
		Timestamp().
		Logger()
}

// ParseLevel accepts zerolog level names in any case.
func ParseLevel(s string) (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}

	return level, nil
}
