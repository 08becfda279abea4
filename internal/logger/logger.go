package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/xgx-io/xgx-checked"
)

// DefaultLevel is used when no level is configured.
const DefaultLevel = "warn"

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger().Level(zerolog.WarnLevel)

// Init builds the tool's logger writing to out at the named level and makes it
// the library's diagnostic logger too. An unknown level leaves the current
// logger in place and fails.
func Init(out io.Writer, level string) *checked.Error {
	if level == "" {
		level = DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return checked.New("invalid log level", "level", level)
	}

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	log = zerolog.New(output).With().Timestamp().Logger().Level(lvl)
	checked.SetLogger(log)
	return nil
}

// Get returns the current logger.
func Get() zerolog.Logger { return log }

// Debug logs a debug message
func Debug() *zerolog.Event { return log.Debug() }

// Info logs an info message
func Info() *zerolog.Event { return log.Info() }

// Warn logs a warning message
func Warn() *zerolog.Event { return log.Warn() }

// Error logs an error message
func Error() *zerolog.Event { return log.Error() }

// Failure starts an error event describing p: its kind, legacy code and
// fields, if it carries any.
func Failure(p checked.Payload) *zerolog.Event {
	ev := log.Error().
		Str("kind", p.Kind().String()).
		Str("error_message", p.Error())
	if code := p.ErrorCode(); !code.IsInconvertible() {
		ev = ev.Str("error_code", code.String())
	}
	if c, ok := p.(interface{ Context() map[string]any }); ok {
		if m := c.Context(); len(m) > 0 {
			ev = ev.Fields(m)
		}
	}
	return ev
}
