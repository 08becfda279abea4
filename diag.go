// diag.go — the diagnostic stream and the fatal path for programmer errors.
//
// Programmer errors (dropping an unchecked handle, reading the wrong side of
// an Expected, converting the inconvertible code, an unresolved HandleAll)
// never travel through handler dispatch. They are logged with zerolog and
// then handed to the fatal handler, which terminates the process by default.
//
// Each report carries a report_id (UUID) so the multi-line output of one
// report can be correlated in aggregated logs.
package checked

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ExitSoftware is the exit status used for programmer errors (sysexits
// EX_SOFTWARE).
const ExitSoftware = 70

var (
	diagLogger   atomic.Pointer[zerolog.Logger]
	fatalHandler atomic.Pointer[func(report string)]
)

func init() {
	l := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()
	diagLogger.Store(&l)

	h := defaultFatal
	fatalHandler.Store(&h)
}

func defaultFatal(string) { os.Exit(ExitSoftware) }

// Logger returns the logger used for diagnostics.
func Logger() zerolog.Logger { return *diagLogger.Load() }

// SetLogger replaces the diagnostic logger and returns the previous one.
func SetLogger(l zerolog.Logger) zerolog.Logger {
	prev := diagLogger.Swap(&l)
	return *prev
}

// SetFatalHandler replaces the terminal action of the fatal path and returns
// the previous handler. The handler receives the rendered report after it has
// been logged. If the handler returns, the failing operation continues with a
// zero result; handlers that do not exit should panic or stop the goroutine.
// A nil handler restores the default, which exits with ExitSoftware.
func SetFatalHandler(h func(report string)) func(report string) {
	if h == nil {
		h = defaultFatal
	}
	prev := fatalHandler.Swap(&h)
	return *prev
}

// fatalf reports a programmer error about p (may be nil).
func fatalf(p Payload, format string, args ...any) {
	fatalAt(p, nil, fmt.Sprintf(format, args...))
}

// fatalAt reports a programmer error about p with an optional origin stack.
func fatalAt(p Payload, origin Stack, msg string) {
	report := renderReport(p, origin, msg)

	l := Logger()
	ev := l.WithLevel(zerolog.FatalLevel).Str("report_id", uuid.NewString())
	if p != nil {
		ev = ev.Str("kind", kindName(p)).Str("failure", p.Error())
		if c, ok := p.(contextual); ok {
			if m := c.Context(); len(m) > 0 {
				ev = ev.Fields(m)
			}
		}
	}
	if top := origin.Top(); top.Function != "" {
		ev = ev.Str("origin", fmt.Sprintf("%s %s:%d", top.Function, top.File, top.Line))
	}
	ev.Msg(msg)

	(*fatalHandler.Load())(report)
}

// renderReport builds the plain-text form handed to the fatal handler.
func renderReport(p Payload, origin Stack, msg string) string {
	var sb strings.Builder
	sb.WriteString("Program aborted due to an unhandled Error:\n")
	sb.WriteString(msg)
	if p != nil {
		sb.WriteString("\n")
		sb.WriteString(Describe(p))
	}
	if len(origin) > 0 {
		sb.WriteString("\ncreated at:")
		for _, fr := range origin {
			_, _ = fmt.Fprintf(&sb, "\n  %s %s:%d", fr.Function, fr.File, fr.Line)
		}
	}
	return sb.String()
}
