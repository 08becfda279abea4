// exit.go — fail-fast helper for command entry points.
//
// Tools call Check/CheckValue on results they cannot recover from. A failure
// is written to the output (banner + one message per line), logged on the
// diagnostic stream, and the process exits with a status chosen from the
// payload. Library code should never use this.
package checked

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ExitFailure is the default exit status for unresolved failures.
const ExitFailure = 1

// ExitOnError terminates the process on failure.
type ExitOnError struct {
	banner   string
	out      io.Writer
	exitCode func(Payload) int
	exit     func(int)
}

// ExitOption configures an ExitOnError.
type ExitOption func(*ExitOnError)

// WithExitCode maps the failing payload (a *List for several failures) to an
// exit status.
func WithExitCode(fn func(Payload) int) ExitOption {
	return func(x *ExitOnError) { x.exitCode = fn }
}

// WithOutput redirects the rendered failures; the default is os.Stderr.
func WithOutput(w io.Writer) ExitOption {
	return func(x *ExitOnError) { x.out = w }
}

// WithExitFunc replaces os.Exit, for embedding and tests.
func WithExitFunc(fn func(int)) ExitOption {
	return func(x *ExitOnError) { x.exit = fn }
}

// NewExitOnError builds a fail-fast checker whose output starts with banner,
// typically "toolname: ".
func NewExitOnError(banner string, opts ...ExitOption) *ExitOnError {
	x := &ExitOnError{
		banner:   banner,
		out:      os.Stderr,
		exitCode: func(Payload) int { return ExitFailure },
		exit:     os.Exit,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// SetBanner replaces the banner.
func (x *ExitOnError) SetBanner(banner string) { x.banner = banner }

// Check consumes err and exits on failure.
func (x *ExitOnError) Check(err *Error) {
	p := err.take()
	if p == nil {
		return
	}
	code := x.exitCode(p)

	l := Logger()
	l.WithLevel(zerolog.ErrorLevel).
		Str("report_id", uuid.NewString()).
		Str("kind", kindName(p)).
		Int("failures", countPayload(p)).
		Int("exit_code", code).
		Msg("unresolved failure at command entry point")

	_, _ = io.WriteString(x.out, x.banner+messages(p)+"\n")
	x.exit(code)
}

// CheckValue consumes v and returns its value, exiting on failure.
func CheckValue[T any](x *ExitOnError, v *Expected[T]) T {
	if v.Ok() {
		return v.Get()
	}
	x.Check(v.TakeError())
	var zero T
	return zero
}

func countPayload(p Payload) int {
	if l, ok := p.(*List); ok {
		return l.Len()
	}
	return 1
}
