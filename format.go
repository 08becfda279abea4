// format.go — text renderings of payloads and handles.
//
// Behavior:
//
//	%s, %v   → concise string (Error()).
//	%+v      → verbose, multi-line:
//	             kind=<kind> code=<code> msg="<message>"
//	             ctx: key1=val1 key2=val2 ...
//	             cause: <nested payload with %+v>
//
// ToString and LogAll render every member of a List on its own line.
package checked

import (
	"fmt"
	"io"
	"strings"
)

func formatConcise(w io.Writer, e error) {
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes the structured form. cause, when non-nil, recurses
// with %+v.
func formatVerbose(w io.Writer, p Payload, msg string, ctx fields, cause error) {
	_, _ = fmt.Fprintf(w, "kind=%s ", kindName(p))
	if code := p.ErrorCode(); !code.IsInconvertible() {
		_, _ = fmt.Fprintf(w, "code=%s ", code)
	}
	_, _ = fmt.Fprintf(w, "msg=%q", msg)

	if len(ctx) > 0 {
		_, _ = io.WriteString(w, "\nctx:")
		for _, f := range ctx {
			if f.Key != "" {
				_, _ = fmt.Fprintf(w, " %s=%v", f.Key, f.Val)
			}
		}
	}

	if cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}
}

// formatPayload is the shared fmt.Formatter body.
func formatPayload(s fmt.State, verb rune, p Payload, msg string, ctx fields, cause error) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, p, msg, ctx, cause)
			return
		}
		formatConcise(s, p)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", p.Error())
	default:
		formatConcise(s, p)
	}
}

func (e *StringError) Format(s fmt.State, verb rune) {
	formatPayload(s, verb, e, e.msg, e.ctx, nil)
}

func (e *CodeError) Format(s fmt.State, verb rune) {
	formatPayload(s, verb, e, e.Error(), nil, nil)
}

func (e *FileError) Format(s fmt.State, verb rune) {
	ctx := fields{{Key: "file", Val: e.file}}
	if e.line > 0 {
		ctx = append(ctx, Field{Key: "line", Val: e.line})
	}
	formatPayload(s, verb, e, e.Error(), ctx, e.Unwrap())
}

func (e *ForeignError) Format(s fmt.State, verb rune) {
	formatPayload(s, verb, e, e.err.Error(), nil, nil)
}

// Describe renders p verbosely for diagnostics. Payload kinds defined
// elsewhere get the verbose form only if they implement fmt.Formatter.
func Describe(p Payload) string {
	if p == nil {
		return "success"
	}
	if _, ok := p.(fmt.Formatter); ok {
		return fmt.Sprintf("%+v", p)
	}
	var sb strings.Builder
	var ctx fields
	if c, ok := p.(contextual); ok {
		for k, v := range c.Context() {
			ctx = append(ctx, Field{Key: k, Val: v})
		}
	}
	formatVerbose(&sb, p, p.Error(), ctx, nil)
	return sb.String()
}

// ToString consumes err and returns the messages of every failure it holds,
// one per line. Success renders as the empty string.
func ToString(err *Error) string {
	return messages(err.take())
}

func messages(p Payload) string {
	switch v := p.(type) {
	case nil:
		return ""
	case *List:
		lines := make([]string, len(v.payloads))
		for i, m := range v.payloads {
			lines[i] = m.Error()
		}
		return strings.Join(lines, "\n")
	default:
		return v.Error()
	}
}

// LogAll consumes err and writes banner followed by each failure message,
// one per line. Nothing is written for success.
func LogAll(w io.Writer, err *Error, banner string) {
	p := err.take()
	if p == nil {
		return
	}
	_, _ = io.WriteString(w, banner+messages(p)+"\n")
}
