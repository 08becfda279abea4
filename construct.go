// construct.go — the general-purpose payload kinds and their constructors.
//
//   - StringError: a message, an optional legacy code, and structured fields.
//     The everyday failure when no dedicated kind exists.
//   - FileError: a nested failure annotated with the file (and line) it is
//     about. The nested payload stays reachable for handlers via Take.
//
// Constructors return *Error handles; the payload types are exported so
// handlers can name them (On(func(*StringError) *Error {...})).
package checked

import (
	"fmt"
	"strconv"
)

// StringError is a failure described by text.
type StringError struct {
	msg  string
	code ErrorCode
	ctx  fields
}

var kindString = LazyKind("string", nil)

func (*StringError) Kind() *Kind { return kindString() }

func (e *StringError) Error() string { return e.msg }

// ErrorCode returns the code given at construction, or the inconvertible
// sentinel.
func (e *StringError) ErrorCode() ErrorCode {
	if e.code.IsZero() {
		return InconvertibleErrorCode()
	}
	return e.code
}

// Context returns a copy of the fields; later duplicate keys win.
func (e *StringError) Context() map[string]any { return e.ctx.toMap() }

// Fields returns the fields in insertion order.
func (e *StringError) Fields() []Field {
	out := make([]Field, len(e.ctx))
	copy(out, e.ctx)
	return out
}

// With returns a copy of e carrying one more field.
func (e *StringError) With(key string, val any) *StringError {
	n := *e
	n.ctx = withFields(e.ctx, Field{Key: key, Val: val})
	return &n
}

// New creates a StringError failure with optional key/value fields.
func New(msg string, kv ...any) *Error {
	return newError(&StringError{msg: msg, ctx: fieldsFromKV(kv...)}, 1)
}

// Errorf creates a StringError failure from a format string.
func Errorf(format string, args ...any) *Error {
	return newError(&StringError{msg: fmt.Sprintf(format, args...)}, 1)
}

// NewCode creates a StringError failure that converts to code. The zero code
// is rejected fatally because it would read back as success.
func NewCode(code ErrorCode, msg string, kv ...any) *Error {
	if code.IsZero() {
		fatalf(nil, "NewCode called with the zero (success) code")
	}
	return newError(&StringError{msg: msg, code: code, ctx: fieldsFromKV(kv...)}, 1)
}

// FileError annotates a nested failure with the file it concerns.
type FileError struct {
	file string
	line int // 0 when unknown
	err  Payload
}

var kindFile = LazyKind("file", nil)

func (*FileError) Kind() *Kind { return kindFile() }

func (*FileError) ErrorCode() ErrorCode {
	return ErrorCode{Value: CodeFileError, Category: checkedCategory}
}

func (e *FileError) Error() string {
	var msg string
	if e.err != nil {
		msg = e.err.Error()
	}
	if e.line > 0 {
		return "'" + e.file + "': line " + strconv.Itoa(e.line) + ": " + msg
	}
	return "'" + e.file + "': " + msg
}

// File returns the annotated file name.
func (e *FileError) File() string { return e.file }

// Line returns the annotated line, or 0.
func (e *FileError) Line() int { return e.line }

// Unwrap exposes the nested payload to errors.Is/As.
func (e *FileError) Unwrap() error {
	if e.err == nil {
		return nil
	}
	return e.err
}

// Take moves the nested failure out into its own handle, for re-raising
// without the file annotation.
func (e *FileError) Take() *Error {
	p := e.err
	e.err = nil
	if p == nil {
		return newError(nil, 1)
	}
	return newError(p, 1)
}

// WithFile annotates the failure in err with file. A success passes through.
// err is consumed.
func WithFile(file string, err *Error) *Error {
	return WithFileLine(file, 0, err)
}

// WithFileLine is WithFile with a line number.
func WithFileLine(file string, line int, err *Error) *Error {
	p, origin := err.takeWithOrigin()
	if p == nil {
		return newError(nil, 1)
	}
	return adopt(&FileError{file: file, line: line, err: p}, origin)
}
