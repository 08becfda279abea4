// codes.go — legacy numeric error codes and the single adapter kind that lets
// them take part in checked propagation.
//
// Intent:
//   - An ErrorCode is a (value, category) pair, the shape OS and older library
//     code reports failures in. Value 0 means "no failure" in every category.
//   - CodeError is the one payload kind that carries such a code. Anything that
//     produces a numeric code routes it through FromCode/FromErrno before it can
//     be joined or dispatched.
//   - The inconvertible sentinel is deliberately one-way: payloads may convert
//     TO it, but converting it back into a payload is a programmer error and is
//     fatal.
package checked

import (
	"strconv"
	"syscall"
)

// Category names a numbering domain for legacy codes.
type Category interface {
	Name() string
	Message(value int) string
}

type category struct {
	name    string
	message func(int) string
}

func (c *category) Name() string { return c.name }

func (c *category) Message(v int) string {
	if c.message == nil {
		return c.name + " error " + strconv.Itoa(v)
	}
	return c.message(v)
}

// NewCategory declares a numbering domain. Categories compare by identity, so
// call it once per domain.
func NewCategory(name string, message func(value int) string) Category {
	return &category{name: name, message: message}
}

// Codes of the checked category.
const (
	CodeMultipleErrors = 1 // a *List was converted
	CodeFileError      = 2 // a *FileError was converted
	CodeInconvertible  = 3 // no sensible mapping exists
)

var (
	systemCategory = &category{
		name:    "system",
		message: func(v int) string { return syscall.Errno(v).Error() },
	}
	checkedCategory = &category{
		name: "checked",
		message: func(v int) string {
			switch v {
			case CodeMultipleErrors:
				return "multiple errors"
			case CodeFileError:
				return "file error"
			case CodeInconvertible:
				return "inconvertible error value. An error has occurred that could not be " +
					"converted to a known error code. Please file a bug."
			}
			return "unknown checked error " + strconv.Itoa(v)
		},
	}
)

// SystemCategory is the category of operating-system error numbers.
func SystemCategory() Category { return systemCategory }

// CheckedCategory is the category of codes this package itself produces.
func CheckedCategory() Category { return checkedCategory }

// ErrorCode is a legacy numeric failure code.
type ErrorCode struct {
	Value    int
	Category Category
}

// InconvertibleErrorCode is the sentinel returned by payloads that have no
// meaningful numeric code. It must never be turned back into a payload.
func InconvertibleErrorCode() ErrorCode {
	return ErrorCode{Value: CodeInconvertible, Category: checkedCategory}
}

// Errno builds a system-category code.
func Errno(errno syscall.Errno) ErrorCode {
	return ErrorCode{Value: int(errno), Category: systemCategory}
}

// IsZero reports whether c means "no failure".
func (c ErrorCode) IsZero() bool { return c.Value == 0 }

// IsInconvertible reports whether c is the inconvertible sentinel.
func (c ErrorCode) IsInconvertible() bool { return c == InconvertibleErrorCode() }

// Message renders the category's description of the value.
func (c ErrorCode) Message() string {
	if c.Category == nil {
		if c.Value == 0 {
			return "success"
		}
		return "error " + strconv.Itoa(c.Value)
	}
	return c.Category.Message(c.Value)
}

func (c ErrorCode) String() string {
	name := "generic"
	if c.Category != nil {
		name = c.Category.Name()
	}
	return name + ":" + strconv.Itoa(c.Value)
}

// CodeError adapts a legacy numeric code into a payload.
type CodeError struct {
	code ErrorCode
	msg  string
}

var kindCode = LazyKind("code", nil)

func (*CodeError) Kind() *Kind { return kindCode() }

// Code returns the wrapped legacy code.
func (e *CodeError) Code() ErrorCode { return e.code }

func (e *CodeError) ErrorCode() ErrorCode { return e.code }

func (e *CodeError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return e.code.Message()
}

// Unwrap exposes a system-category code as its syscall.Errno, so errors.Is
// matches errno values and fs sentinels (fs.ErrNotExist, ...) once the payload
// has left the mechanism through ToStd.
func (e *CodeError) Unwrap() error {
	if e.code.Category != systemCategory {
		return nil
	}
	return syscall.Errno(e.code.Value)
}

// FromCode converts a legacy code into a handle: the zero code becomes
// success, anything else a *CodeError failure. Passing the inconvertible
// sentinel is fatal.
func FromCode(code ErrorCode) *Error {
	return fromCode(code, "", 1)
}

// FromCodeMsg is FromCode with a message that replaces the category's
// description.
func FromCodeMsg(code ErrorCode, msg string) *Error {
	return fromCode(code, msg, 1)
}

// FromErrno adapts an operating-system error number.
func FromErrno(errno syscall.Errno, msg string) *Error {
	return fromCode(Errno(errno), msg, 1)
}

func fromCode(code ErrorCode, msg string, skip int) *Error {
	if code.IsZero() {
		return newError(nil, skip+1)
	}
	if code.IsInconvertible() {
		fatalf(nil, "inconvertible error code converted back into a failure: %s", code.Message())
		return newError(nil, skip+1)
	}
	return newError(&CodeError{code: code, msg: msg}, skip+1)
}

// ToCode consumes err and returns its legacy code: the zero code for
// success, the payload's best-effort conversion otherwise (which may be the
// inconvertible sentinel).
func ToCode(err *Error) ErrorCode {
	p := err.take()
	if p == nil {
		return ErrorCode{}
	}
	return p.ErrorCode()
}
