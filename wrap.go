// wrap.go — the border with Go's ordinary error values.
//
//   - FromStd brings any error in. Payloads come back as themselves; errors
//     carrying a nonzero OS error number go through the CodeError adapter;
//     anything else becomes a ForeignError. Only a bare Errno(0) is success.
//   - ToStd lets a handle out as a plain error (the payload itself, which
//     implements error). Lists keep Unwrap() []error so errors.Is/As still see
//     every member.
package checked

import (
	"errors"
	"syscall"
)

// ForeignError carries an error value from outside the mechanism.
type ForeignError struct {
	NoCode
	err error
}

var kindForeign = LazyKind("foreign", nil)

func (*ForeignError) Kind() *Kind { return kindForeign() }

func (e *ForeignError) Error() string { return e.err.Error() }

// Unwrap returns the original error.
func (e *ForeignError) Unwrap() error { return e.err }

// FromStd converts a Go error into a handle; nil becomes success.
func FromStd(err error) *Error {
	return fromStd(err, 1)
}

// FromSyscall is FromStd for results of OS calls; it exists to make the
// routing through the CodeError adapter explicit at call sites.
func FromSyscall(err error) *Error {
	return fromStd(err, 1)
}

func fromStd(err error, skip int) *Error {
	if err == nil {
		return newError(nil, skip+1)
	}
	if p, ok := err.(Payload); ok {
		return newError(p, skip+1)
	}
	if errno, ok := err.(syscall.Errno); ok && errno == 0 {
		return newError(nil, skip+1)
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return newError(&CodeError{code: Errno(errno), msg: err.Error()}, skip+1)
	}
	return newError(&ForeignError{err: err}, skip+1)
}

// ToStd consumes err and returns its payload as a plain error, or nil for
// success.
func ToStd(err *Error) error {
	p := err.take()
	if p == nil {
		return nil
	}
	return p
}

// ToStdValue consumes x into (value, error).
func ToStdValue[T any](x *Expected[T]) (T, error) {
	v, err := x.Result()
	return v, ToStd(err)
}
