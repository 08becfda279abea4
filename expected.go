// expected.go — Expected[T], a value of T or an owned failure, with the same
// checked discipline as Error.
//
// Construction:
//   - Value(v)        success
//   - FromError(err)  failure; err must hold one (a success handle is fatal)
//   - FailWith(p)     failure from a fresh payload
//
// A function declared to return *Expected[T] cannot return a bare *Error
// (such as Success()): the types differ, so the "returned no failure instead
// of a value" bug does not compile.
package checked

import (
	"runtime"
)

// Expected holds either a T or a Payload.
type Expected[T any] struct {
	_       noCopy
	value   T
	hasErr  bool
	state   *errState
	cleanup runtime.Cleanup
}

func newExpected[T any](v T, p Payload, skip int) *Expected[T] {
	x := &Expected[T]{value: v, hasErr: p != nil, state: &errState{payload: p, owner: "Expected"}}
	x.cleanup = track(x, x.state, skip+1)
	return x
}

// Value wraps v as an unchecked success.
func Value[T any](v T) *Expected[T] {
	return newExpected[T](v, nil, 1)
}

// FailWith wraps a fresh payload as an unchecked failure.
func FailWith[T any](p Payload) *Expected[T] {
	var zero T
	if p == nil {
		fatalf(nil, "FailWith called with a nil payload")
	}
	return newExpected(zero, p, 1)
}

// FromError moves the failure held by err into a new Expected. err must be a
// failure: a success handle cannot stand in for a value.
func FromError[T any](err *Error) *Expected[T] {
	var zero T
	p, origin := err.takeWithOrigin()
	if p == nil {
		fatalf(nil, "Expected[%T] constructed from a success value", zero)
		return newExpected(zero, nil, 1)
	}
	x := newExpected(zero, p, 1)
	if origin != nil {
		x.state.origin = origin
	}
	return x
}

// Ok is the boolean test: it marks x checked and reports whether it holds a
// value.
func (x *Expected[T]) Ok() bool {
	x.state.checked = true
	return !x.hasErr
}

// Get returns the value. Calling it on a failure is fatal, and in diagnostic
// builds so is calling it before Ok.
func (x *Expected[T]) Get() T {
	if x.hasErr {
		var zero T
		fatalAt(x.state.payload, x.state.origin, "Get called on an Expected holding a failure")
		return zero
	}
	if auditEnabled && !x.state.checked {
		fatalf(nil, "Expected[%T] must be checked with Ok before Get", x.value)
	}
	return x.value
}

// Ptr returns a pointer to the stored value, under the same rules as Get.
func (x *Expected[T]) Ptr() *T {
	_ = x.Get()
	return &x.value
}

// TakeError moves the failure out. On a success it returns a success handle.
// Either way x is left checked, and after taking a failure x is fully
// consumed: its value must not be read.
func (x *Expected[T]) TakeError() *Error {
	x.state.checked = true
	if !x.hasErr {
		return newError(nil, 1)
	}
	p, origin := x.state.payload, x.state.origin
	x.state.payload = nil
	x.state.origin = nil
	if p == nil {
		fatalf(nil, "TakeError called twice on the same Expected")
		return newError(nil, 1)
	}
	return adopt(p, origin)
}

// IsA reports whether x holds a failure whose kind is-a k, without checking.
func (x *Expected[T]) IsA(k *Kind) bool {
	return x.hasErr && x.state.payload != nil && x.state.payload.Kind().IsA(k)
}

// Move transfers the contents to a new Expected and leaves x as a checked
// success holding the zero value.
func (x *Expected[T]) Move() *Expected[T] {
	p, origin, v, hasErr := x.state.payload, x.state.origin, x.value, x.hasErr
	var zero T
	x.value = zero
	x.hasErr = false
	x.state.payload = nil
	x.state.origin = nil
	x.state.checked = true
	n := newExpected(v, p, 1)
	n.hasErr = hasErr
	if origin != nil {
		n.state.origin = origin
	}
	return n
}

// Release ends x's lifetime now; an unchecked x is reported like a dropped one.
func (x *Expected[T]) Release() {
	untrack(x.cleanup)
	st := x.state
	x.state = &errState{checked: true, owner: st.owner}
	auditDropped(st)
}

// Result consumes x into Go's customary (value, error) pair.
func (x *Expected[T]) Result() (T, *Error) {
	if x.Ok() {
		return x.Get(), nil
	}
	var zero T
	return zero, x.TakeError()
}

// Convert moves src into an Expected[T], converting a held value with conv.
// A failure moves across unchanged. As with Move, src is left checked and
// empty and the result starts unchecked.
func Convert[U, T any](src *Expected[U], conv func(U) T) *Expected[T] {
	var zero T
	if src.hasErr {
		p, origin := src.state.payload, src.state.origin
		src.hasErr = false
		src.state.payload = nil
		src.state.origin = nil
		src.state.checked = true
		x := newExpected(zero, p, 1)
		x.hasErr = true // p is nil when src's failure was already taken
		if origin != nil {
			x.state.origin = origin
		}
		return x
	}
	v := src.value
	var uzero U
	src.value = uzero
	src.state.checked = true
	return newExpected[T](conv(v), nil, 1)
}

// MustGet asserts x cannot hold a failure and returns its value.
func MustGet[T any](x *Expected[T]) T {
	if !x.Ok() {
		var zero T
		fatalAt(x.state.payload, x.state.origin, "failure returned from an operation that cannot fail")
		return zero
	}
	return x.Get()
}

// HandleExpected recovers from a failed x: the failure is dispatched to
// handlers and, if every part of it is resolved, recoverFn supplies the
// replacement. A successful x is moved through untouched.
func HandleExpected[T any](x *Expected[T], recoverFn func() *Expected[T], handlers ...Handler) *Expected[T] {
	if x.Ok() {
		return x.Move()
	}
	if rest := Handle(x.TakeError(), handlers...); rest.Failed() {
		return FromError[T](rest)
	}
	return recoverFn()
}
