// value.go — the single-owner success-or-failure handle.
//
// State machine (Success|Failure × Unchecked|Checked):
//
//	Success()/Fail(p)  → *-Unchecked
//	Failed()           → *-Checked, reports whether the handle holds a failure
//	Move()             → source becomes Success-Checked; the new handle owns the
//	                     payload and starts Unchecked
//	Release()/GC       → an Unchecked handle is fatal (diagnostic builds)
//
// A nil *Error is a checked success, so `return nil` is valid propagation of
// "no failure". Handles must not be copied by value (go vet flags it through
// noCopy) and must not be used from two goroutines at once; hand one off with
// Move.
package checked

import (
	"runtime"
)

// noCopy makes `go vet` (copylocks) flag by-value copies of a handle.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// errState is shared between a handle and its drop audit. It must never point
// back at the handle, or the handle would never become unreachable.
type errState struct {
	payload Payload
	checked bool
	origin  Stack
	owner   string
}

// Error is a move-only handle holding either success or one owned Payload.
type Error struct {
	_       noCopy
	state   *errState
	cleanup runtime.Cleanup
}

// Success returns an unchecked "no failure" handle.
func Success() *Error { return newError(nil, 1) }

// Fail wraps a freshly constructed payload in an unchecked failing handle.
// Passing a nil payload is a programmer error.
func Fail(p Payload) *Error {
	if p == nil {
		fatalf(nil, "Fail called with a nil payload")
		return newError(nil, 1)
	}
	return newError(p, 1)
}

// newError builds a handle; skip counts frames above newError's caller that
// belong to this package, so origins point at user code.
func newError(p Payload, skip int) *Error {
	e := &Error{state: &errState{payload: p, owner: "Error"}}
	e.cleanup = track(e, e.state, skip+1)
	return e
}

// adopt re-homes a payload taken from another handle, keeping its origin.
func adopt(p Payload, origin Stack) *Error {
	e := newError(p, 1)
	if origin != nil {
		e.state.origin = origin
	}
	return e
}

// Failed is the boolean test. It marks the handle checked and reports
// whether it holds a failure.
func (e *Error) Failed() bool {
	if e == nil {
		return false
	}
	e.state.checked = true
	return e.state.payload != nil
}

// IsA reports whether the handle holds a failure whose kind is-a k. It does
// not mark the handle checked.
func (e *Error) IsA(k *Kind) bool {
	if e == nil || e.state.payload == nil {
		return false
	}
	return e.state.payload.Kind().IsA(k)
}

// Origin returns the stack captured where the failure was created. It is
// empty for success, in release builds, and for failures created by adopt
// from a handle that had none.
func (e *Error) Origin() Stack {
	if e == nil {
		return nil
	}
	return e.state.origin
}

// Move transfers ownership to a new handle. The receiver is left as a
// checked success, so dropping it afterwards is always safe.
func (e *Error) Move() *Error {
	if e == nil {
		return nil
	}
	p, origin := e.state.payload, e.state.origin
	e.state.payload = nil
	e.state.origin = nil
	e.state.checked = true
	if p == nil {
		return newError(nil, 1)
	}
	return adopt(p, origin)
}

// Release ends the handle's lifetime now instead of at garbage collection.
// An unchecked handle is reported exactly as a dropped one would be.
func (e *Error) Release() {
	if e == nil {
		return
	}
	untrack(e.cleanup)
	st := e.state
	e.state = &errState{checked: true, owner: st.owner}
	auditDropped(st)
}

// take consumes the handle: it returns the payload (nil for success) and
// leaves the handle checked and empty.
func (e *Error) take() Payload {
	if e == nil {
		return nil
	}
	p := e.state.payload
	e.state.payload = nil
	e.state.checked = true
	return p
}

// takeWithOrigin is take, also handing over the origin stack.
func (e *Error) takeWithOrigin() (Payload, Stack) {
	if e == nil {
		return nil, nil
	}
	origin := e.state.origin
	e.state.origin = nil
	return e.take(), origin
}

// String renders the current state without checking the handle.
func (e *Error) String() string {
	if e == nil || e.state.payload == nil {
		return "success"
	}
	return e.state.payload.Error()
}

// Consume explicitly discards err and reports whether it held a failure.
func Consume(err *Error) bool {
	return err.take() != nil
}

// Must asserts that err cannot be a failure. A failure is fatal.
func Must(err *Error) {
	p, origin := err.takeWithOrigin()
	if p != nil {
		fatalAt(p, origin, "failure returned from an operation that cannot fail")
	}
}
