// doc.go — package documentation for xgx-checked
//
// Package checked provides checked error propagation: failures that must be
// looked at exactly once, can carry arbitrary structured data, and can be
// merged without losing information when several independent operations fail.
//
// # Pieces
//
//   - Payload: the interface every failure kind implements (message, kind
//     token, best-effort legacy code).
//   - Kind: a per-kind identity token with a single-parent "is-a" chain.
//   - *Error: a move-only handle holding success or one owned Payload, with a
//     checked flag.
//   - *List: the payload that aggregates several failures; always flat.
//   - Handle/HandleAll: typed, ordered handler dispatch.
//   - *Expected[T]: a value or a failure, with the same checked flag.
//   - CodeError: the adapter for legacy numeric codes.
//
// # The checked flag
//
// A handle starts unchecked. Failed() (Ok() on Expected) checks it; so does
// every operation that consumes it (Handle, Join, Consume, ToStd, ToString,
// Move on the source). In diagnostic builds a handle that becomes unreachable,
// or is Released, while unchecked is reported with its payload and the stack
// where it was created, and the process exits with ExitSoftware:
//
//	func load(path string) *checked.Error {
//		if err := parse(path); err.Failed() {
//			return err.Move() // the caller inherits the obligation
//		}
//		return nil
//	}
//
// Building with -tags release compiles the audit out. The state machine is
// the same; only drop reporting and the Get-before-Ok assertion are gone.
//
// # Kinds
//
// Declare a token once per kind, lazily if you like, and report it from a
// pointer receiver that does not read the receiver:
//
//	var kindNetwork = checked.LazyKind("network", nil)
//	var kindTimeout = checked.LazyKind("timeout", kindNetwork)
//
//	type TimeoutError struct {
//		checked.NoCode
//		NetworkError // parent kind's Go type
//	}
//
//	func (*TimeoutError) Kind() *checked.Kind { return kindTimeout() }
//
// A kind whose parent is a different Go type implements As(target any) bool so
// handlers declared for the parent can view it.
//
// # Dispatch
//
//	rest := checked.Handle(err,
//		checked.OnVoid(func(e *TimeoutError) { retries++ }),
//		checked.On(func(e *NetworkError) *checked.Error {
//			return checked.Errorf("giving up on %s", e.Host)
//		}),
//	)
//	if rest.Failed() {
//		return rest.Move()
//	}
//
// Handlers are tried in order; the first whose kind the payload is-a wins.
// A List is split and every member is dispatched on its own.
//
// # Programmer errors
//
// Dropping an unchecked handle, reading the value of a failed Expected,
// converting InconvertibleErrorCode back into a failure, and leaving a failure
// unresolved in HandleAll are bugs, not runtime conditions. They go to the
// fatal path (logged with zerolog, then SetFatalHandler's handler) and never
// through dispatch.
//
// # Concurrency
//
// Handles are single-owner. Hand one to another goroutine by sending the
// result of Move; never touch one handle from two goroutines. Kind tokens
// are published once each and are safe to use from anywhere.
package checked
