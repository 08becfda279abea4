// error.go — the Payload contract every failure kind implements.
//
// A Payload is the heap-allocated description of one failure. It is owned by
// exactly one handle (*Error, *Expected[T]) or by a *List at any instant and
// is never shared: ownership moves, it is not copied.
//
// Implementations SHOULD:
//   - Use a pointer receiver for Kind and return a package-level token without
//     reading the receiver, so KindOf can ask a nil value for its kind.
//   - Return InconvertibleErrorCode() from ErrorCode when no numeric code
//     makes sense (embed NoCode to get that for free).
//   - Provide As(target any) bool when the kind declares a parent kind that is
//     a different Go type, so handlers for the parent can view the payload.
package checked

// Payload is a polymorphic failure descriptor.
type Payload interface {
	// error renders the human-readable message. It must not include a
	// trailing newline.
	error

	// Kind returns the identity token of the payload's failure kind.
	Kind() *Kind

	// ErrorCode converts the failure to a legacy numeric code, best effort.
	ErrorCode() ErrorCode
}

// NoCode is embedded by payload kinds that have no sensible legacy code.
type NoCode struct{}

// ErrorCode returns the inconvertible sentinel.
func (NoCode) ErrorCode() ErrorCode { return InconvertibleErrorCode() }

// contextual is implemented by payloads that carry structured fields.
type contextual interface {
	Context() map[string]any
}

// viewAs converts p to the handler parameter type P: first by direct type
// assertion, then through the payload's own As method (used by kinds that
// embed their parent kind's Go type). Unwrap chains are not followed: a
// payload is viewed, never searched.
func viewAs[P Payload](p Payload) (P, bool) {
	if v, ok := p.(P); ok {
		return v, true
	}
	var v P
	if a, ok := p.(interface{ As(any) bool }); ok && a.As(&v) {
		return v, true
	}
	return v, false
}
