// predicates.go — non-consuming questions about handles and payloads.
//
// None of these mark a handle checked: asking what a failure is does not
// count as handling it.
package checked

// Is reports whether p's kind is-a the kind declared by P.
func Is[P Payload](p Payload) bool {
	if p == nil {
		return false
	}
	return p.Kind().IsA(KindOf[P]())
}

// Contains reports whether err holds a failure of kind k, directly, as a List
// member, or nested inside another payload's Unwrap chain.
func Contains(err *Error, k *Kind) bool {
	if err == nil || err.state.payload == nil {
		return false
	}
	found := false
	Walk(err.state.payload, func(p Payload) bool {
		found = p.Kind().IsA(k)
		return !found
	})
	return found
}

// CodeOf returns the legacy code of the failure err holds without consuming
// it: the zero code for success.
func CodeOf(err *Error) ErrorCode {
	if err == nil || err.state.payload == nil {
		return ErrorCode{}
	}
	return err.state.payload.ErrorCode()
}

// Count returns the number of independent failures err holds: 0 for
// success, the member count for a List, 1 otherwise.
func Count(err *Error) int {
	if err == nil || err.state.payload == nil {
		return 0
	}
	if l, ok := err.state.payload.(*List); ok {
		return l.Len()
	}
	return 1
}
