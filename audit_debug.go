//go:build !release

// audit_debug.go — drop auditing for diagnostic builds.
//
// Every handle registers a runtime cleanup whose argument is the handle's
// state (never the handle itself). When the handle becomes unreachable while
// still unchecked, the cleanup reports it through the fatal path.
package checked

import (
	"runtime"
)

// auditEnabled is false when built with the release tag.
const auditEnabled = true

// track records the origin of a failing handle and arms its drop audit.
func track[T any](owner *T, st *errState, skip int) runtime.Cleanup {
	if st.payload != nil {
		st.origin = captureStack(skip+1, originDepth)
	}
	return runtime.AddCleanup(owner, auditDropped, st)
}

func untrack(c runtime.Cleanup) { c.Stop() }

// auditDropped runs when a handle dies, from Release or from the runtime's
// cleanup goroutine.
func auditDropped(st *errState) {
	if st.checked {
		return
	}
	if st.payload == nil {
		fatalAt(nil, nil, st.owner+" value was success. (Note: success values must still be checked prior to being destroyed)")
		return
	}
	fatalAt(st.payload, st.origin, "unchecked failure dropped: "+st.owner+" must be checked before it is destroyed")
}
