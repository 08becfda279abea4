// kind.go — identity tokens for failure kinds and the single-parent "is-a" test.
//
// Design:
//   - A Kind is compared by pointer identity only. Two kinds with the same name
//     are still distinct kinds.
//   - Every kind has exactly one parent; the chain ends at the base kind.
//     Multiple inheritance is not expressible.
//   - Tokens are independent once-cells (LazyKind). There is no global
//     registry and no global lock.
package checked

import (
	"fmt"
	"strings"
	"sync"
)

// Kind is the process-stable identity of one failure kind.
type Kind struct {
	name   string
	parent *Kind
}

var baseKind = &Kind{name: "payload"}

// BaseKind returns the root of every kind chain. A handler declared for the
// base kind matches every payload.
func BaseKind() *Kind { return baseKind }

// NewKind allocates a new kind token whose parent is parent, or the base kind
// when parent is nil. Call it once per kind (package-level var or LazyKind).
func NewKind(name string, parent *Kind) *Kind {
	if parent == nil {
		parent = baseKind
	}
	return &Kind{name: name, parent: parent}
}

// LazyKind returns an accessor that publishes the kind on first use. The
// accessor is safe for concurrent first calls; the parent accessor, if any,
// is resolved inside the same once-cell.
//
//	var kindTimeout = checked.LazyKind("timeout", kindNetwork)
//	func (*TimeoutError) Kind() *checked.Kind { return kindTimeout() }
func LazyKind(name string, parent func() *Kind) func() *Kind {
	return sync.OnceValue(func() *Kind {
		var p *Kind
		if parent != nil {
			p = parent()
		}
		return NewKind(name, p)
	})
}

// Name returns the kind's declared name.
func (k *Kind) Name() string {
	if k == nil {
		return "<nil>"
	}
	return k.name
}

// Parent returns the declared parent, or nil for the base kind.
func (k *Kind) Parent() *Kind {
	if k == nil {
		return nil
	}
	return k.parent
}

// IsA reports whether k is target or has target somewhere up its parent chain.
func (k *Kind) IsA(target *Kind) bool {
	if target == nil {
		return false
	}
	for c := k; c != nil; c = c.parent {
		if c == target {
			return true
		}
	}
	return false
}

// String renders the chain from the base kind down, e.g. "payload/path/missing".
func (k *Kind) String() string {
	if k == nil {
		return "<nil>"
	}
	var names []string
	for c := k; c != nil; c = c.parent {
		names = append(names, c.name)
	}
	var sb strings.Builder
	for i := len(names) - 1; i >= 0; i-- {
		sb.WriteString(names[i])
		if i > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// KindOf returns the kind declared by payload type P. P must be a concrete
// type whose Kind method works on the zero value (a pointer receiver that
// returns a token without touching the receiver).
func KindOf[P Payload]() (k *Kind) {
	var zero P
	defer func() {
		if r := recover(); r != nil {
			k = nil
			fatalf(nil, "payload type %T cannot report its kind from a zero value: %v", zero, r)
		}
	}()
	k = zero.Kind()
	if k == nil {
		fatalf(nil, "payload type %T reports a nil kind", zero)
	}
	return k
}

// kindName is used by diagnostics; it tolerates payloads with broken Kind methods.
func kindName(p Payload) (name string) {
	defer func() {
		if recover() != nil {
			name = fmt.Sprintf("%T", p)
		}
	}()
	return p.Kind().String()
}
