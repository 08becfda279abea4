// unwrap.go — traversal over payload graphs.
//
// A payload graph is a List's members plus any chain a payload exposes
// through Unwrap() error whose links are themselves payloads (a FileError's
// nested failure, for example). Foreign errors below a ForeignError are not
// payloads and end the walk.
//
// Traversal semantics:
//   - Walk:    pre-order; stops early when visit returns false.
//   - Flatten: leaves only (payloads with no payload children), DFS order.
package checked

// children returns p's payload children.
func children(p Payload) []Payload {
	if l, ok := p.(*List); ok {
		return l.payloads
	}
	if u, ok := p.(interface{ Unwrap() error }); ok {
		if c, ok := u.Unwrap().(Payload); ok && c != nil {
			return []Payload{c}
		}
	}
	return nil
}

// maxNesting bounds how deep Walk follows Unwrap chains. List members do not
// add depth: lists are flat, so a list of any size is walked in full.
const maxNesting = 1 << 12

// Walk visits p and its payload descendants in pre-order. A chain nested
// deeper than maxNesting (a cycle, in practice) is cut there and the cut is
// logged; siblings are still visited.
func Walk(p Payload, visit func(Payload) bool) {
	if p == nil || visit == nil {
		return
	}
	type entry struct {
		p     Payload
		depth int
	}

	stack := make([]entry, 0, 8)
	stack = append(stack, entry{p: p})
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur.p) {
			return
		}
		kids := children(cur.p)
		if len(kids) == 0 {
			continue
		}
		depth := cur.depth
		if _, ok := cur.p.(*List); !ok {
			depth++
		}
		if depth > maxNesting {
			l := Logger()
			l.Warn().Str("kind", kindName(cur.p)).Int("depth", cur.depth).
				Msg("payload chain exceeds nesting bound; not descending")
			continue
		}
		for i := len(kids) - 1; i >= 0; i-- {
			if kids[i] != nil {
				stack = append(stack, entry{p: kids[i], depth: depth})
			}
		}
	}
}

// Flatten returns the leaf payloads under p in depth-first order.
func Flatten(p Payload) []Payload {
	var out []Payload
	Walk(p, func(cur Payload) bool {
		if len(children(cur)) == 0 {
			out = append(out, cur)
		}
		return true
	})
	return out
}

// Root returns the first leaf, or nil.
func Root(p Payload) Payload {
	leaves := Flatten(p)
	if len(leaves) == 0 {
		return nil
	}
	return leaves[0]
}
