// dispatch.go — resolving a failure against an ordered list of typed handlers.
//
// Rules:
//   - Handle consumes its input. A List is split and every member is offered
//     to the full handler list on its own; the per-member results are joined.
//   - For a single payload, handlers are tried in declaration order and the
//     first whose declared kind the payload is-a wins. Later, more specific
//     handlers are never consulted.
//   - The winning handler owns the payload. It returns success (resolved) or
//     a new failure (re-raised, possibly as another kind).
//   - No match hands the payload back, unchanged, in a failing handle.
package checked

// Handler is one typed resolution step. Build it with On, OnVoid, OnKind or
// OnAny; the zero Handler matches nothing.
type Handler struct {
	kind  *Kind
	apply func(Payload) *Error
}

// Kind returns the kind the handler declares.
func (h Handler) Kind() *Kind { return h.kind }

// On declares a handler for payloads that are-a P. A payload of a descendant
// kind is converted to P by type assertion or through its As method.
func On[P Payload](fn func(P) *Error) Handler {
	return Handler{
		kind: KindOf[P](),
		apply: func(p Payload) *Error {
			v, ok := viewAs[P](p)
			if !ok {
				fatalf(p, "payload of kind %s is-a %s but cannot be viewed as %T", kindName(p), KindOf[P](), v)
				return newError(p, 1)
			}
			return fn(v)
		},
	}
}

// OnVoid declares a handler that always resolves the failure.
func OnVoid[P Payload](fn func(P)) Handler {
	return On(func(p P) *Error {
		fn(p)
		return nil
	})
}

// OnKind declares a handler by kind token; the payload is passed untyped.
func OnKind(k *Kind, fn func(Payload) *Error) Handler {
	return Handler{kind: k, apply: fn}
}

// OnAny declares a handler that matches every payload.
func OnAny(fn func(Payload) *Error) Handler {
	return OnKind(baseKind, fn)
}

// Handle resolves err against handlers and returns whatever remains: success
// when everything was handled, otherwise the unmatched and re-raised failures
// joined in order. err is consumed; the result must be checked.
func Handle(err *Error, handlers ...Handler) *Error {
	p, origin := err.takeWithOrigin()
	if p == nil {
		return newError(nil, 1)
	}
	l, ok := p.(*List)
	if !ok {
		return dispatchOne(p, origin, handlers)
	}
	members := l.take()
	results := make([]*Error, 0, len(members))
	for _, m := range members {
		results = append(results, dispatchOne(m, origin, handlers))
	}
	return Join(results...)
}

// HandleAll is Handle for call sites that cover every possible kind. Any
// remaining failure is fatal.
func HandleAll(err *Error, handlers ...Handler) {
	rest := Handle(err, handlers...)
	p, origin := rest.takeWithOrigin()
	if p != nil {
		fatalAt(p, origin, "failure not resolved by HandleAll")
	}
}

func dispatchOne(p Payload, origin Stack, handlers []Handler) *Error {
	k := p.Kind()
	for _, h := range handlers {
		if h.apply == nil || !k.IsA(h.kind) {
			continue
		}
		if r := h.apply(p); r != nil {
			return r
		}
		return newError(nil, 1)
	}
	return adopt(p, origin)
}
