// join.go — List, the payload that aggregates independent failures, and Join.
//
// Goals:
//   - Merging never nests: a List only ever holds non-List payloads, in the
//     order the failures were joined.
//   - Join consumes its operands. Success operands vanish; a single failure
//     passes through (moved, unchecked); two or more flatten into one List.
//   - Interop: List implements Unwrap() []error so errors.Is/As traverse it
//     once it leaves the mechanism through ToStd, and Error() newline-joins
//     like errors.Join.
package checked

import (
	"fmt"
	"strings"
)

// List is a payload holding other payloads.
type List struct {
	payloads []Payload
}

var kindList = LazyKind("list", nil)

func (*List) Kind() *Kind { return kindList() }

// ErrorCode reports the multiple-errors code; the individual codes are only
// reachable by handling the members.
func (*List) ErrorCode() ErrorCode {
	return ErrorCode{Value: CodeMultipleErrors, Category: checkedCategory}
}

// Error concatenates member messages with newlines.
func (l *List) Error() string {
	switch len(l.payloads) {
	case 0:
		return ""
	case 1:
		return l.payloads[0].Error()
	}
	var sb strings.Builder
	for i, p := range l.payloads {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(p.Error())
	}
	return sb.String()
}

// Len returns the number of members.
func (l *List) Len() int { return len(l.payloads) }

// Payloads returns a copy of the member slice. The members stay owned by l.
func (l *List) Payloads() []Payload {
	out := make([]Payload, len(l.payloads))
	copy(out, l.payloads)
	return out
}

// Unwrap exposes the members to errors.Is/As.
func (l *List) Unwrap() []error {
	out := make([]error, len(l.payloads))
	for i, p := range l.payloads {
		out[i] = p
	}
	return out
}

// Format implements fmt.Formatter.
//
//	%v, %s, %q → render like Error().
//	%+v        → each member with %+v, newline-separated.
func (l *List) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			for i, p := range l.payloads {
				if i > 0 {
					_, _ = fmt.Fprint(s, "\n")
				}
				_, _ = fmt.Fprintf(s, "%+v", p)
			}
			return
		}
		formatConcise(s, l)
	case 's':
		formatConcise(s, l)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", l.Error())
	default:
		formatConcise(s, l)
	}
}

// take hands the members to the caller and empties the list.
func (l *List) take() []Payload {
	out := l.payloads
	l.payloads = nil
	return out
}

// Join concatenates failures. Every operand is consumed (left checked).
//
//   - no failures       → unchecked success
//   - one failure       → that failure, unchecked
//   - two or more       → one flat *List, unchecked, members in operand order
func Join(errs ...*Error) *Error {
	var (
		acc    Payload
		origin Stack
	)
	for _, e := range errs {
		p, o := e.takeWithOrigin()
		if p == nil {
			continue
		}
		if acc == nil {
			acc, origin = p, o
			continue
		}
		acc = joinPayloads(acc, p)
	}
	if acc == nil {
		return newError(nil, 1)
	}
	return adopt(acc, origin)
}

// joinPayloads merges two failures, appending into whichever side is already
// a List.
func joinPayloads(a, b Payload) Payload {
	la, aList := a.(*List)
	lb, bList := b.(*List)
	switch {
	case aList && bList:
		la.payloads = append(la.payloads, lb.take()...)
		return la
	case aList:
		la.payloads = append(la.payloads, b)
		return la
	case bList:
		lb.payloads = append([]Payload{a}, lb.payloads...)
		return lb
	default:
		return &List{payloads: []Payload{a, b}}
	}
}

// Append joins more failures onto head; it is Join(head, more...).
func Append(head *Error, more ...*Error) *Error {
	all := make([]*Error, 0, 1+len(more))
	all = append(all, head)
	all = append(all, more...)
	return Join(all...)
}
