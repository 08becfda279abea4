package checked

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/quick"
)

// members consumes err and returns the payloads it held, List-expanded.
func members(t *testing.T, err *Error) []Payload {
	t.Helper()
	switch p := ToStd(err).(type) {
	case nil:
		return nil
	case *List:
		for _, m := range p.payloads {
			if _, nested := m.(*List); nested {
				t.Fatalf("list contains a nested list")
			}
		}
		return p.Payloads()
	case Payload:
		return []Payload{p}
	default:
		t.Fatalf("ToStd returned a non-payload %T", p)
		return nil
	}
}

func messagesOf(ps []Payload) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Error()
	}
	return out
}

// Test the identity law: joining with success returns the other side unchanged.
func TestJoin_IdentityLaw(t *testing.T) {
	t.Parallel()

	p := &diskError{device: "a"}

	left := members(t, Join(Success(), Fail(p)))
	if len(left) != 1 || left[0] != p {
		t.Fatalf("Join(success, x) = %v, want x itself", left)
	}
	right := members(t, Join(Fail(p), Success()))
	if len(right) != 1 || right[0] != p {
		t.Fatalf("Join(x, success) = %v, want x itself", right)
	}
}

func TestJoin_AllSuccess(t *testing.T) {
	t.Parallel()

	if Join().Failed() {
		t.Fatalf("Join() should be success")
	}
	if Join(Success(), nil, Success()).Failed() {
		t.Fatalf("Join of successes should be success")
	}
}

func TestJoin_ResultStartsUnchecked(t *testing.T) {
	requireAudit(t)

	single := Join(Success(), Fail(&diskError{device: "a"}))
	expectFatal(t, single.Release)

	many := Join(Fail(&diskError{device: "a"}), Fail(&diskError{device: "b"}))
	expectFatal(t, many.Release)

	none := Join(Success(), Success())
	expectFatal(t, none.Release)
}

func TestJoin_ConsumesOperands(t *testing.T) {
	a := Fail(&diskError{device: "a"})
	b := Fail(&diskError{device: "b"})
	joined := Join(a, b)

	noFatal(t, func() {
		a.Release()
		b.Release()
	})
	if a.Failed() || b.Failed() {
		t.Fatalf("operands must be left as success")
	}
	if got := Count(joined); got != 2 {
		t.Fatalf("Count = %d, want 2", got)
	}
	Consume(joined)
}

// Test that merging never nests lists, whichever side already holds one.
func TestJoin_Flattens(t *testing.T) {
	t.Parallel()

	mk := func(s string) *Error { return New(s) }

	cases := []struct {
		name string
		err  *Error
		want []string
	}{
		{"payload+payload", Join(mk("a"), mk("b")), []string{"a", "b"}},
		{"list+payload", Join(Join(mk("a"), mk("b")), mk("c")), []string{"a", "b", "c"}},
		{"payload+list", Join(mk("a"), Join(mk("b"), mk("c"))), []string{"a", "b", "c"}},
		{"list+list", Join(Join(mk("a"), mk("b")), Join(mk("c"), mk("d"))), []string{"a", "b", "c", "d"}},
		{"variadic", Join(mk("a"), Success(), mk("b"), mk("c")), []string{"a", "b", "c"}},
		{"append", Append(mk("a"), mk("b"), Join(mk("c"), mk("d"))), []string{"a", "b", "c", "d"}},
	}
	for _, tc := range cases {
		got := messagesOf(members(t, tc.err))
		if strings.Join(got, ",") != strings.Join(tc.want, ",") {
			t.Fatalf("%s: members = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestQuickJoin_Associative(t *testing.T) {
	build := func(prefix string, n uint8) *Error {
		var errs []*Error
		for i := 0; i < int(n%4); i++ {
			errs = append(errs, Errorf("%s%d", prefix, i))
		}
		return Join(errs...)
	}
	property := func(x, y, z uint8) bool {
		left := Join(Join(build("a", x), build("b", y)), build("c", z))
		right := Join(build("a", x), Join(build("b", y), build("c", z)))
		l := messagesOf(members(t, left))
		r := messagesOf(members(t, right))
		return strings.Join(l, "|") == strings.Join(r, "|") && len(l) == int(x%4+y%4+z%4)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Fatalf("join associativity failed: %v", err)
	}
}

func TestJoin_KeepsFirstOrigin(t *testing.T) {
	requireAudit(t)

	first := Fail(&diskError{device: "a"})
	want := first.Origin().Top()
	joined := Join(Success(), first, Fail(&diskError{device: "b"}))
	defer Consume(joined)

	if got := joined.Origin().Top(); got != want {
		t.Fatalf("origin = %+v, want %+v", got, want)
	}
}

func TestList_Interop(t *testing.T) {
	t.Parallel()

	disk := &diskError{device: "sda"}
	err := ToStd(Join(New("first"), Fail(disk)))

	if got := err.Error(); got != "first\ndisk full: sda" {
		t.Fatalf("Error() = %q", got)
	}
	if !errors.Is(err, disk) {
		t.Fatalf("errors.Is should see list members")
	}
	var de *diskError
	if !errors.As(err, &de) || de != disk {
		t.Fatalf("errors.As should locate the member")
	}
	l := err.(*List)
	if l.Len() != 2 {
		t.Fatalf("Len = %d", l.Len())
	}
	if code := l.ErrorCode(); code.Value != CodeMultipleErrors || code.Category != CheckedCategory() {
		t.Fatalf("ErrorCode = %v", code)
	}
	if l.Kind() != KindOf[*List]() {
		t.Fatalf("kind mismatch")
	}

	ps := l.Payloads()
	ps[0] = nil
	if l.Payloads()[0] == nil {
		t.Fatalf("Payloads must return a copy")
	}
}

func TestList_Format(t *testing.T) {
	t.Parallel()

	l := ToStd(Join(New("a", "k", 1), New("b"))).(*List)

	if got := fmt.Sprintf("%v", l); got != "a\nb" {
		t.Fatalf("%%v = %q", got)
	}
	if got := fmt.Sprintf("%q", l); got != `"a\nb"` {
		t.Fatalf("%%q = %q", got)
	}
	verbose := fmt.Sprintf("%+v", l)
	want := "kind=payload/string msg=\"a\"\nctx: k=1\nkind=payload/string msg=\"b\""
	if verbose != want {
		t.Fatalf("%%+v =\n%s\nwant\n%s", verbose, want)
	}
}
