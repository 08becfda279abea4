// typed_field_test.go — typed access to payload fields.
package checked

import (
	"strings"
	"testing"
)

func TestField_Constructor(t *testing.T) {
	t.Parallel()

	if FieldOf[int]("i").Key() != "i" || FieldOf[string]("s").Key() != "s" {
		t.Fatalf("Key() mismatch")
	}
}

func TestTypedField_KVAndGet(t *testing.T) {
	t.Parallel()

	fPath := FieldOf[string]("path")
	fSize := FieldOf[int64]("size")

	kv := append(fPath.KV("/etc/app.toml"), fSize.KV(4096)...)
	p := ToStd(New("too big", kv...)).(Payload)

	if v, ok := fPath.Get(p); !ok || v != "/etc/app.toml" {
		t.Fatalf("path = %q, %v", v, ok)
	}
	if v, ok := fSize.Get(p); !ok || v != 4096 {
		t.Fatalf("size = %d, %v", v, ok)
	}
}

func TestTypedField_TypeMismatch(t *testing.T) {
	t.Parallel()

	p := ToStd(New("x", "n", 7)).(Payload)

	if _, ok := FieldOf[int64]("n").Get(p); ok {
		t.Fatalf("int stored, int64 requested: must not convert")
	}
	if _, ok := FieldOf[int]("missing").Get(p); ok {
		t.Fatalf("missing key reported present")
	}
	if _, ok := FieldOf[int]("n").Get(&diskError{}); ok {
		t.Fatalf("payload without fields reported a value")
	}
}

func TestTypedField_SetIsCopyOnWrite(t *testing.T) {
	t.Parallel()

	fAttempt := FieldOf[int]("attempt")
	base := ToStd(New("retry")).(*StringError)
	withAttempt := fAttempt.Set(base, 3)

	if v := fAttempt.MustGet(withAttempt); v != 3 {
		t.Fatalf("attempt = %d", v)
	}
	if _, ok := fAttempt.Get(base); ok {
		t.Fatalf("Set mutated the original")
	}
}

func TestTypedField_MustGetIsFatal(t *testing.T) {
	report := expectFatal(t, func() {
		FieldOf[string]("absent").MustGet(&diskError{})
	})
	if !strings.Contains(report, `"absent"`) {
		t.Fatalf("report = %q", report)
	}
}

func TestTypedField_MustGetReturnsZeroWhenHandlerReturns(t *testing.T) {
	var reports int
	prev := SetFatalHandler(func(string) { reports++ })
	defer SetFatalHandler(prev)

	if got := FieldOf[int]("absent").MustGet(&diskError{}); got != 0 {
		t.Fatalf("MustGet = %d, want zero", got)
	}
	if reports != 1 {
		t.Fatalf("fatal reports = %d, want 1", reports)
	}
}
