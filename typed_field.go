// typed_field.go — type-safe access to payload fields.
//
// TypedField layers static types over the key/value fields a payload exposes
// through Context() map[string]any (StringError does). The stored dynamic
// type must match T exactly; no conversions are attempted.
//
//	var FPath = checked.FieldOf[string]("path")
//	err := checked.New("cannot open", FPath.KV("/etc/app.toml")...)
package checked

// TypedField names a field of type T.
type TypedField[T any] struct {
	key string
}

// FieldOf declares a TypedField[T] for key.
func FieldOf[T any](key string) TypedField[T] {
	return TypedField[T]{key: key}
}

// Key returns the field's key.
func (f TypedField[T]) Key() string { return f.key }

// KV returns the key/value pair for constructors taking kv ...any.
func (f TypedField[T]) KV(val T) []any { return []any{f.key, val} }

// Set returns a copy of e carrying the field.
func (f TypedField[T]) Set(e *StringError, val T) *StringError {
	return e.With(f.key, val)
}

// Get reads the field from p. It returns (zero, false) when p carries no
// fields, lacks the key, or stores a different type.
func (f TypedField[T]) Get(p Payload) (T, bool) {
	var zero T
	c, ok := p.(contextual)
	if !ok {
		return zero, false
	}
	v, ok := c.Context()[f.key]
	if !ok {
		return zero, false
	}
	tv, ok := v.(T)
	if !ok {
		return zero, false
	}
	return tv, true
}

// MustGet is Get for code that treats a missing field as a bug. A miss goes
// through the fatal path; if the fatal handler returns, MustGet returns zero.
func (f TypedField[T]) MustGet(p Payload) T {
	v, ok := f.Get(p)
	if !ok {
		var zero T
		fatalf(p, "TypedField[%T](%q).MustGet: field missing or of another type on %T", zero, f.key, p)
		return zero
	}
	return v
}
