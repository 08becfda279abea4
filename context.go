// context.go — structured key/value fields carried by payloads.
//
// Fields keep insertion order (a slice, not a map) so renderings are
// deterministic. Builders never append into a slice another payload may share.
package checked

// Field is one key/value pair attached to a payload.
type Field struct {
	Key string
	Val any
}

type fields []Field

// withFields returns a new slice holding dst followed by add.
func withFields(dst fields, add ...Field) fields {
	if len(add) == 0 {
		return dst
	}
	out := make(fields, len(dst), len(dst)+len(add))
	copy(out, dst)
	return append(out, add...)
}

// fieldsFromKV reads alternating key/value arguments. A non-string key drops
// its whole pair so later pairs stay aligned; a trailing key gets a nil value.
func fieldsFromKV(kv ...any) fields {
	if len(kv) == 0 {
		return nil
	}
	out := make(fields, 0, len(kv)/2+1)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			continue
		}
		var v any
		if i+1 < len(kv) {
			v = kv[i+1]
		}
		out = append(out, Field{Key: k, Val: v})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// toMap builds a fresh map; later duplicate keys win.
func (fs fields) toMap() map[string]any {
	if len(fs) == 0 {
		return nil
	}
	m := make(map[string]any, len(fs))
	for _, f := range fs {
		m[f.Key] = f.Val
	}
	return m
}
