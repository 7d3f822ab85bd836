// internal/record/record.go
//
// Loosely-typed record helpers.
//
// Context
// -------
// Presenters hand the pipeline plain associative data — objx.Map records,
// or sequences of them — and the assemblers must not care which concrete
// Go shape a caller used.  These helpers normalize the three shapes that
// occur in practice (objx.Map, map[string]any, []any of either) and give
// the assemblers copy-on-write semantics so shaping never mutates caller
// data.
package record

import "github.com/stretchr/objx"

// AsMap normalizes a single record.  Returns (nil, false) for non-map
// values.
func AsMap(v any) (objx.Map, bool) {
	switch m := v.(type) {
	case objx.Map:
		return m, true
	case map[string]any:
		return objx.Map(m), true
	default:
		return nil, false
	}
}

// AsList normalizes a sequence of records.  Returns (nil, false) when v is
// not a sequence; sequence elements that are not maps are skipped.
func AsList(v any) ([]objx.Map, bool) {
	switch s := v.(type) {
	case []objx.Map:
		return s, true
	case []map[string]any:
		out := make([]objx.Map, 0, len(s))
		for _, m := range s {
			out = append(out, objx.Map(m))
		}
		return out, true
	case []any:
		out := make([]objx.Map, 0, len(s))
		for _, e := range s {
			if m, ok := AsMap(e); ok {
				out = append(out, m)
			}
		}
		return out, true
	default:
		return nil, false
	}
}

// Clone returns a shallow copy; shaping layers add keys to the copy so the
// presenter's map survives a render untouched.
func Clone(m objx.Map) objx.Map {
	out := make(objx.Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge overlays b onto a copy of a; b wins on collision.
func Merge(a, b objx.Map) objx.Map {
	out := make(objx.Map, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
