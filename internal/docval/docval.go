// Package docval holds the generic transforms applied to raw JSON-like
// documents (map[string]any / []any trees) on their way in and out of
// Firestore: dropping absent fields before writes, and converting
// date/time values between their wire form (RFC 3339 strings) and the
// native time.Time the Firestore client stores as a timestamp.
//
// All transforms are total on well-formed JSON-like input and never
// mutate their argument; they return a new structure.
package docval

import "time"

// Strip returns a copy of v with every map entry whose value is nil
// removed, at any nesting depth, including maps inside arrays. Falsy
// but present values (0, false, "") are kept. Arrays keep nil elements:
// removing them would shift positions the caller may rely on.
func Strip(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			if e == nil {
				continue
			}
			out[k] = Strip(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			if e == nil {
				out[i] = nil
				continue
			}
			out[i] = Strip(e)
		}
		return out
	default:
		return v
	}
}

// ParseTimes returns a copy of v with every string value that parses as
// an RFC 3339 timestamp replaced by the equivalent time.Time, at any
// nesting depth including inside array elements. Everything else passes
// through unchanged. Writing the result to Firestore stores those
// values as native timestamps.
func ParseTimes(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = ParseTimes(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = ParseTimes(e)
		}
		return out
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return ts
		}
		return t
	default:
		return v
	}
}

// FormatTimes is the inverse of ParseTimes: every time.Time value, at
// any nesting depth, becomes an RFC 3339 (nanosecond) string. Documents
// read back from Firestore carry timestamps as time.Time, so this is
// the step that makes a raw snapshot JSON-encodable in a stable form.
func FormatTimes(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = FormatTimes(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = FormatTimes(e)
		}
		return out
	case time.Time:
		return t.Format(time.RFC3339Nano)
	default:
		return v
	}
}
