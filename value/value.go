// Package value describes the runtime shape of untyped input.
//
// Untyped input is what a JSON, YAML or TOML loader produces: nil (null),
// string, a number kind, bool, []any and objects. Objects are either
// *ordered.Map[any], enumerated in insertion order, or map[string]any,
// enumerated in sorted key order because Go maps carry no order. Undefined
// marks a value that is absent, such as a missing property.
package value

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/reoring/godecode/ordered"
)

type undefined struct{}

func (undefined) String() string { return "undefined" }

// MarshalJSON renders an undefined nested inside a structure as null.
func (undefined) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Undefined is the value read from a missing property or index.
var Undefined any = undefined{}

// IsUndefined reports whether v is Undefined.
func IsUndefined(v any) bool {
	_, ok := v.(undefined)
	return ok
}

// IsNull reports whether v is null.
func IsNull(v any) bool { return v == nil }

// String reports whether v is a string.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Boolean reports whether v is a bool.
func Boolean(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// Number reports whether v is a number and returns it as float64. Strings are
// never numbers, including json.Number values that fail to parse.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// Array reports whether v is an array.
func Array(v any) ([]any, bool) {
	a, ok := v.([]any)
	return a, ok
}

// Record reports whether v is an object and returns an ordered view of it.
// An *ordered.Map is returned as is; a map[string]any is copied with its keys
// sorted.
func Record(v any) (*ordered.Map[any], bool) {
	switch m := v.(type) {
	case *ordered.Map[any]:
		if m == nil {
			return nil, false
		}
		return m, true
	case map[string]any:
		if m == nil {
			return nil, false
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := ordered.NewMap[any](len(keys))
		for _, k := range keys {
			out.Set(k, m[k])
		}
		return out, true
	default:
		return nil, false
	}
}

// IsRecord reports whether v is an object.
func IsRecord(v any) bool {
	switch m := v.(type) {
	case *ordered.Map[any]:
		return m != nil
	case map[string]any:
		return m != nil
	default:
		return false
	}
}

// Lookup returns the property key of the object r, or Undefined.
func Lookup(r *ordered.Map[any], key string) any {
	if v, ok := r.Get(key); ok {
		return v
	}
	return Undefined
}

// At returns the element i of a, or Undefined when i is out of range.
func At(a []any, i int) any {
	if i < 0 || i >= len(a) {
		return Undefined
	}
	return a[i]
}

// StrictEqual compares two primitive values the way a literal match does:
// numbers compare numerically regardless of their Go kind, everything else
// must have the same dynamic type and value. Non-comparable values are never
// equal.
func StrictEqual(a, b any) bool {
	if fa, ok := Number(a); ok {
		fb, ok := Number(b)
		return ok && fa == fb && !math.IsNaN(fa)
	}
	if _, ok := Number(b); ok {
		return false
	}
	switch a.(type) {
	case nil, string, bool, undefined:
		return a == b
	default:
		return false
	}
}

// Merge shallow-merges two decoded values. When both are objects the result
// holds the keys of left followed by new keys of right, right winning on
// conflict. In every other case right wins outright.
func Merge(left, right any) any {
	l, lok := composite(left)
	r, rok := composite(right)
	if !lok || !rok {
		return right
	}
	out := l.Clone()
	for k, v := range r.All() {
		out.Set(k, v)
	}
	return out
}

// keyed is satisfied by every *ordered.Map instantiation.
type keyed interface {
	Keys() []string
	GetAny(key string) (any, bool)
}

func composite(v any) (*ordered.Map[any], bool) {
	if r, ok := Record(v); ok {
		return r, true
	}
	k, ok := v.(keyed)
	if !ok || k == nil {
		return nil, false
	}
	out := ordered.NewMap[any](len(k.Keys()))
	for _, key := range k.Keys() {
		v, _ := k.GetAny(key)
		out.Set(key, v)
	}
	return out, true
}
