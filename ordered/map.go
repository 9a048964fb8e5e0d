// Package ordered provides an insertion-ordered, string-keyed map.
//
// Map is the runtime shape godecode uses for objects: decoders enumerate keys
// in insertion order, which keeps error ordering and rendered output
// reproducible.
package ordered

import (
	"bytes"
	"iter"

	json "github.com/goccy/go-json"
)

// Map is a string-keyed map that remembers insertion order. The zero value is
// an empty map ready to use. A Map is not safe for concurrent mutation.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// NewMap returns an empty map with room for n entries.
func NewMap[V any](n int) *Map[V] {
	return &Map[V]{keys: make([]string, 0, n), values: make(map[string]V, n)}
}

// FromPairs builds a map from pairs, keeping their order.
func FromPairs[V any](pairs ...Pair[V]) *Map[V] {
	m := NewMap[V](len(pairs))
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Pair is a single entry.
type Pair[V any] struct {
	Key   string
	Value V
}

// Set stores v under key. Overwriting keeps the key's original position.
func (m *Map[V]) Set(key string, v V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// GetAny is Get with the value boxed, letting callers read any Map[V]
// without knowing V.
func (m *Map[V]) GetAny(key string) (any, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	return v, true
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice must not be
// modified.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// All iterates entries in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range m.Keys() {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy.
func (m *Map[V]) Clone() *Map[V] {
	out := NewMap[V](m.Len())
	for k, v := range m.All() {
		out.Set(k, v)
	}
	return out
}

// MarshalJSON renders the entries as a JSON object in insertion order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := encodeTo(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := encodeTo(&buf, m.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func encodeTo(buf *bytes.Buffer, v any) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
