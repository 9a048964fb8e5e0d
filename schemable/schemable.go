// Package schemable defines the closed set of schema-construction operations
// that every interpreter implements.
//
// A schema is written once against Schemable[S] and interpreted many times:
// with the decoder interpreter to obtain a decoder, with the guard interpreter
// to obtain a type guard, with the JSON Schema interpreter to obtain
// documentation.
//
//	func Person[S any](s schemable.Schemable[S]) S {
//		return s.Type(
//			schemable.Prop("name", s.String()),
//			schemable.Prop("age", s.Nullable(s.Number())),
//		)
//	}
package schemable

import "sync"

// Literal is the set of literal kinds: string, float64 (or any Go number
// kind), bool and nil.
type Literal = any

// Entry pairs a name with an interpreted schema. Type and Partial use entries
// for properties, Sum for its named members. Order is significant.
type Entry[S any] struct {
	Key    string
	Schema S
}

// Prop returns an Entry.
func Prop[S any](key string, s S) Entry[S] {
	return Entry[S]{Key: key, Schema: s}
}

// Schemable is implemented by every interpreter. S is the interpreter's
// representation of a schema.
type Schemable[S any] interface {
	Literal(values ...Literal) S
	String() S
	Number() S
	Boolean() S
	Nullable(or S) S
	Type(properties ...Entry[S]) S
	Partial(properties ...Entry[S]) S
	Record(codomain S) S
	Array(item S) S
	Tuple(components ...S) S
	Intersect(left, right S) S
	Sum(tag string, members ...Entry[S]) S
	Lazy(id string, f func() S) S
}

// Schema is an interpreter-agnostic schema definition.
type Schema[S any] func(Schemable[S]) S

// Memoize caches the interpretation of schema per interpreter, so that a
// schema referenced from several places is built once for each of them.
// Interpreters must be comparable.
func Memoize[S any](schema Schema[S]) Schema[S] {
	var mu sync.Mutex
	cache := make(map[Schemable[S]]S)
	return func(s Schemable[S]) S {
		mu.Lock()
		if out, ok := cache[s]; ok {
			mu.Unlock()
			return out
		}
		mu.Unlock()
		out := schema(s)
		mu.Lock()
		defer mu.Unlock()
		if prev, ok := cache[s]; ok {
			return prev
		}
		cache[s] = out
		return out
	}
}
