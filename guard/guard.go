// Package guard interprets schemable schemas as runtime type guards.
//
// A guard answers whether a value has a shape without building a decoded
// value or collecting errors, which makes it the cheap choice for filtering
// and assertions. Guards accept exactly the inputs the decoder interpreter
// accepts.
package guard

import (
	"sync"

	"github.com/reoring/godecode/ordered"
	"github.com/reoring/godecode/schemable"
	"github.com/reoring/godecode/value"
)

// Guard reports whether a value has the guarded shape.
type Guard interface {
	Is(i any) bool
}

// Func adapts a function to the Guard interface.
type Func func(i any) bool

// Is calls f(i).
func (f Func) Is(i any) bool { return f(i) }

var (
	String        Guard = Func(func(i any) bool { _, ok := value.String(i); return ok })
	Number        Guard = Func(func(i any) bool { _, ok := value.Number(i); return ok })
	Boolean       Guard = Func(func(i any) bool { _, ok := value.Boolean(i); return ok })
	UnknownArray  Guard = Func(func(i any) bool { _, ok := value.Array(i); return ok })
	UnknownRecord Guard = Func(value.IsRecord)
)

// Literal accepts values strictly equal to one of values.
func Literal(values ...any) Guard {
	return Func(func(i any) bool {
		for _, v := range values {
			if value.StrictEqual(i, v) {
				return true
			}
		}
		return false
	})
}

// Nullable accepts null or anything or accepts.
func Nullable(or Guard) Guard {
	return Func(func(i any) bool { return i == nil || or.Is(i) })
}

// Undefinable accepts Undefined or anything or accepts.
func Undefinable(or Guard) Guard {
	return Func(func(i any) bool { return value.IsUndefined(i) || or.Is(i) })
}

// Type accepts objects whose declared properties all satisfy their guards.
func Type(properties ...schemable.Entry[Guard]) Guard {
	return Func(func(i any) bool {
		r, ok := value.Record(i)
		return ok && every(r, properties, func(g Guard) Guard { return g })
	})
}

// Partial is Type where every property may be absent.
func Partial(properties ...schemable.Entry[Guard]) Guard {
	return Func(func(i any) bool {
		r, ok := value.Record(i)
		return ok && every(r, properties, Undefinable)
	})
}

func every(r *ordered.Map[any], properties []schemable.Entry[Guard], wrap func(Guard) Guard) bool {
	for _, p := range properties {
		if !wrap(p.Schema).Is(value.Lookup(r, p.Key)) {
			return false
		}
	}
	return true
}

// Record accepts objects whose values all satisfy codomain.
func Record(codomain Guard) Guard {
	return Func(func(i any) bool {
		r, ok := value.Record(i)
		if !ok {
			return false
		}
		for _, v := range r.All() {
			if !codomain.Is(v) {
				return false
			}
		}
		return true
	})
}

// Array accepts arrays whose elements all satisfy item.
func Array(item Guard) Guard {
	return Func(func(i any) bool {
		as, ok := value.Array(i)
		if !ok {
			return false
		}
		for _, a := range as {
			if !item.Is(a) {
				return false
			}
		}
		return true
	})
}

// Tuple accepts arrays whose element n satisfies components[n]. Extra
// elements are ignored.
func Tuple(components ...Guard) Guard {
	return Func(func(i any) bool {
		as, ok := value.Array(i)
		if !ok {
			return false
		}
		for n, c := range components {
			if !c.Is(value.At(as, n)) {
				return false
			}
		}
		return true
	})
}

// Intersect accepts values satisfying both guards.
func Intersect(left, right Guard) Guard {
	return Func(func(i any) bool { return left.Is(i) && right.Is(i) })
}

// Union accepts values satisfying any of the guards.
func Union(members ...Guard) Guard {
	return Func(func(i any) bool {
		for _, m := range members {
			if m.Is(i) {
				return true
			}
		}
		return false
	})
}

// Sum accepts objects whose tag names a member that accepts the whole object.
func Sum(tag string, members ...schemable.Entry[Guard]) Guard {
	byName := make(map[string]Guard, len(members))
	for _, m := range members {
		byName[m.Key] = m.Schema
	}
	return Func(func(i any) bool {
		r, ok := value.Record(i)
		if !ok {
			return false
		}
		name, ok := value.Lookup(r, tag).(string)
		if !ok {
			return false
		}
		g, ok := byName[name]
		return ok && g.Is(i)
	})
}

// Lazy defers building the guard until first use; f runs at most once.
func Lazy(f func() Guard) Guard {
	get := sync.OnceValue(f)
	return Func(func(i any) bool { return get().Is(i) })
}

// Schemable interprets schemable schemas as guards.
var Schemable schemable.Schemable[Guard] = guardSchemable{}

// Interpret builds the guard described by schema.
func Interpret(schema schemable.Schema[Guard]) Guard {
	return schema(Schemable)
}

type guardSchemable struct{}

func (guardSchemable) Literal(values ...schemable.Literal) Guard { return Literal(values...) }
func (guardSchemable) String() Guard                             { return String }
func (guardSchemable) Number() Guard                             { return Number }
func (guardSchemable) Boolean() Guard                            { return Boolean }
func (guardSchemable) Nullable(or Guard) Guard                   { return Nullable(or) }
func (guardSchemable) Record(codomain Guard) Guard               { return Record(codomain) }
func (guardSchemable) Array(item Guard) Guard                    { return Array(item) }
func (guardSchemable) Tuple(components ...Guard) Guard           { return Tuple(components...) }
func (guardSchemable) Intersect(left, right Guard) Guard         { return Intersect(left, right) }

func (guardSchemable) Type(properties ...schemable.Entry[Guard]) Guard {
	return Type(properties...)
}

func (guardSchemable) Partial(properties ...schemable.Entry[Guard]) Guard {
	return Partial(properties...)
}

func (guardSchemable) Sum(tag string, members ...schemable.Entry[Guard]) Guard {
	return Sum(tag, members...)
}

func (guardSchemable) Lazy(_ string, f func() Guard) Guard { return Lazy(f) }
