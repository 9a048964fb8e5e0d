package godecode

import (
	"strings"

	de "github.com/reoring/godecode/decodeerror"
	"github.com/reoring/godecode/ordered"
	"github.com/reoring/godecode/result"
	"github.com/reoring/godecode/schemable"
	"github.com/reoring/godecode/value"
)

// Union tries its members in order and succeeds with the first that accepts
// the input. When every member rejects it, the failures of all members are
// reported, each under Member(n), in member order.
func Union[I, A any](first Decoder[I, A], rest ...Decoder[I, A]) Decoder[I, A] {
	members := append([]Decoder[I, A]{first}, rest...)
	return DecoderFunc[I, A](func(i I) Decoded[A] {
		var errs Errors
		for n, m := range members {
			a, e, ok := m.Decode(i).Unwrap()
			if ok {
				return Success(a)
			}
			errs = de.Concat(errs, de.Of(de.NewMember(n, e)))
		}
		return result.Failure[Errors, A](errs)
	})
}

// Intersect decodes the input with both left and right. Failures of both
// sides are reported together. When both succeed and both values are objects
// they are shallow-merged with right's keys winning; otherwise right's value
// is the result.
func Intersect[I, A, B any](left Decoder[I, A], right Decoder[I, B]) Decoder[I, any] {
	return DecoderFunc[I, any](func(i I) Decoded[any] {
		a, lerrs, lok := left.Decode(i).Unwrap()
		b, rerrs, rok := right.Decode(i).Unwrap()
		switch {
		case !lok && !rok:
			return result.Failure[Errors, any](de.Concat(lerrs, rerrs))
		case !lok:
			return result.Failure[Errors, any](lerrs)
		case !rok:
			return result.Failure[Errors, any](rerrs)
		}
		return Success(value.Merge(a, b))
	})
}

// Variant names a member of a Sum.
func Variant[A any](name string, d Decoder[any, A]) schemable.Entry[Decoder[any, A]] {
	return schemable.Prop(name, d)
}

// Sum decodes a tagged union. The input must be an object whose tag property
// is a string naming one of members; the whole input is then decoded by that
// member, which is expected to check the tag itself. Otherwise the decode
// fails with Key(tag, required) over a Leaf listing the member names.
func Sum[A any](tag string, members ...schemable.Entry[Decoder[any, A]]) Decoder[any, A] {
	byName := ordered.NewMap[Decoder[any, A]](len(members))
	for _, m := range members {
		byName.Set(m.Key, m.Schema)
	}
	expected := "never"
	if byName.Len() > 0 {
		names := make([]string, 0, byName.Len())
		for _, k := range byName.Keys() {
			names = append(names, value.JSON(k))
		}
		expected = strings.Join(names, " | ")
	}
	return DecoderFunc[any, A](func(i any) Decoded[A] {
		return result.Chain(unknownRecordDecoder.Decode(i), func(r *ordered.Map[any]) Decoded[A] {
			v := value.Lookup(r, tag)
			if name, ok := v.(string); ok {
				if m, ok := byName.Get(name); ok {
					return m.Decode(i)
				}
			}
			return result.Failure[Errors, A](de.Of(de.NewKey(tag, de.Required, LeafError(v, expected))))
		})
	})
}
