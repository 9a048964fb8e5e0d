package godecode

import (
	de "github.com/reoring/godecode/decodeerror"
	"github.com/reoring/godecode/ordered"
	"github.com/reoring/godecode/result"
	"github.com/reoring/godecode/schemable"
	"github.com/reoring/godecode/traverse"
	"github.com/reoring/godecode/value"
)

// Object is the decoded form of Type and Partial, and the shape of objects
// produced by the source loaders.
type Object = *ordered.Map[any]

// Property is a named property decoder, as taken by Type and Partial.
type Property = schemable.Entry[Decoder[any, any]]

// Field returns the Property key decoded by d.
func Field[A any](key string, d Decoder[any, A]) Property {
	return schemable.Prop(key, Widen(d))
}

// Type decodes an object with the given properties. Every property is decoded,
// and every failure is reported under Key(key, required). On success the
// result holds every declared property in declaration order, including those
// decoded to Undefined; input keys that are not declared are dropped.
func Type(properties ...Property) Decoder[any, *ordered.Map[any]] {
	props := propertyMap(properties)
	return DecoderFunc[any, *ordered.Map[any]](func(i any) Decoded[*ordered.Map[any]] {
		return result.Chain(unknownRecordDecoder.Decode(i), func(r *ordered.Map[any]) Decoded[*ordered.Map[any]] {
			return decodeProperties(r, props, func(d Decoder[any, any]) Decoder[any, any] { return d })
		})
	})
}

// Partial is Type where every property may be absent: an Undefined property
// is accepted and omitted, while a present one must satisfy its decoder.
func Partial(properties ...Property) Decoder[any, *ordered.Map[any]] {
	props := propertyMap(properties)
	return DecoderFunc[any, *ordered.Map[any]](func(i any) Decoded[*ordered.Map[any]] {
		return result.Chain(unknownRecordDecoder.Decode(i), func(r *ordered.Map[any]) Decoded[*ordered.Map[any]] {
			return result.Map(decodeProperties(r, props, undefinable), dropUndefined)
		})
	})
}

func propertyMap(properties []Property) *ordered.Map[Decoder[any, any]] {
	m := ordered.NewMap[Decoder[any, any]](len(properties))
	for _, p := range properties {
		m.Set(p.Key, p.Schema)
	}
	return m
}

func decodeProperties(
	r *ordered.Map[any],
	props *ordered.Map[Decoder[any, any]],
	wrap func(Decoder[any, any]) Decoder[any, any],
) Decoded[*ordered.Map[any]] {
	return traverse.Map(props, func(key string, d Decoder[any, any]) Decoded[any] {
		return result.MapLeft(wrap(d).Decode(value.Lookup(r, key)), func(errs Errors) Errors {
			return de.Of(de.NewKey(key, de.Required, errs))
		})
	})
}

func dropUndefined(m *ordered.Map[any]) *ordered.Map[any] {
	found := false
	for _, v := range m.All() {
		if value.IsUndefined(v) {
			found = true
			break
		}
	}
	if !found {
		return m
	}
	out := ordered.NewMap[any](m.Len())
	for k, v := range m.All() {
		if !value.IsUndefined(v) {
			out.Set(k, v)
		}
	}
	return out
}

// Record decodes every value of an object with codomain, in the input's key
// order. Failures are reported under Key(key, required).
func Record[A any](codomain Decoder[any, A]) Decoder[any, *ordered.Map[A]] {
	return DecoderFunc[any, *ordered.Map[A]](func(i any) Decoded[*ordered.Map[A]] {
		return result.Chain(unknownRecordDecoder.Decode(i), func(r *ordered.Map[any]) Decoded[*ordered.Map[A]] {
			return traverse.Map(r, func(key string, v any) Decoded[A] {
				return result.MapLeft(codomain.Decode(v), func(errs Errors) Errors {
					return de.Of(de.NewKey(key, de.Required, errs))
				})
			})
		})
	})
}
