package godecode

import "github.com/reoring/godecode/schemable"

// Schemable interprets schemable schemas as decoders over untyped input.
// Nullable yields nil for null instead of a typed pointer, and Partial omits
// absent properties.
var Schemable schemable.Schemable[Decoder[any, any]] = decoderSchemable{}

// Interpret builds the decoder described by schema.
func Interpret(schema schemable.Schema[Decoder[any, any]]) Decoder[any, any] {
	return schema(Schemable)
}

type decoderSchemable struct{}

func (decoderSchemable) Literal(values ...schemable.Literal) Decoder[any, any] {
	return Literal(values...)
}

func (decoderSchemable) String() Decoder[any, any]  { return Widen(String()) }
func (decoderSchemable) Number() Decoder[any, any]  { return Widen(Number()) }
func (decoderSchemable) Boolean() Decoder[any, any] { return Widen(Boolean()) }

func (decoderSchemable) Nullable(or Decoder[any, any]) Decoder[any, any] {
	return nullable(or)
}

func (decoderSchemable) Type(properties ...Property) Decoder[any, any] {
	return Widen(Type(properties...))
}

func (decoderSchemable) Partial(properties ...Property) Decoder[any, any] {
	return Widen(Partial(properties...))
}

func (decoderSchemable) Record(codomain Decoder[any, any]) Decoder[any, any] {
	return Widen(Record(codomain))
}

func (decoderSchemable) Array(item Decoder[any, any]) Decoder[any, any] {
	return Widen(Array(item))
}

func (decoderSchemable) Tuple(components ...Decoder[any, any]) Decoder[any, any] {
	return Widen(Tuple(components...))
}

func (decoderSchemable) Intersect(left, right Decoder[any, any]) Decoder[any, any] {
	return Intersect(left, right)
}

func (decoderSchemable) Sum(tag string, members ...schemable.Entry[Decoder[any, any]]) Decoder[any, any] {
	return Sum(tag, members...)
}

func (decoderSchemable) Lazy(id string, f func() Decoder[any, any]) Decoder[any, any] {
	return Lazy(id, f)
}
