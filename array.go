package godecode

import (
	de "github.com/reoring/godecode/decodeerror"
	"github.com/reoring/godecode/result"
	"github.com/reoring/godecode/traverse"
	"github.com/reoring/godecode/value"
)

// Array decodes every element with item. Failures are reported under
// Index(i, optional); on success the decoded elements keep their order.
func Array[A any](item Decoder[any, A]) Decoder[any, []A] {
	return DecoderFunc[any, []A](func(i any) Decoded[[]A] {
		return result.Chain(unknownArrayDecoder.Decode(i), func(as []any) Decoded[[]A] {
			return traverse.Slice(as, func(n int, a any) Decoded[A] {
				return result.MapLeft(item.Decode(a), func(errs Errors) Errors {
					return de.Of(de.NewIndex(n, de.Optional, errs))
				})
			})
		})
	})
}

// Tuple decodes element n of an array with components[n]. Missing elements
// are Undefined and elements past the last component are ignored. Failures
// are reported under Index(n, required).
func Tuple(components ...Decoder[any, any]) Decoder[any, []any] {
	return DecoderFunc[any, []any](func(i any) Decoded[[]any] {
		return result.Chain(unknownArrayDecoder.Decode(i), func(as []any) Decoded[[]any] {
			return traverse.Slice(components, func(n int, d Decoder[any, any]) Decoded[any] {
				return result.MapLeft(d.Decode(value.At(as, n)), func(errs Errors) Errors {
					return de.Of(de.NewIndex(n, de.Required, errs))
				})
			})
		})
	})
}
