package godecode

import (
	"sync"

	de "github.com/reoring/godecode/decodeerror"
	"github.com/reoring/godecode/result"
)

// Lazy defers building a decoder until its first use, which makes
// self-referential schemas possible:
//
//	var node godecode.Decoder[any, *ordered.Map[any]]
//	node = godecode.Lazy("Node", func() godecode.Decoder[any, *ordered.Map[any]] {
//		return godecode.Type(
//			godecode.Field("value", godecode.Number()),
//			godecode.Field("next", godecode.Nullable(node)),
//		)
//	})
//
// f runs at most once per Lazy call, even under concurrent first use, and
// every decode reuses its result. Failures are reported under Lazy(id).
func Lazy[I, A any](id string, f func() Decoder[I, A]) Decoder[I, A] {
	get := sync.OnceValue(f)
	return DecoderFunc[I, A](func(i I) Decoded[A] {
		return result.MapLeft(get().Decode(i), func(errs Errors) Errors {
			return de.Of(de.NewLazy(id, errs))
		})
	})
}
