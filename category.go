package godecode

import "github.com/reoring/godecode/result"

// Compose feeds the output of ab into bc. Failures of either stage are
// returned unchanged.
func Compose[A, B, C any](ab Decoder[A, B], bc Decoder[B, C]) Decoder[A, C] {
	return DecoderFunc[A, C](func(a A) Decoded[C] {
		return result.Chain(ab.Decode(a), bc.Decode)
	})
}

// ID returns the decoder that always succeeds with its input.
func ID[A any]() Decoder[A, A] {
	return DecoderFunc[A, A](Success[A])
}
