package godecode

import (
	de "github.com/reoring/godecode/decodeerror"
	"github.com/reoring/godecode/result"
)

// Errors is the non-empty, ordered set of decode errors a failed decode
// produces.
type Errors = de.Errors

// Decoded is the outcome of a decode: a value of type A or Errors.
type Decoded[A any] = result.Result[Errors, A]

// Decoder turns an input of type I into a value of type A, or reports every
// reason it could not. Decoders are pure and safe for concurrent use.
type Decoder[I, A any] interface {
	Decode(i I) Decoded[A]
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc[I, A any] func(i I) Decoded[A]

// Decode calls f(i).
func (f DecoderFunc[I, A]) Decode(i I) Decoded[A] { return f(i) }

// Success returns a successful decode of a.
func Success[A any](a A) Decoded[A] { return result.Success[Errors](a) }

// Failure returns a failed decode holding a single Leaf error.
func Failure[A any](actual any, expected string) Decoded[A] {
	return result.Failure[Errors, A](LeafError(actual, expected))
}

// LeafError returns the set holding a single Leaf error.
func LeafError(actual any, expected string) Errors {
	return de.Of(de.NewLeaf(actual, expected))
}

// FromRefinement builds a decoder from a narrowing function: it succeeds with
// the narrowed value when ok, and fails with Leaf(input, expected) otherwise.
func FromRefinement[I, A any](refine func(I) (A, bool), expected string) Decoder[I, A] {
	return DecoderFunc[I, A](func(i I) Decoded[A] {
		if a, ok := refine(i); ok {
			return Success(a)
		}
		return Failure[A](i, expected)
	})
}

// FromPredicate succeeds with the input unchanged when test holds.
func FromPredicate[I any](test func(I) bool, expected string) Decoder[I, I] {
	return DecoderFunc[I, I](func(i I) Decoded[I] {
		if test(i) {
			return Success(i)
		}
		return Failure[I](i, expected)
	})
}

// Guard is satisfied by the guard package's type guards.
type Guard interface {
	Is(i any) bool
}

// FromGuard lifts a type guard into a decoder.
func FromGuard(g Guard, expected string) Decoder[any, any] {
	return FromPredicate(g.Is, expected)
}
