package godecode

import (
	de "github.com/reoring/godecode/decodeerror"
	"github.com/reoring/godecode/result"
	"github.com/reoring/godecode/value"
)

// Nullable accepts null, yielding a nil pointer, or anything or accepts. When
// or rejects the input the errors gain a leading Member(0) alternative
// recording that null would also have been accepted.
func Nullable[I, A any](or Decoder[I, A]) Decoder[I, *A] {
	return DecoderFunc[I, *A](func(i I) Decoded[*A] {
		if any(i) == nil {
			return Success[*A](nil)
		}
		a, errs, ok := or.Decode(i).Unwrap()
		if !ok {
			return result.Failure[Errors, *A](nullAlternative(i, errs))
		}
		return Success(&a)
	})
}

// Undefinable accepts Undefined, yielding a nil pointer, or anything or
// accepts. When or rejects the input an "undefined" Leaf is appended.
func Undefinable[I, A any](or Decoder[I, A]) Decoder[I, *A] {
	return DecoderFunc[I, *A](func(i I) Decoded[*A] {
		if value.IsUndefined(i) {
			return Success[*A](nil)
		}
		a, errs, ok := or.Decode(i).Unwrap()
		if !ok {
			return result.Failure[Errors, *A](undefinedAlternative(i, errs))
		}
		return Success(&a)
	})
}

// nullable and undefinable are the untyped forms used by the schema
// interpreter and Partial, where null and Undefined pass through as values.

func nullable(or Decoder[any, any]) Decoder[any, any] {
	return DecoderFunc[any, any](func(i any) Decoded[any] {
		if i == nil {
			return Success[any](nil)
		}
		return result.MapLeft(or.Decode(i), func(errs Errors) Errors {
			return nullAlternative(i, errs)
		})
	})
}

func undefinable(or Decoder[any, any]) Decoder[any, any] {
	return DecoderFunc[any, any](func(i any) Decoded[any] {
		if value.IsUndefined(i) {
			return Success(i)
		}
		return result.MapLeft(or.Decode(i), func(errs Errors) Errors {
			return undefinedAlternative(i, errs)
		})
	})
}

func nullAlternative(i any, errs Errors) Errors {
	return de.Concat(de.Of(de.NewMember(0, LeafError(i, "null"))), errs)
}

func undefinedAlternative(i any, errs Errors) Errors {
	return de.Concat(errs, LeafError(i, "undefined"))
}

// Refine post-checks a successful decode. When pred rejects the decoded value
// the decode fails with Leaf(input, id), reporting the raw input rather than
// the intermediate value.
func Refine[I, A any](from Decoder[I, A], pred func(A) bool, id string) Decoder[I, A] {
	return DecoderFunc[I, A](func(i I) Decoded[A] {
		return result.Chain(from.Decode(i), func(a A) Decoded[A] {
			if pred(a) {
				return Success(a)
			}
			return Failure[A](i, id)
		})
	})
}

// MapLeftWithInput replaces the errors of d with f(input, errors).
func MapLeftWithInput[I, A any](d Decoder[I, A], f func(i I, errs Errors) Errors) Decoder[I, A] {
	return DecoderFunc[I, A](func(i I) Decoded[A] {
		return result.MapLeft(d.Decode(i), func(errs Errors) Errors {
			return f(i, errs)
		})
	})
}

// WithMessage wraps the errors of d under a message computed from the input
// and the original errors, which stay available as the wrapped cause.
func WithMessage[I, A any](d Decoder[I, A], message func(i I, errs Errors) string) Decoder[I, A] {
	return MapLeftWithInput(d, func(i I, errs Errors) Errors {
		return de.Of(de.NewWrap(message(i, errs), errs))
	})
}

// Map transforms the value of a successful decode.
func Map[I, A, B any](d Decoder[I, A], f func(A) B) Decoder[I, B] {
	return DecoderFunc[I, B](func(i I) Decoded[B] {
		return result.Map(d.Decode(i), f)
	})
}

// Widen forgets the static result type of d.
func Widen[I, A any](d Decoder[I, A]) Decoder[I, any] {
	if w, ok := any(d).(Decoder[I, any]); ok {
		return w
	}
	return Map(d, func(a A) any { return a })
}
