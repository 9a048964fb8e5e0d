package godecode

import (
	"strings"

	"github.com/reoring/godecode/ordered"
	"github.com/reoring/godecode/value"
)

var (
	stringDecoder        = FromRefinement(value.String, "string")
	numberDecoder        = FromRefinement(value.Number, "number")
	booleanDecoder       = FromRefinement(value.Boolean, "boolean")
	unknownArrayDecoder  = FromRefinement(value.Array, "unknownArray")
	unknownRecordDecoder = FromRefinement(value.Record, "unknownRecord")
)

// String accepts strings.
func String() Decoder[any, string] { return stringDecoder }

// Number accepts any Go number kind and json.Number, yielding float64.
func Number() Decoder[any, float64] { return numberDecoder }

// Boolean accepts bools.
func Boolean() Decoder[any, bool] { return booleanDecoder }

// UnknownArray accepts []any without looking at the elements.
func UnknownArray() Decoder[any, []any] { return unknownArrayDecoder }

// UnknownRecord accepts objects without looking at the values. The result
// enumerates keys in the input's order.
func UnknownRecord() Decoder[any, *ordered.Map[any]] { return unknownRecordDecoder }

// Literal accepts inputs strictly equal to one of values, which may be
// strings, numbers, bools or nil. The expected description lists the
// literals as JSON joined by " | ".
func Literal(values ...any) Decoder[any, any] {
	expected := literalLabel(values)
	return DecoderFunc[any, any](func(i any) Decoded[any] {
		for _, v := range values {
			if value.StrictEqual(i, v) {
				return Success(i)
			}
		}
		return Failure[any](i, expected)
	})
}

// LiteralOf is Literal for a single Go type, yielding the matched literal.
func LiteralOf[A comparable](values ...A) Decoder[any, A] {
	boxed := make([]any, len(values))
	for i, v := range values {
		boxed[i] = v
	}
	expected := literalLabel(boxed)
	return DecoderFunc[any, A](func(i any) Decoded[A] {
		for n, v := range boxed {
			if value.StrictEqual(i, v) {
				return Success(values[n])
			}
		}
		return Failure[A](i, expected)
	})
}

func literalLabel(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = value.JSON(v)
	}
	return strings.Join(parts, " | ")
}
