// Package godecode provides composable decoders for untyped input.
//
// A Decoder turns an input (usually the any produced by a JSON, YAML or TOML
// loader) into a typed value or a non-empty set of structural errors. Small
// decoders are combined into larger ones, and failures accumulate instead of
// stopping at the first mismatch:
//
//   - primitives: String, Number, Boolean, Literal, UnknownArray, UnknownRecord
//   - objects: Type, Partial, Record, Intersect, Sum
//   - sequences: Array, Tuple
//   - alternatives: Union, Nullable, Undefinable
//   - recursion: Lazy
//   - refinement: Refine, FromPredicate, FromGuard, WithMessage, Compose, Map
//
// Errors render as a tree with Draw, or flatten to JSON Pointer addressed
// issues with Flatten.
//
// Typical usage:
//
//	person := godecode.Type(
//		godecode.Field("name", godecode.String()),
//		godecode.Field("age", godecode.Nullable(godecode.Number())),
//	)
//	v, err := godecode.DecodeJSON(person, data)
//	if derr, ok := godecode.AsError(err); ok {
//		fmt.Println(derr) // tree of decode errors
//	}
//
// Schemas written once against schemable.Schemable can be interpreted as a
// decoder (Interpret), a guard (package guard) or a JSON Schema document
// (package jsonschema).
package godecode
