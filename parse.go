package godecode

import (
	"github.com/reoring/godecode/source"
)

// DecodeSource loads a value from src and decodes it with d. Load failures
// are returned as they are; decode failures as *Error.
func DecodeSource[A any](d Decoder[any, A], src source.Source) (A, error) {
	v, err := src()
	if err != nil {
		var zero A
		return zero, err
	}
	return Run(d, v)
}

// DecodeJSON parses data as JSON and decodes it with d.
func DecodeJSON[A any](d Decoder[any, A], data []byte) (A, error) {
	return DecodeSource(d, source.Bytes(source.JSON, data, source.Options{}))
}
