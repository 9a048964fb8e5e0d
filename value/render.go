package value

import (
	"bytes"
	"fmt"
	"math"
	"reflect"

	json "github.com/goccy/go-json"

	"github.com/reoring/godecode/ordered"
)

// JSON renders v as compact JSON the way a JavaScript runtime would print it
// in a diagnostic: no HTML escaping, a top-level Undefined as the bare word
// undefined and non-finite numbers as null. Object entries holding Undefined
// are left out and Undefined array elements print as null. Values that cannot
// be encoded fall back to their fmt representation.
func JSON(v any) string {
	return render(v, "")
}

// JSONIndent is JSON with two-space indentation.
func JSONIndent(v any) string {
	return render(v, "  ")
}

func render(v any, indent string) string {
	if IsUndefined(v) {
		return "undefined"
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(normalize(v)); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}

// normalize rewrites v into a value the encoder accepts with JSON.stringify
// semantics. Objects and arrays are copied; v itself is never modified.
func normalize(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil
	}
	switch x := v.(type) {
	case nil, string, bool:
		return v
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil
		}
		return v
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return nil
		}
		return v
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			if IsUndefined(e) {
				out[i] = nil
				continue
			}
			out[i] = normalize(e)
		}
		return out
	}
	if r, ok := composite(v); ok {
		out := ordered.NewMap[any](r.Len())
		for k, e := range r.All() {
			if !IsUndefined(e) {
				out.Set(k, normalize(e))
			}
		}
		return out
	}
	// typed slices such as []float64 produced by Array decoders
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		if rv.IsNil() {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			e := rv.Index(i).Interface()
			if IsUndefined(e) {
				continue
			}
			out[i] = normalize(e)
		}
		return out
	}
	return v
}
