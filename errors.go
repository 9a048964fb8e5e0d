package godecode

import (
	"errors"
	"strconv"
	"strings"

	de "github.com/reoring/godecode/decodeerror"
	"github.com/reoring/godecode/i18n"
	"github.com/reoring/godecode/value"
)

// Issue codes.
const (
	CodeInvalidType = "invalid_type"
)

// Error carries the errors of a failed decode as a Go error. Its message is
// Draw of the errors.
type Error struct {
	Errors Errors
}

func (e *Error) Error() string { return Draw(e.Errors) }

// Issues flattens the errors; see Flatten.
func (e *Error) Issues() []Issue { return Flatten(e.Errors) }

// AsError extracts an *Error from err using errors.As.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// Run decodes i with d and returns the result the Go way: the value, or an
// *Error.
func Run[I, A any](d Decoder[I, A], i I) (A, error) {
	a, errs, ok := d.Decode(i).Unwrap()
	if !ok {
		var zero A
		return zero, &Error{Errors: errs}
	}
	return a, nil
}

// Issue is one Leaf error addressed by a JSON Pointer, for callers that want a
// flat list instead of a tree (API payloads, logs).
type Issue struct {
	Path     string `json:"path"` // JSON Pointer, "/" for the root.
	Code     string `json:"code"`
	Message  string `json:"message"`
	Expected string `json:"expected"`
	Actual   any    `json:"actual,omitempty"`
	// Trail lists the member, lazy and wrap labels crossed on the way to the
	// leaf, outermost first.
	Trail []string `json:"trail,omitempty"`
}

// Flatten lists every Leaf of errs in rendering order, each with the path of
// properties and indexes leading to it.
func Flatten(errs Errors) []Issue {
	var out []Issue
	flatten(errs, "", nil, &out)
	return out
}

func flatten(errs Errors, path string, trail []string, out *[]Issue) {
	for e := range errs.All() {
		de.Fold(e, de.Folder[struct{}]{
			Leaf: func(actual any, expected string) struct{} {
				p := path
				if p == "" {
					p = "/"
				}
				actualText := value.JSON(actual)
				*out = append(*out, Issue{
					Path:     p,
					Code:     CodeInvalidType,
					Message:  i18n.T(CodeInvalidType, map[string]string{"actual": actualText, "expected": expected}),
					Expected: expected,
					Actual:   issueActual(actual),
					Trail:    append([]string(nil), trail...),
				})
				return struct{}{}
			},
			Key: func(key string, _ de.Kind, errs Errors) struct{} {
				flatten(errs, joinPointer(path, key), trail, out)
				return struct{}{}
			},
			Index: func(index int, _ de.Kind, errs Errors) struct{} {
				flatten(errs, joinPointer(path, strconv.Itoa(index)), trail, out)
				return struct{}{}
			},
			Member: func(index int, errs Errors) struct{} {
				flatten(errs, path, appendTrail(trail, "member "+strconv.Itoa(index)), out)
				return struct{}{}
			},
			Lazy: func(id string, errs Errors) struct{} {
				flatten(errs, path, appendTrail(trail, "lazy type "+id), out)
				return struct{}{}
			},
			Wrap: func(message string, errs Errors) struct{} {
				flatten(errs, path, appendTrail(trail, message), out)
				return struct{}{}
			},
		})
	}
}

func issueActual(v any) any {
	if value.IsUndefined(v) {
		return nil
	}
	return v
}

func appendTrail(trail []string, label string) []string {
	out := make([]string, len(trail), len(trail)+1)
	copy(out, trail)
	return append(out, label)
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinPointer(base, token string) string {
	return base + "/" + pointerEscaper.Replace(token)
}
