package godecode_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/reoring/godecode"
	"github.com/reoring/godecode/i18n"
)

func TestRun(t *testing.T) {
	d := godecode.Array(godecode.Number())
	got, err := godecode.Run(d, any([]any{1.0}))
	if err != nil || !reflect.DeepEqual(got, []float64{1}) {
		t.Fatalf("got %v, %v", got, err)
	}

	_, err = godecode.Run(d, any([]any{"x"}))
	if err == nil {
		t.Fatalf("expected error")
	}
	wrapped := fmt.Errorf("handler: %w", err)
	derr, ok := godecode.AsError(wrapped)
	if !ok {
		t.Fatalf("AsError should unwrap, got %v", wrapped)
	}
	if derr.Error() != godecode.Draw(derr.Errors) {
		t.Fatalf("Error() should be the drawn tree")
	}
	var target *godecode.Error
	if !errors.As(wrapped, &target) || target != derr {
		t.Fatalf("errors.As should find the same *Error")
	}

	if _, ok := godecode.AsError(errors.New("other")); ok {
		t.Fatalf("unrelated errors are not decode errors")
	}
	if _, ok := godecode.AsError(nil); ok {
		t.Fatalf("nil is not a decode error")
	}
}

func TestFlatten(t *testing.T) {
	d := godecode.Type(
		godecode.Field("a/b", godecode.Array(godecode.Number())),
		godecode.Field("c", godecode.WithMessage(godecode.Nullable(godecode.String()), func(any, godecode.Errors) string {
			return "bad c"
		})),
	)
	issues := godecode.Flatten(mustFail(t, d, any(obj("a/b", []any{1.0, "x"}, "c", 2.0))))
	want := []godecode.Issue{
		{
			Path:     "/a~1b/1",
			Code:     godecode.CodeInvalidType,
			Message:  `cannot decode "x", should be number`,
			Expected: "number",
			Actual:   "x",
		},
		{
			Path:     "/c",
			Code:     godecode.CodeInvalidType,
			Message:  `cannot decode 2, should be null`,
			Expected: "null",
			Actual:   2.0,
			Trail:    []string{"bad c", "member 0"},
		},
		{
			Path:     "/c",
			Code:     godecode.CodeInvalidType,
			Message:  `cannot decode 2, should be string`,
			Expected: "string",
			Actual:   2.0,
			Trail:    []string{"bad c"},
		},
	}
	if !reflect.DeepEqual(issues, want) {
		t.Fatalf("unexpected issues:\n%#v\nwant:\n%#v", issues, want)
	}
}

func TestFlatten_RootPathAndLanguage(t *testing.T) {
	i18n.SetLanguage("ja")
	defer i18n.SetLanguage("en")

	issues := godecode.Flatten(godecode.LeafError(1.0, "string"))
	if len(issues) != 1 || issues[0].Path != "/" {
		t.Fatalf("got %#v", issues)
	}
	if issues[0].Message == `cannot decode 1, should be string` {
		t.Fatalf("message should follow the selected language")
	}
}
