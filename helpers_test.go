package godecode_test

import (
	"testing"

	"github.com/reoring/godecode"
	"github.com/reoring/godecode/ordered"
	"github.com/reoring/godecode/schemable"
)

// obj builds an ordered object from alternating keys and values.
func obj(pairs ...any) *ordered.Map[any] {
	m := ordered.NewMap[any](len(pairs) / 2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i].(string), pairs[i+1])
	}
	return m
}

func mustDecode[I, A any](t *testing.T, d godecode.Decoder[I, A], i I) A {
	t.Helper()
	a, errs, ok := d.Decode(i).Unwrap()
	if !ok {
		t.Fatalf("unexpected failure:\n%s", godecode.Draw(errs))
	}
	return a
}

func mustFail[I, A any](t *testing.T, d godecode.Decoder[I, A], i I) godecode.Errors {
	t.Helper()
	r := d.Decode(i)
	errs, failed := r.Failure()
	if !failed {
		t.Fatalf("expected failure, got %s", godecode.Stringify(r))
	}
	return errs
}

func assertDraw(t *testing.T, errs godecode.Errors, want string) {
	t.Helper()
	if got := godecode.Draw(errs); got != want {
		t.Fatalf("unexpected report:\n%s\nwant:\n%s", got, want)
	}
}

type godecodeSchemable = schemable.Schemable[godecode.Decoder[any, any]]

func prop(key string, d godecode.Decoder[any, any]) godecode.Property {
	return schemable.Prop(key, d)
}
