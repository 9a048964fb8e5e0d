package godecode_test

import (
	"strings"
	"testing"

	"github.com/reoring/godecode"
	"github.com/reoring/godecode/value"
)

func TestUnion_FirstSuccessWins(t *testing.T) {
	d := godecode.Union(godecode.Widen(godecode.String()), godecode.Widen(godecode.Number()))
	if got := mustDecode(t, d, any(1.0)); got != 1.0 {
		t.Fatalf("got %v", got)
	}

	calls := 0
	counting := godecode.DecoderFunc[any, any](func(i any) godecode.Decoded[any] {
		calls++
		return godecode.Success(i)
	})
	mustDecode(t, godecode.Union[any, any](godecode.Widen(godecode.String()), counting, counting), any("s"))
	if calls != 0 {
		t.Fatalf("later members must not run after a success, ran %d", calls)
	}
}

func TestUnion_ReportsEveryMember(t *testing.T) {
	d := godecode.Union(godecode.Widen(godecode.String()), godecode.Widen(godecode.Number()))
	assertDraw(t, mustFail(t, d, any(true)), strings.Join([]string{
		`member 0`,
		`└─ cannot decode true, should be string`,
		`member 1`,
		`└─ cannot decode true, should be number`,
	}, "\n"))
}

func TestNullable(t *testing.T) {
	d := godecode.Nullable(godecode.Number())
	if got := mustDecode(t, d, any(nil)); got != nil {
		t.Fatalf("null should decode to nil, got %v", *got)
	}
	if got := mustDecode(t, d, any(2.0)); got == nil || *got != 2 {
		t.Fatalf("got %v", got)
	}
	assertDraw(t, mustFail(t, d, any("x")), strings.Join([]string{
		`member 0`,
		`└─ cannot decode "x", should be null`,
		`cannot decode "x", should be number`,
	}, "\n"))
}

func TestNullable_InsideType(t *testing.T) {
	d := godecode.Interpret(func(s godecodeSchemable) godecode.Decoder[any, any] {
		return s.Type(prop("age", s.Nullable(s.Number())))
	})
	got := mustDecode(t, d, any(obj("age", nil)))
	if value.JSON(got) != `{"age":null}` {
		t.Fatalf("got %s", value.JSON(got))
	}
}

func TestUndefinable(t *testing.T) {
	d := godecode.Undefinable(godecode.String())
	if got := mustDecode(t, d, value.Undefined); got != nil {
		t.Fatalf("undefined should decode to nil")
	}
	if got := mustDecode(t, d, any("s")); *got != "s" {
		t.Fatalf("got %q", *got)
	}
	assertDraw(t, mustFail(t, d, any(nil)), strings.Join([]string{
		`cannot decode null, should be string`,
		`cannot decode null, should be undefined`,
	}, "\n"))
}
