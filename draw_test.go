package godecode_test

import (
	"math"
	"strings"
	"testing"

	"github.com/reoring/godecode"
	de "github.com/reoring/godecode/decodeerror"
	"github.com/reoring/godecode/value"
)

func TestDraw_Labels(t *testing.T) {
	leaf := godecode.LeafError("x", "number")
	errs := de.Concat(
		de.Of(de.NewKey("k", de.Optional, leaf)),
		de.Concat(
			de.Of(de.NewIndex(3, de.Required, leaf)),
			de.Concat(
				de.Of(de.NewMember(1, leaf)),
				de.Concat(de.Of(de.NewLazy("T", leaf)), de.Of(de.NewWrap("custom", leaf))),
			),
		),
	)
	assertDraw(t, errs, strings.Join([]string{
		`optional property "k"`,
		`└─ cannot decode "x", should be number`,
		`required index 3`,
		`└─ cannot decode "x", should be number`,
		`member 1`,
		`└─ cannot decode "x", should be number`,
		`lazy type T`,
		`└─ cannot decode "x", should be number`,
		`custom`,
		`└─ cannot decode "x", should be number`,
	}, "\n"))
}

func TestDraw_Connectors(t *testing.T) {
	inner := de.Concat(
		de.Of(de.NewKey("a", de.Required, de.Concat(godecode.LeafError(1, "x"), godecode.LeafError(2, "y")))),
		godecode.LeafError(3, "z"),
	)
	assertDraw(t, de.Of(de.NewWrap("root", inner)), strings.Join([]string{
		`root`,
		`├─ required property "a"`,
		`│  ├─ cannot decode 1, should be x`,
		`│  └─ cannot decode 2, should be y`,
		`└─ cannot decode 3, should be z`,
	}, "\n"))
}

func TestDraw_RendersActualAsJSON(t *testing.T) {
	cases := []struct {
		actual any
		want   string
	}{
		{"<a&b>", `cannot decode "<a&b>", should be T`},
		{obj("b", 1, "a", []any{}), `cannot decode {"b":1,"a":[]}, should be T`},
		{math.NaN(), `cannot decode null, should be T`},
		{value.Undefined, `cannot decode undefined, should be T`},
		{[]any{nil, true}, `cannot decode [null,true], should be T`},
		{[]any{1.0, math.NaN()}, `cannot decode [1,null], should be T`},
		{obj("a", value.Undefined, "b", 1.0), `cannot decode {"b":1}, should be T`},
	}
	for _, tc := range cases {
		assertDraw(t, godecode.LeafError(tc.actual, "T"), tc.want)
	}
}

func TestDraw_ConcatIsAssociative(t *testing.T) {
	a := godecode.LeafError("a", "A")
	b := de.Concat(godecode.LeafError("b1", "B"), godecode.LeafError("b2", "B"))
	c := godecode.LeafError("c", "C")

	left := godecode.Draw(de.Concat(de.Concat(a, b), c))
	right := godecode.Draw(de.Concat(a, de.Concat(b, c)))
	if left != right {
		t.Fatalf("concat must be associative:\n%s\nvs\n%s", left, right)
	}
	want := strings.Join([]string{
		`cannot decode "a", should be A`,
		`cannot decode "b1", should be B`,
		`cannot decode "b2", should be B`,
		`cannot decode "c", should be C`,
	}, "\n")
	if left != want {
		t.Fatalf("got:\n%s", left)
	}
	// operands are reusable after concatenation
	assertDraw(t, b, strings.Join([]string{
		`cannot decode "b1", should be B`,
		`cannot decode "b2", should be B`,
	}, "\n"))
}

func TestDraw_Idempotent(t *testing.T) {
	errs := mustFail(t, godecode.Type(
		godecode.Field("a", godecode.Array(godecode.Number())),
		godecode.Field("b", godecode.Nullable(godecode.String())),
	), any(obj("a", []any{"x", 1.0, true}, "b", 1.0)))
	first := godecode.Draw(errs)
	if second := godecode.Draw(errs); first != second {
		t.Fatalf("rendering changed between calls")
	}
}

func TestStringify(t *testing.T) {
	d := godecode.Type(godecode.Field("a", godecode.Array(godecode.Number())))
	if got := godecode.Stringify(d.Decode(obj("a", []any{1.0, 2.5}))); got != "{\n  \"a\": [\n    1,\n    2.5\n  ]\n}" {
		t.Fatalf("got:\n%s", got)
	}
	if got := godecode.Stringify(d.Decode("x")); got != `cannot decode "x", should be unknownRecord` {
		t.Fatalf("got:\n%s", got)
	}
}
