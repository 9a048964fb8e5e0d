package value_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/godecode/ordered"
	"github.com/reoring/godecode/value"
)

func TestNumber(t *testing.T) {
	for _, v := range []any{1.5, float32(2), 3, int64(4), uint8(5), json.Number("6")} {
		_, ok := value.Number(v)
		assert.True(t, ok, "%T", v)
	}
	for _, v := range []any{"1", json.Number("x"), true, nil, value.Undefined} {
		_, ok := value.Number(v)
		assert.False(t, ok, "%#v", v)
	}
}

func TestRecord(t *testing.T) {
	r, ok := value.Record(map[string]any{"b": 1, "a": 2, "c": 3})
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, r.Keys())

	var nilMap map[string]any
	_, ok = value.Record(nilMap)
	assert.False(t, ok)
	assert.False(t, value.IsRecord((*ordered.Map[any])(nil)))
	assert.False(t, value.IsRecord([]any{}))

	assert.Equal(t, value.Undefined, value.Lookup(r, "missing"))
	assert.Equal(t, value.Undefined, value.At([]any{1}, 1))
	assert.Equal(t, 1, value.At([]any{1}, 0))
}

func TestStrictEqual(t *testing.T) {
	assert.True(t, value.StrictEqual(1, 1.0))
	assert.True(t, value.StrictEqual("a", "a"))
	assert.True(t, value.StrictEqual(nil, nil))
	assert.True(t, value.StrictEqual(value.Undefined, value.Undefined))
	assert.False(t, value.StrictEqual(math.NaN(), math.NaN()))
	assert.False(t, value.StrictEqual("1", 1.0))
	assert.False(t, value.StrictEqual(nil, value.Undefined))
	assert.False(t, value.StrictEqual([]any{}, []any{}))
}

func TestMerge(t *testing.T) {
	left := ordered.FromPairs(ordered.Pair[any]{Key: "a", Value: 1}, ordered.Pair[any]{Key: "b", Value: 2})
	right := ordered.FromPairs(ordered.Pair[float64]{Key: "b", Value: 3}, ordered.Pair[float64]{Key: "c", Value: 4})
	merged, ok := value.Merge(left, right).(*ordered.Map[any])
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, merged.Keys())
	b, _ := merged.Get("b")
	assert.Equal(t, 3.0, b)
	assert.Equal(t, 2, left.Len(), "operands are not modified")

	assert.Equal(t, "x", value.Merge(left, "x"))
	assert.Equal(t, left, value.Merge(1.0, left))
	assert.Equal(t, []any{3.0}, value.Merge([]any{1.0, 2.0}, []any{3.0}), "arrays are not merged by index")
}

func TestJSON(t *testing.T) {
	assert.Equal(t, "undefined", value.JSON(value.Undefined))
	assert.Equal(t, "null", value.JSON(math.Inf(1)))
	assert.Equal(t, `"<&>"`, value.JSON("<&>"))
	assert.Equal(t, `[null,1]`, value.JSON([]any{value.Undefined, 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}", value.JSONIndent(ordered.FromPairs(ordered.Pair[any]{Key: "a", Value: 1})))
}

func TestJSON_NestedNonFiniteAndUndefined(t *testing.T) {
	assert.Equal(t, `[1,null,null]`, value.JSON([]any{1.0, math.NaN(), math.Inf(-1)}))
	assert.Equal(t, `[2,null]`, value.JSON([]float64{2, math.Inf(1)}))

	obj := ordered.FromPairs(
		ordered.Pair[any]{Key: "a", Value: value.Undefined},
		ordered.Pair[any]{Key: "b", Value: math.NaN()},
		ordered.Pair[any]{Key: "c", Value: []any{value.Undefined}},
	)
	assert.Equal(t, `{"b":null,"c":[null]}`, value.JSON(obj))
	assert.Equal(t, 3, obj.Len(), "rendering does not modify its input")

	assert.Equal(t, `{"x":null}`, value.JSON(map[string]any{"x": math.Inf(1), "y": value.Undefined}))
	assert.Equal(t, "null", value.JSON((*ordered.Map[any])(nil)))
}
