package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fs "github.com/reoring/godecode/freesemigroup"
	"github.com/reoring/godecode/ordered"
	"github.com/reoring/godecode/result"
	"github.com/reoring/godecode/traverse"
)

type errs = *fs.FreeSemigroup[string]

func positive(label string, n int) result.Result[errs, int] {
	if n > 0 {
		return result.Success[errs](n * 10)
	}
	return result.Failure[errs, int](fs.Of(label))
}

func TestSlice(t *testing.T) {
	r := traverse.Slice([]int{1, 2, 3}, func(i int, n int) result.Result[errs, int] { return positive("", n) })
	v, ok := r.Value()
	require.True(t, ok)
	assert.Equal(t, []int{10, 20, 30}, v)

	r = traverse.Slice([]int{1, -1, 2, 0}, func(i int, n int) result.Result[errs, int] {
		return positive(string(rune('a'+i)), n)
	})
	e, failed := r.Failure()
	require.True(t, failed)
	assert.Equal(t, []string{"b", "d"}, e.ToSlice())

	empty, ok := traverse.Slice(nil, func(i int, n int) result.Result[errs, int] { return positive("", n) }).Value()
	require.True(t, ok)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMap(t *testing.T) {
	m := ordered.FromPairs(
		ordered.Pair[int]{Key: "z", Value: 0},
		ordered.Pair[int]{Key: "a", Value: 1},
		ordered.Pair[int]{Key: "m", Value: -2},
	)
	r := traverse.Map(m, positive)
	e, failed := r.Failure()
	require.True(t, failed)
	assert.Equal(t, []string{"z", "m"}, e.ToSlice())

	m.Set("z", 5)
	m.Set("m", 6)
	v, ok := traverse.Map(m, positive).Value()
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, v.Keys())
	a, _ := v.Get("a")
	assert.Equal(t, 10, a)
}
