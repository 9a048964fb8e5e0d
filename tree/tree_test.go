package tree_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reoring/godecode/tree"
)

func TestDrawTree(t *testing.T) {
	tr := tree.Make("root",
		tree.Make("a",
			tree.Make("a1"),
			tree.Make("a2", tree.Make("a2x")),
		),
		tree.Make("b", tree.Make("b1")),
	)
	want := strings.Join([]string{
		"root",
		"├─ a",
		"│  ├─ a1",
		"│  └─ a2",
		"│     └─ a2x",
		"└─ b",
		"   └─ b1",
	}, "\n")
	assert.Equal(t, want, tree.DrawTree(tr))
}

func TestDrawTree_SingleChildUsesBlankContinuation(t *testing.T) {
	tr := tree.Make("r", tree.Make("only", tree.Make("x"), tree.Make("y")))
	assert.Equal(t, "r\n└─ only\n   ├─ x\n   └─ y", tree.DrawTree(tr))
	assert.Equal(t, "leaf", tree.DrawTree(tree.Make("leaf")))
}

func TestDrawForest(t *testing.T) {
	assert.Equal(t, "\n├─ a\n└─ b", tree.DrawForest([]tree.Tree[string]{tree.Make("a"), tree.Make("b")}))
	assert.Equal(t, "", tree.DrawForest(nil))
}

func TestMapAndFold(t *testing.T) {
	tr := tree.Make(1, tree.Make(2), tree.Make(3, tree.Make(4)))
	labels := tree.Map(tr, func(n int) string { return strings.Repeat("*", n) })
	assert.Equal(t, "*\n├─ **\n└─ ***\n   └─ ****", tree.DrawTree(labels))

	sum := tree.Fold(tr, func(n int, children []int) int {
		for _, c := range children {
			n += c
		}
		return n
	})
	assert.Equal(t, 10, sum)
}
