package godecode

import (
	"strconv"
	"strings"

	de "github.com/reoring/godecode/decodeerror"
	"github.com/reoring/godecode/tree"
	"github.com/reoring/godecode/value"
)

// Draw renders errs as an indented tree, one root per top-level error:
//
//	required property "a"
//	└─ cannot decode "x", should be number
//	required property "b"
//	└─ cannot decode 1, should be string
func Draw(errs Errors) string {
	forest := toForest(errs)
	parts := make([]string, len(forest))
	for i, t := range forest {
		parts[i] = tree.DrawTree(t)
	}
	return strings.Join(parts, "\n")
}

// Stringify renders a decode outcome: the value as two-space indented JSON on
// success, Draw of the errors on failure.
func Stringify[A any](r Decoded[A]) string {
	a, errs, ok := r.Unwrap()
	if !ok {
		return Draw(errs)
	}
	return value.JSONIndent(a)
}

func toTree(e de.DecodeError) tree.Tree[string] {
	switch e := e.(type) {
	case de.Leaf:
		return tree.Make("cannot decode " + value.JSON(e.Actual) + ", should be " + e.Expected)
	case de.Key:
		return tree.Make(string(e.Kind)+" property "+value.JSON(e.Key), toForest(e.Errors)...)
	case de.Index:
		return tree.Make(string(e.Kind)+" index "+strconv.Itoa(e.Index), toForest(e.Errors)...)
	case de.Member:
		return tree.Make("member "+strconv.Itoa(e.Index), toForest(e.Errors)...)
	case de.Lazy:
		return tree.Make("lazy type "+e.ID, toForest(e.Errors)...)
	case de.Wrap:
		return tree.Make(e.Message, toForest(e.Errors)...)
	default:
		panic("godecode: unknown decode error variant")
	}
}

func toForest(errs Errors) []tree.Tree[string] {
	var forest []tree.Tree[string]
	for e := range errs.All() {
		forest = append(forest, toTree(e))
	}
	return forest
}
