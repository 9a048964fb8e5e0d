// Package tree provides labelled rose trees and renders them as indented text
// with box-drawing connectors.
package tree

import "strings"

// Tree is a labelled node with an ordered list of children.
type Tree[A any] struct {
	Value  A
	Forest []Tree[A]
}

// Make returns a node labelled value with the given children.
func Make[A any](value A, forest ...Tree[A]) Tree[A] {
	return Tree[A]{Value: value, Forest: forest}
}

// Map relabels every node of t.
func Map[A, B any](t Tree[A], f func(A) B) Tree[B] {
	out := Tree[B]{Value: f(t.Value)}
	if len(t.Forest) > 0 {
		out.Forest = make([]Tree[B], len(t.Forest))
		for i, c := range t.Forest {
			out.Forest[i] = Map(c, f)
		}
	}
	return out
}

// Fold reduces t bottom-up: f receives a node's label and the results of its
// children in order.
func Fold[A, B any](t Tree[A], f func(a A, bs []B) B) B {
	bs := make([]B, len(t.Forest))
	for i, c := range t.Forest {
		bs[i] = Fold(c, f)
	}
	return f(t.Value, bs)
}

// DrawTree renders the label of t followed by its children, one per line:
//
//	root
//	├─ first
//	│  └─ nested
//	└─ last
func DrawTree(t Tree[string]) string {
	var b strings.Builder
	b.WriteString(t.Value)
	drawForest(&b, "\n", t.Forest)
	return b.String()
}

// DrawForest renders every tree of forest as a child of an invisible root.
func DrawForest(forest []Tree[string]) string {
	var b strings.Builder
	drawForest(&b, "\n", forest)
	return b.String()
}

func drawForest(b *strings.Builder, indentation string, forest []Tree[string]) {
	n := len(forest)
	for i, t := range forest {
		last := i == n-1
		b.WriteString(indentation)
		if last {
			b.WriteString("└")
		} else {
			b.WriteString("├")
		}
		b.WriteString("─ ")
		b.WriteString(t.Value)
		if n > 1 && !last {
			drawForest(b, indentation+"│  ", t.Forest)
		} else {
			drawForest(b, indentation+"   ", t.Forest)
		}
	}
}
