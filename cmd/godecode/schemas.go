package main

import "github.com/reoring/godecode/schemable"

// Tree is a labelled rose tree: {"value": string, "forest": [Tree]}.
func Tree[S any](s schemable.Schemable[S]) S {
	var tree func() S
	tree = func() S {
		return s.Type(
			schemable.Prop("value", s.String()),
			schemable.Prop("forest", s.Array(s.Lazy("Tree", tree))),
		)
	}
	return s.Lazy("Tree", tree)
}

// Package is a minimal package manifest.
func Package[S any](s schemable.Schemable[S]) S {
	return s.Intersect(
		s.Type(
			schemable.Prop("name", s.String()),
			schemable.Prop("version", s.String()),
			schemable.Prop("dependencies", s.Record(s.String())),
		),
		s.Partial(
			schemable.Prop("description", s.String()),
			schemable.Prop("private", s.Boolean()),
			schemable.Prop("license", s.Nullable(s.String())),
		),
	)
}

// Shape is a circle or a rectangle, selected by "kind".
func Shape[S any](s schemable.Schemable[S]) S {
	return s.Sum("kind",
		schemable.Prop("circle", s.Type(
			schemable.Prop("kind", s.Literal("circle")),
			schemable.Prop("radius", s.Number()),
		)),
		schemable.Prop("rect", s.Type(
			schemable.Prop("kind", s.Literal("rect")),
			schemable.Prop("size", s.Tuple(s.Number(), s.Number())),
		)),
	)
}
