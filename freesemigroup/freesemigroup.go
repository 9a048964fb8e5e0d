// Package freesemigroup implements the free semigroup: a non-empty, ordered
// collection built from single values and O(1) concatenation.
//
// Concatenation only allocates a node pointing at both operands, so deep
// structural traversals can merge error sets without copying lists. The
// collection is flattened once, left to right, when it is consumed.
package freesemigroup

import "iter"

// FreeSemigroup is either a single value (Of) or the ordered concatenation of
// two free semigroups (Concat). Values are immutable once built.
type FreeSemigroup[A any] struct {
	value       A
	left, right *FreeSemigroup[A]
}

// Of returns a free semigroup holding a single value.
func Of[A any](a A) *FreeSemigroup[A] {
	return &FreeSemigroup[A]{value: a}
}

// Concat returns left followed by right. Neither operand is modified and both
// may be reused. A nil operand is treated as absent and the other is returned.
func Concat[A any](left, right *FreeSemigroup[A]) *FreeSemigroup[A] {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	}
	return &FreeSemigroup[A]{left: left, right: right}
}

// Semigroup exposes Concat as a value, for code that is handed a way to
// combine rather than calling Concat directly.
type Semigroup[A any] struct{}

// Concat is freesemigroup.Concat.
func (Semigroup[A]) Concat(left, right *FreeSemigroup[A]) *FreeSemigroup[A] {
	return Concat(left, right)
}

// IsConcat reports whether s is a concatenation node.
func (s *FreeSemigroup[A]) IsConcat() bool { return s.left != nil }

// Value returns the held value of an Of node.
func (s *FreeSemigroup[A]) Value() (A, bool) {
	if s.IsConcat() {
		var zero A
		return zero, false
	}
	return s.value, true
}

// Children returns the operands of a Concat node.
func (s *FreeSemigroup[A]) Children() (left, right *FreeSemigroup[A], ok bool) {
	if !s.IsConcat() {
		return nil, nil, false
	}
	return s.left, s.right, true
}

// Fold reduces s structurally: of is applied to every single value and concat
// combines the results of the two sides of every concatenation node.
func Fold[A, R any](s *FreeSemigroup[A], of func(A) R, concat func(left, right R) R) R {
	if !s.IsConcat() {
		return of(s.value)
	}
	return concat(Fold(s.left, of, concat), Fold(s.right, of, concat))
}

// All yields the values of s from left to right. It walks the structure with
// an explicit stack, so long concatenation chains do not grow the call stack.
func (s *FreeSemigroup[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		if s == nil {
			return
		}
		stack := []*FreeSemigroup[A]{s}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if n.IsConcat() {
				stack = append(stack, n.right, n.left)
				continue
			}
			if !yield(n.value) {
				return
			}
		}
	}
}

// ToSlice flattens s into a slice, left to right.
func (s *FreeSemigroup[A]) ToSlice() []A {
	var out []A
	for a := range s.All() {
		out = append(out, a)
	}
	return out
}

// Len returns the number of values in s.
func (s *FreeSemigroup[A]) Len() int {
	n := 0
	for range s.All() {
		n++
	}
	return n
}

// FromSlice builds a right-leaning free semigroup from a non-empty slice. It
// returns nil for an empty slice.
func FromSlice[A any](as []A) *FreeSemigroup[A] {
	var out *FreeSemigroup[A]
	for i := len(as) - 1; i >= 0; i-- {
		out = Concat(Of(as[i]), out)
	}
	return out
}
