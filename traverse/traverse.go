// Package traverse maps sequences and keyed collections through functions that
// may fail, accumulating every failure instead of stopping at the first.
//
// Failures are free semigroups, so accumulation is a chain of O(1)
// concatenations in visiting order.
package traverse

import (
	fs "github.com/reoring/godecode/freesemigroup"
	"github.com/reoring/godecode/ordered"
	"github.com/reoring/godecode/result"
)

// Slice applies f to every element of as in index order. It succeeds with all
// results in order, or fails with the concatenation of every failure.
func Slice[E, A, B any](as []A, f func(i int, a A) result.Result[*fs.FreeSemigroup[E], B]) result.Result[*fs.FreeSemigroup[E], []B] {
	var errs *fs.FreeSemigroup[E]
	var out []B
	if len(as) > 0 {
		out = make([]B, 0, len(as))
	}
	for i, a := range as {
		b, e, ok := f(i, a).Unwrap()
		if !ok {
			errs = fs.Concat(errs, e)
			continue
		}
		if errs == nil {
			out = append(out, b)
		}
	}
	if errs != nil {
		return result.Failure[*fs.FreeSemigroup[E], []B](errs)
	}
	if out == nil {
		out = []B{}
	}
	return result.Success[*fs.FreeSemigroup[E]](out)
}

// Map applies f to every entry of m in enumeration order. It succeeds with a
// map holding every result under its original key, or fails with the
// concatenation of every failure.
func Map[E, A, B any](m *ordered.Map[A], f func(key string, a A) result.Result[*fs.FreeSemigroup[E], B]) result.Result[*fs.FreeSemigroup[E], *ordered.Map[B]] {
	var errs *fs.FreeSemigroup[E]
	out := ordered.NewMap[B](m.Len())
	for k, a := range m.All() {
		b, e, ok := f(k, a).Unwrap()
		if !ok {
			errs = fs.Concat(errs, e)
			continue
		}
		if errs == nil {
			out.Set(k, b)
		}
	}
	if errs != nil {
		return result.Failure[*fs.FreeSemigroup[E], *ordered.Map[B]](errs)
	}
	return result.Success[*fs.FreeSemigroup[E]](out)
}
