// Package result provides a two-case container: a success carrying a value of
// type A, or a failure carrying a value of type E.
package result

// Result is either a success or a failure. The zero value is a success
// holding the zero A.
type Result[E, A any] struct {
	value  A
	err    E
	failed bool
}

// Success returns a successful result holding a.
func Success[E, A any](a A) Result[E, A] {
	return Result[E, A]{value: a}
}

// Failure returns a failed result holding e.
func Failure[E, A any](e E) Result[E, A] {
	return Result[E, A]{err: e, failed: true}
}

// IsSuccess reports whether r succeeded.
func (r Result[E, A]) IsSuccess() bool { return !r.failed }

// IsFailure reports whether r failed.
func (r Result[E, A]) IsFailure() bool { return r.failed }

// Value returns the success value and whether r succeeded.
func (r Result[E, A]) Value() (A, bool) { return r.value, !r.failed }

// Failure returns the failure value and whether r failed.
func (r Result[E, A]) Failure() (E, bool) { return r.err, r.failed }

// Unwrap returns both sides at once; exactly one is meaningful, selected by ok.
func (r Result[E, A]) Unwrap() (a A, e E, ok bool) { return r.value, r.err, !r.failed }

// Map transforms the success value.
func Map[E, A, B any](r Result[E, A], f func(A) B) Result[E, B] {
	if r.failed {
		return Failure[E, B](r.err)
	}
	return Success[E](f(r.value))
}

// Chain feeds the success value into f.
func Chain[E, A, B any](r Result[E, A], f func(A) Result[E, B]) Result[E, B] {
	if r.failed {
		return Failure[E, B](r.err)
	}
	return f(r.value)
}

// MapLeft transforms the failure value.
func MapLeft[E, F, A any](r Result[E, A], f func(E) F) Result[F, A] {
	if r.failed {
		return Failure[F, A](f(r.err))
	}
	return Success[F](r.value)
}

// Fold eliminates r into a single value.
func Fold[E, A, R any](r Result[E, A], onFailure func(E) R, onSuccess func(A) R) R {
	if r.failed {
		return onFailure(r.err)
	}
	return onSuccess(r.value)
}
