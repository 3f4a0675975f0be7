package try

import "go.uber.org/multierr"

// Map applies f to the value of a Success under capture, so a panic in f
// yields a Failure. A Failure is returned as is and f is not called.
func Map[A, B any](t Try[A], f func(A) B) Try[B] {
	if t.IsFailure() {
		return FailureFrom[A, B](t)
	}
	return Run(func() B { return f(t.value) })
}

func Pure[A any](v A) Try[A] {
	return Success(v)
}

// Apply maps the function held by tf over ta. When tf is a Failure it is
// returned without looking at ta.
func Apply[A, B any](tf Try[func(A) B], ta Try[A]) Try[B] {
	if tf.IsFailure() {
		return FailureFrom[func(A) B, B](tf)
	}
	return Map(ta, tf.value)
}

func Return[A any](v A) Try[A] {
	return Success(v)
}

// Bind passes the value of a Success to f and returns f's result. f runs
// without capture: a panic inside f propagates to the caller.
func Bind[A, B any](t Try[A], f func(A) Try[B]) Try[B] {
	if t.IsFailure() {
		return FailureFrom[A, B](t)
	}
	return f(t.value)
}

// Sequence turns a list of Try into a Try of a list, stopping at the first
// Failure.
func Sequence[T any](ts []Try[T]) Try[[]T] {
	values := make([]T, 0, len(ts))
	for _, t := range ts {
		if t.IsFailure() {
			return FailureFrom[T, []T](t)
		}
		values = append(values, t.value)
	}
	return Success(values)
}

// Collect is Sequence without the short-circuit: every fault is combined
// into one error, split again with Errors.
func Collect[T any](ts []Try[T]) Try[[]T] {
	values := make([]T, 0, len(ts))
	var (
		err         error
		firstFailed = -1
	)
	for i, t := range ts {
		if t.IsFailure() {
			if firstFailed < 0 {
				firstFailed = i
			}
			err = multierr.Append(err, t.err)
			continue
		}
		values = append(values, t.value)
	}
	switch {
	case firstFailed < 0:
		return Success(values)
	case err == nil:
		return FailureFrom[T, []T](ts[firstFailed])
	}
	return Failure[[]T](err)
}
