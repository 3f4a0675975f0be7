package try

// FromTry returns the payload of x whichever variant it holds: the value of a
// Success or the fault of a Failure. It returns nil when x is not a Try.
func FromTry(x any) any {
	t, ok := asTry(x)
	if !ok {
		return nil
	}
	return t.payload()
}

func (t Try[T]) Value() T {
	return t.value
}

func (t Try[T]) Err() error {
	return t.err
}

func (t Try[T]) Get() (T, error) {
	if !t.isSuccess {
		var zero T
		return zero, t.err
	}
	return t.value, nil
}

func (t Try[T]) GetOrElse(defaultValue T) T {
	if t.isSuccess {
		return t.value
	}
	return defaultValue
}

// Fold collapses t to a concrete value through one of two handlers.
func Fold[T, U any](t Try[T], onSuccess func(T) U, onFailure func(error) U) U {
	if t.isSuccess {
		return onSuccess(t.value)
	}
	return onFailure(t.err)
}
