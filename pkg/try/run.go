package try

// Run invokes f once and captures its outcome. A panic becomes a Failure, and
// so does a returned value that IsFault recognizes. Run never panics because
// of f.
func Run[T any](f func() T) Try[T] {
	return RunWith(DefaultOptions(), f)
}

func RunWith[T any](opts Options, f func() T) (res Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[T](faultOf(r))
		}
	}()

	v := f()
	if opts.DetectReturnedFaults && IsFault(any(v)) {
		return Failure[T](any(v).(error))
	}
	return Success(v)
}

// RunE is Run for functions that report failure through a trailing error.
func RunE[T any](f func() (T, error)) Try[T] {
	return RunEWith(DefaultOptions(), f)
}

// RunEWith is RunE with explicit options. A non-nil trailing error wins over
// a fault-shaped value.
func RunEWith[T any](opts Options, f func() (T, error)) (res Try[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[T](faultOf(r))
		}
	}()

	v, err := f()
	if err != nil {
		return Failure[T](err)
	}
	if opts.DetectReturnedFaults && IsFault(any(v)) {
		return Failure[T](any(v).(error))
	}
	return Success(v)
}

// OrElse captures f and replaces a Failure with Success(defaultValue).
// defaultValue is used as is, even when it is fault-shaped.
func OrElse[T any](f func() T, defaultValue T) Try[T] {
	return Run(f).OrElse(defaultValue)
}

func OrElseE[T any](f func() (T, error), defaultValue T) Try[T] {
	return RunE(f).OrElse(defaultValue)
}

// OrRecover captures f and hands a Failure to recoverFn. The Try returned by
// recoverFn is passed through without capture.
func OrRecover[T any](f func() T, recoverFn func(err error) Try[T]) Try[T] {
	return Run(f).Recover(recoverFn)
}

func OrRecoverE[T any](f func() (T, error), recoverFn func(err error) Try[T]) Try[T] {
	return RunE(f).Recover(recoverFn)
}

func (t Try[T]) OrElse(defaultValue T) Try[T] {
	if t.isSuccess {
		return t
	}
	return Success(defaultValue)
}

func (t Try[T]) Recover(recoverFn func(err error) Try[T]) Try[T] {
	if t.isSuccess {
		return t
	}
	return recoverFn(t.err)
}
