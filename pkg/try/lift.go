package try

import (
	"reflect"
	"runtime"
)

// Wrap0 lifts a thunk so each call is captured by Run.
func Wrap0[R any](f func() R) func() Try[R] {
	return func() Try[R] {
		return Run(f)
	}
}

// Wrap lifts a one-argument function so each call is captured by Run.
func Wrap[A, R any](f func(A) R) func(A) Try[R] {
	return func(a A) Try[R] {
		return Run(func() R { return f(a) })
	}
}

func Wrap2[A, B, R any](f func(A, B) R) func(A, B) Try[R] {
	return func(a A, b B) Try[R] {
		return Run(func() R { return f(a, b) })
	}
}

func Wrap3[A, B, C, R any](f func(A, B, C) R) func(A, B, C) Try[R] {
	return func(a A, b B, c C) Try[R] {
		return Run(func() R { return f(a, b, c) })
	}
}

func WrapVariadic[A, R any](f func(...A) R) func(...A) Try[R] {
	return func(args ...A) Try[R] {
		return Run(func() R { return f(args...) })
	}
}

// WrapE lifts a function returning (R, error); both a panic and a non-nil
// error become a Failure.
func WrapE[A, R any](f func(A) (R, error)) func(A) Try[R] {
	return func(a A) Try[R] {
		return RunE(func() (R, error) { return f(a) })
	}
}

func WrapE2[A, B, R any](f func(A, B) (R, error)) func(A, B) Try[R] {
	return func(a A, b B) Try[R] {
		return RunE(func() (R, error) { return f(a, b) })
	}
}

// FuncName returns the runtime name of f, or "" when f is not a function.
func FuncName(f any) string {
	v := reflect.ValueOf(f)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	fn := runtime.FuncForPC(v.Pointer())
	if fn == nil {
		return ""
	}
	return fn.Name()
}
