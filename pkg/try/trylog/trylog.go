// Package trylog reports Try outcomes through a zap.Logger. Successes are
// logged at debug level and failures at warn level; the Try itself is
// returned unchanged so the helpers can sit inside a chain.
package trylog

import (
	"github.com/ib-77/try3/pkg/try"
	"go.uber.org/zap"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Fields describes t as structured log fields.
func Fields[T any](t try.Try[T]) []zap.Field {
	fields := []zap.Field{
		zap.Stringer("try_id", t.Id()),
		zap.Time("created_at", t.CreatedAt()),
	}
	if t.IsSuccess() {
		return append(fields, zap.String("outcome", OutcomeSuccess))
	}
	return append(fields, zap.String("outcome", OutcomeFailure), zap.Error(t.Err()))
}

func Log[T any](logger *zap.Logger, msg string, t try.Try[T]) try.Try[T] {
	if t.IsSuccess() {
		logger.Debug(msg, Fields(t)...)
	} else {
		logger.Warn(msg, Fields(t)...)
	}
	return t
}

// Run captures f with try.Run and logs the outcome.
func Run[T any](logger *zap.Logger, msg string, f func() T) try.Try[T] {
	return Log(logger, msg, try.Run(f))
}

// Wrap lifts f like try.Wrap and logs every call with the function's name.
func Wrap[A, R any](logger *zap.Logger, f func(A) R) func(A) try.Try[R] {
	lifted := try.Wrap(f)
	named := logger.With(zap.String("func", try.FuncName(f)))
	return func(a A) try.Try[R] {
		return Log(named, "call", lifted(a))
	}
}

func Wrap2[A, B, R any](logger *zap.Logger, f func(A, B) R) func(A, B) try.Try[R] {
	lifted := try.Wrap2(f)
	named := logger.With(zap.String("func", try.FuncName(f)))
	return func(a A, b B) try.Try[R] {
		return Log(named, "call", lifted(a, b))
	}
}
