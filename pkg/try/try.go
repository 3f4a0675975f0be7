package try

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotSuccess = errors.New("try: value is not a success")
	ErrNotFailure = errors.New("try: value is not a failure")
)

// Try holds exactly one of a successful value or a captured fault.
// The zero value is a Failure with a nil fault and should not be used.
type Try[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Try[T] {
	return Try[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](err error) Try[T] {
	return Try[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom re-types a Failure, keeping its fault, id and creation time.
func FailureFrom[In, Out any](from Try[In]) Try[Out] {
	return Try[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (t Try[T]) IsSuccess() bool {
	return t.isSuccess
}

func (t Try[T]) IsFailure() bool {
	return !t.isSuccess
}

func (t Try[T]) Id() uuid.UUID {
	return t.id
}

// CreatedAt time creation (UTC)
func (t Try[T]) CreatedAt() time.Time {
	return t.createdAt
}

// Equal reports whether both values hold the same variant and equal payloads.
// Identity and creation time are ignored.
func (t Try[T]) Equal(other Try[T]) bool {
	if t.isSuccess != other.isSuccess {
		return false
	}
	if t.isSuccess {
		return reflect.DeepEqual(t.value, other.value)
	}
	return reflect.DeepEqual(t.err, other.err)
}

func (t Try[T]) String() string {
	if t.isSuccess {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%v)", t.err)
}

func (t Try[T]) isTry() {}

func (t Try[T]) payload() any {
	if t.isSuccess {
		return t.value
	}
	return t.err
}

// IsTry reports whether x is a Try of any element type. Pointers to a Try
// are not Try values.
func IsTry(x any) bool {
	_, ok := asTry(x)
	return ok
}

func asTry(x any) (tryValue, bool) {
	if x == nil || reflect.ValueOf(x).Kind() == reflect.Pointer {
		return nil, false
	}
	t, ok := x.(tryValue)
	return t, ok
}

// FromSuccess returns the value of a Success. It panics with ErrNotSuccess
// when t is a Failure.
func FromSuccess[T any](t Try[T]) T {
	if !t.isSuccess {
		panic(fmt.Errorf("%w: %v", ErrNotSuccess, t.err))
	}
	return t.value
}

// FromFailure returns the fault of a Failure. It panics with ErrNotFailure
// when t is a Success.
func FromFailure[T any](t Try[T]) error {
	if t.isSuccess {
		panic(ErrNotFailure)
	}
	return t.err
}
