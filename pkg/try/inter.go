package try

import (
	"time"

	"github.com/google/uuid"
)

type tryValue interface {
	isTry()
	payload() any
}

// Outcome is the read side shared by every Try[T], regardless of T.
type Outcome interface {
	// IsSuccess returns true if the computation produced a value
	IsSuccess() bool
	// IsFailure returns true if the computation produced a fault
	IsFailure() bool
	// Err returns the captured fault, nil for a Success
	Err() error
	Id() uuid.UUID
	CreatedAt() time.Time
}

// ValueProvider extends Outcome with typed access to the value.
type ValueProvider[T any] interface {
	Outcome
	// Value returns the successful value, the zero value for a Failure
	Value() T
	Get() (T, error)
}

var _ ValueProvider[int] = Try[int]{}
