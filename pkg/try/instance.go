package try

// Functor is the mapping capability of Try.
type Functor[A, B any] interface {
	Map(t Try[A], f func(A) B) Try[B]
}

// Applicative lifts values and applies wrapped functions.
type Applicative[A, B any] interface {
	Functor[A, B]
	Pure(v A) Try[A]
	Apply(tf Try[func(A) B], ta Try[A]) Try[B]
}

// Monad sequences computations whose next step depends on the previous value.
type Monad[A, B any] interface {
	Applicative[A, B]
	Return(v A) Try[A]
	Bind(t Try[A], f func(A) Try[B]) Try[B]
}

// Instance is the Try implementation of Monad. Callers that need to pick
// operations at runtime pass an Instance explicitly.
type Instance[A, B any] struct{}

var _ Monad[int, string] = Instance[int, string]{}

func (Instance[A, B]) Map(t Try[A], f func(A) B) Try[B] {
	return Map(t, f)
}

func (Instance[A, B]) Pure(v A) Try[A] {
	return Pure(v)
}

func (Instance[A, B]) Apply(tf Try[func(A) B], ta Try[A]) Try[B] {
	return Apply(tf, ta)
}

func (Instance[A, B]) Return(v A) Try[A] {
	return Return(v)
}

func (Instance[A, B]) Bind(t Try[A], f func(A) Try[B]) Try[B] {
	return Bind(t, f)
}
