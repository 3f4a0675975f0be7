// Package try provides Try[T], a value holding either the successful result
// of a computation or the fault it raised. Panics and returned errors are
// both folded into the same Failure case so fallible steps compose without
// branching at every call site.
//
// Highlights:
// - Success/Failure: construct Try[T]
// - Run/RunE/RunWith: execute a thunk and capture its outcome
// - OrElse/OrRecover: capture with a default or a recovery step
// - Wrap*: lift a function so each call returns a Try
// - Map/Pure/Apply/Return/Bind: functor, applicative and monad operations
// - FromTry/Get/GetOrElse/Fold: extract the payload
//
// Map and Apply run the transformation under capture. Bind does not: a panic
// raised by the function passed to Bind reaches the caller of Bind.
package try
