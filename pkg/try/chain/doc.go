// Package chain provides a fluent wrapper around try.Try[T] carrying a
// context.Context through every step.
//
// Key operations:
// - Start/FromValue/Run: begin a chain from a Try[T], a value or a thunk
// - Then: bind to a step returning Try[U] (not captured)
// - ThenTry: call a (U, error) step under capture
// - Map: transform the successful value under capture
// - Ensure/OnFailure: side effects without changing the result
// - Recover/OrElse: leave the failure track
// - Finally: collapse the chain into a final value
//
// Capture steps read try.Options from the context (see
// try.WithCaptureOptions).
package chain
