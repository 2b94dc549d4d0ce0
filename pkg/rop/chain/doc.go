// Package chain provides a fluent wrapper around rop.Result[T, E] that
// carries a context.Context through every step, built from solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T, E] or value
// - Then: switch to a new Result[U, E] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Recover: replace a failure with a fallback result
// - Finally: collapse the chain into a final value via handlers
// - RepeatUntil/While: loop a same-type step
// - Or/And: pick the first success or the first failure among chains
package chain
