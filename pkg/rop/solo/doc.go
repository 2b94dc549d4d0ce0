// Package solo contains single-value, synchronous primitives over
// rop.Result[T, E] and rop.Void[E] that change one of the type parameters.
// Go methods cannot introduce type parameters, so these are functions.
//
// Highlights:
// - Map/MapErr: transform the payload of one branch, forward the other
// - MapOr/MapOrElse: collapse a result to a plain value
// - AndThen: switch to a new Result[U, E] via a function (monadic bind)
// - Flatten: collapse Result[Result[T, E], E] into Result[T, E]
// - Contains/ContainsErr: compare the payload of a comparable result
// - Collect/Partition/JoinErrors: work with slices of results
//
// Each family can be compiled out with its build tag (rop_no_map,
// rop_no_andor, rop_no_contains, rop_no_flatten).
package solo
