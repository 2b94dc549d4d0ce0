// Package lite provides lightweight channel-lifted helpers that wrap solo
// primitives for concurrent pipelines of rop.Result[T, E]. It is designed for
// simple fan-out/fan-in flows.
//
// Common usage:
// - Run: execute an engine over an input channel with a fixed number of lines
// - Validate/Map/AndThen/Inspect: lift solo operations to engines
// - Try: lift a function returning (Out, error)
// - Turnout: compose stages that change the success type
// - Finally: map Result[In, E] to Out on completion
//
// Output order is the input order only when a stage runs on one line.
package lite
