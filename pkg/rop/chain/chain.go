package chain

import (
	"context"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx    context.Context
	result rop.Result[T, E]
}

// Start creates a new chain from a rop.Result
func Start[T, E any](ctx context.Context, result rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T, E any](ctx context.Context, value T) *Chain[T, E] {
	return &Chain[T, E]{
		ctx:    ctx,
		result: rop.Ok[T, E](value),
	}
}

// Result returns the underlying rop.Result
func (c *Chain[T, E]) Result() rop.Result[T, E] {
	return c.result
}

// Context returns the context carried by the chain
func (c *Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then chains a function that returns rop.Result[U, E]
func Then[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) rop.Result[U, E]) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: solo.AndThen(c.result, func(v T) rop.Result[U, E] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T, error], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U, error] {
	return Then(c, func(ctx context.Context, v T) rop.Result[U, error] {
		u, err := tryOnSuccess(ctx, v)
		return rop.Of(u, err)
	})
}

// Map chains a pure transformation function
func Map[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U) *Chain[U, E] {
	return &Chain[U, E]{
		ctx: c.ctx,
		result: solo.Map(c.result, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T, E]) Ensure(onSuccess func(context.Context, T)) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: c.result.Inspect(func(v T) {
			onSuccess(c.ctx, v)
		}),
	}
}

// Recover replaces a failure with the result of onFailure
func (c *Chain[T, E]) Recover(onFailure func(context.Context, E) rop.Result[T, E]) *Chain[T, E] {
	return &Chain[T, E]{
		ctx: c.ctx,
		result: c.result.OrElse(func(e E) rop.Result[T, E] {
			return onFailure(c.ctx, e)
		}),
	}
}

// Finally collapses the chain into a final value
func Finally[T, U, E any](c *Chain[T, E], onSuccess func(context.Context, T) U, onFailure func(context.Context, E) U) U {
	return solo.MapOrElse(c.result,
		func() U {
			e, _ := c.result.Error()
			return onFailure(c.ctx, e)
		},
		func(v T) U {
			return onSuccess(c.ctx, v)
		})
}

// RepeatUntil applies onSuccess at least once and keeps applying it while
// until holds for the new value. It stops at the first failure.
func (c *Chain[T, E]) RepeatUntil(onSuccess func(context.Context, T) rop.Result[T, E],
	until func(context.Context, T) bool) *Chain[T, E] {

	if c.result.IsErr() {
		return c
	}

	for {
		c = Then(c, onSuccess)

		v, ok := c.result.Value()
		if !ok || !until(c.ctx, v) {
			return c
		}
	}
}

// While applies onSuccess as long as the chain succeeds and while holds.
func (c *Chain[T, E]) While(onSuccess func(context.Context, T) rop.Result[T, E],
	while func(context.Context, T) bool) *Chain[T, E] {

	for {
		v, ok := c.result.Value()
		if !ok || !while(c.ctx, v) {
			return c
		}
		c = Then(c, onSuccess)
	}
}

// Or returns the first succeeding chain of c and alternatives, or the last
// chain when all of them fail.
func (c *Chain[T, E]) Or(alternatives ...*Chain[T, E]) *Chain[T, E] {
	out := c
	for _, alt := range alternatives {
		if out.result.IsOk() {
			return out
		}
		out = &Chain[T, E]{ctx: out.ctx, result: out.result.Or(alt.result)}
	}
	return out
}

// And returns the first failing chain of c and required, or the last chain
// when all of them succeed. The context of c is kept.
func (c *Chain[T, E]) And(required ...*Chain[T, E]) *Chain[T, E] {
	out := c
	for _, req := range required {
		out = &Chain[T, E]{ctx: c.ctx, result: out.result.And(req.result)}
	}
	return out
}
