package lite

import (
	"context"
	"sync"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/core"
	"github.com/ib-77/ropresult/pkg/rop/solo"
)

func Run[T, E any](ctx context.Context, inputCh <-chan rop.Result[T, E],
	engine core.Engine[T, T, E], lines int) <-chan rop.Result[T, E] {
	return Turnout(ctx, inputCh, engine, lines)
}

func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E],
	engine core.Engine[In, Out, E], lines int) <-chan rop.Result[Out, E] {

	out := make(chan rop.Result[Out, E])
	wg := &sync.WaitGroup{}

	for i := 0; i < max(lines, 1); i++ {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Validate fails a successful input with the returned payload when validate
// reports it invalid.
func Validate[T, E any](validate func(ctx context.Context, in T) (valid bool, failure E)) core.Engine[T, T, E] {
	return func(ctx context.Context, input rop.Result[T, E]) <-chan rop.Result[T, E] {
		return core.Once(solo.AndThen(input, func(v T) rop.Result[T, E] {
			if valid, failure := validate(ctx, v); !valid {
				return rop.Err[T](failure)
			}
			return input
		}))
	}
}

func Map[In, Out, E any](mapOnSuccess func(ctx context.Context, r In) Out) core.Engine[In, Out, E] {
	return func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E] {
		return core.Once(solo.Map(input, func(v In) Out {
			return mapOnSuccess(ctx, v)
		}))
	}
}

func AndThen[In, Out, E any](onSuccess func(ctx context.Context, r In) rop.Result[Out, E]) core.Engine[In, Out, E] {
	return func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E] {
		return core.Once(solo.AndThen(input, func(v In) rop.Result[Out, E] {
			return onSuccess(ctx, v)
		}))
	}
}

// Inspect runs side effects on either branch and forwards the input.
// Nil callbacks are skipped.
func Inspect[T, E any](onSuccess func(ctx context.Context, r T), onError func(ctx context.Context, e E)) core.Engine[T, T, E] {
	return func(ctx context.Context, input rop.Result[T, E]) <-chan rop.Result[T, E] {
		if onSuccess != nil {
			input = input.Inspect(func(v T) { onSuccess(ctx, v) })
		}
		if onError != nil {
			input = input.InspectErr(func(e E) { onError(ctx, e) })
		}
		return core.Once(input)
	}
}

type FinallyHandlers[In, Out, E any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, e E) Out
}

// Finally collapses every input result to a value, in input order.
func Finally[In, Out, E any](ctx context.Context, input <-chan rop.Result[In, E],
	handlers FinallyHandlers[In, Out, E]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-input:
				if !ok {
					return
				}

				v := solo.MapOrElse(in,
					func() Out {
						e, _ := in.Error()
						return handlers.OnError(ctx, e)
					},
					func(r In) Out {
						return handlers.OnSuccess(ctx, r)
					})

				select {
				case out <- v:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}

// Try runs a function returning (Out, error) on successful inputs.
func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) core.Engine[In, Out, error] {
	return func(ctx context.Context, input rop.Result[In, error]) <-chan rop.Result[Out, error] {
		return core.Once(solo.AndThen(input, func(v In) rop.Result[Out, error] {
			out, err := onTryExecute(ctx, v)
			return rop.Of(out, err)
		}))
	}
}
