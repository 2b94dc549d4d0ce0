package core

import (
	"context"
	"sync"

	"github.com/ib-77/ropresult/pkg/rop"
)

// Engine turns one input result into at most one output result.
type Engine[In, Out, E any] func(ctx context.Context, input rop.Result[In, E]) <-chan rop.Result[Out, E]

// Locomotive pulls results from inputCh, runs engine on each and forwards the
// outputs to outCh until inputCh is closed or ctx is done.
func Locomotive[In, Out, E any](ctx context.Context, inputCh <-chan rop.Result[In, E], outCh chan<- rop.Result[Out, E],
	engine Engine[In, Out, E], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					continue
				}

				select {
				case <-ctx.Done():
					return
				case outCh <- pr:
				}
			}
		}
	}
}

// Once returns a closed channel holding r, for engines that compute their
// output synchronously.
func Once[T, E any](r rop.Result[T, E]) <-chan rop.Result[T, E] {
	ch := make(chan rop.Result[T, E], 1)
	ch <- r
	close(ch)
	return ch
}
