package main

import (
	"context"
	"fmt"
	"time"

	"github.com/pbnjay/memory"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/core"
	"github.com/ib-77/ropresult/pkg/rop/lite"
	"github.com/ib-77/ropresult/pkg/rop/solo"
	"github.com/ib-77/ropresult/pkg/rop/try"
)

var (
	countFlag = cli.IntFlag{
		Name:  "n",
		Usage: "number of divisions per run",
		Value: 100000,
	}
	errEveryFlag = cli.IntFlag{
		Name:  "err-every",
		Usage: "every k-th division is by zero",
		Value: 100,
	}
	linesFlag = cli.IntFlag{
		Name:  "lines",
		Usage: "worker lines for the pipeline run",
		Value: 4,
	}
)

var Bench = cli.Command{
	Action: bench,
	Name:   "bench",
	Usage:  "times the propagation styles against each other",
	Flags: []cli.Flag{
		&countFlag,
		&errEveryFlag,
		&linesFlag,
	},
}

type divisionError struct {
	dividend int
}

func divideResult(a, b float64) rop.Result[float64, divisionError] {
	if b == 0 {
		return rop.Err[float64](divisionError{dividend: int(a)})
	}
	return rop.Ok[float64, divisionError](a / b)
}

func divisor(i, errEvery int) float64 {
	if i%errEvery == 0 {
		return 0
	}
	return 2
}

type tally struct {
	sum    float64
	errors int
}

func (t *tally) add(r rop.Result[float64, divisionError]) {
	if v, ok := r.Value(); ok {
		t.sum += v
		return
	}
	t.errors++
}

func bench(c *cli.Context) error {
	n := c.Int(countFlag.Name)
	errEvery := c.Int(errEveryFlag.Name)
	if n <= 0 || errEvery <= 0 {
		return fmt.Errorf("--%s and --%s must be positive", countFlag.Name, errEveryFlag.Name)
	}
	lines := c.Int(linesFlag.Name)

	fmt.Printf("n=%d err-every=%d total memory=%d MiB\n", n, errEvery, memory.TotalMemory()>>20)

	styles := []struct {
		name string
		run  func(i int) rop.Result[float64, divisionError]
	}{
		{"try.Get", func(i int) rop.Result[float64, divisionError] {
			return try.Do(func(s *try.Scope[divisionError]) rop.Result[float64, divisionError] {
				v := try.Get(s, divideResult(float64(i), divisor(i, errEvery)))
				return rop.Ok[float64, divisionError](v)
			})
		}},
		{"try.Let", func(i int) rop.Result[float64, divisionError] {
			return try.Do(func(s *try.Scope[divisionError]) rop.Result[float64, divisionError] {
				var v float64
				try.Let(s, &v, divideResult(float64(i), divisor(i, errEvery)))
				return rop.Ok[float64, divisionError](v)
			})
		}},
		{"try.Guard", func(i int) rop.Result[float64, divisionError] {
			v, failed, ok := try.Guard[float64](divideResult(float64(i), divisor(i, errEvery)))
			if !ok {
				return failed
			}
			return rop.Ok[float64, divisionError](v)
		}},
		{"solo.AndThen", func(i int) rop.Result[float64, divisionError] {
			return solo.AndThen(divideResult(float64(i), divisor(i, errEvery)),
				func(v float64) rop.Result[float64, divisionError] {
					return rop.Ok[float64, divisionError](v)
				})
		}},
	}

	for _, style := range styles {
		var t tally
		start := time.Now()
		for i := 1; i <= n; i++ {
			t.add(style.run(i))
		}
		fmt.Printf("%-14s %12v sum=%.0f errors=%d\n", style.name, time.Since(start), t.sum, t.errors)
	}

	return pipeline(c.Context, n, errEvery, lines)
}

func pipeline(ctx context.Context, n, errEvery, lines int) error {
	ctx = core.WithWorkerOptions(ctx, lines)
	workers := core.GetWorkerMaxCount(ctx, 1)

	start := time.Now()
	out := core.FromChanMany(ctx,
		lite.Finally(ctx,
			lite.Turnout(ctx,
				core.ToChanManyResults[int, divisionError](ctx, lo.RangeFrom(1, n)),
				lite.AndThen(func(_ context.Context, i int) rop.Result[float64, divisionError] {
					return divideResult(float64(i), divisor(i, errEvery))
				}),
				workers),
			lite.FinallyHandlers[float64, int, divisionError]{
				OnSuccess: func(context.Context, float64) int { return 0 },
				OnError:   func(context.Context, divisionError) int { return 1 },
			}))

	fmt.Printf("%-14s %12v lines=%d errors=%d\n", "lite", time.Since(start), workers, lo.Sum(out))
	if len(out) != n {
		return fmt.Errorf("pipeline produced %d results for %d inputs", len(out), n)
	}
	return nil
}
