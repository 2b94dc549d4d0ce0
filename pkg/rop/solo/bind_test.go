//go:build !rop_no_andor

package solo

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropresult/pkg/rop"
)

func TestAndThen(t *testing.T) {
	t.Parallel()

	toString := func(v int) rop.Result[string, string] {
		return rop.Ok[string, string](strconv.Itoa(v))
	}

	assert.True(t, rop.Equal(rop.Ok[string, string]("3"), AndThen(rop.Ok[int, string](3), toString)))

	failing := func(v int) rop.Result[string, string] { return rop.Err[string]("inner") }
	assert.True(t, rop.Equal(rop.Err[string]("inner"), AndThen(rop.Ok[int, string](3), failing)))
}

func TestAndThen_ShortCircuit(t *testing.T) {
	t.Parallel()

	calls := 0
	src := rop.Err[int]("outer")
	out := AndThen(src, func(v int) rop.Result[string, string] {
		calls++
		return rop.Ok[string, string]("never")
	})

	assert.Zero(t, calls)
	assert.True(t, rop.Equal(rop.Err[string]("outer"), out))
	assert.Equal(t, src.Id(), out.Id())
}

func TestAndThen_RightIdentity(t *testing.T) {
	t.Parallel()

	for _, in := range []rop.Result[int, string]{rop.Ok[int, string](5), rop.Err[int]("e")} {
		out := AndThen(in, func(v int) rop.Result[int, string] { return rop.Ok[int, string](v) })
		assert.True(t, rop.Equal(in, out))
	}
}

func TestAndThen_Associativity(t *testing.T) {
	t.Parallel()

	f := func(v int) rop.Result[int, string] {
		if v < 0 {
			return rop.Err[int]("negative")
		}
		return rop.Ok[int, string](v - 5)
	}
	g := func(v int) rop.Result[string, string] { return rop.Ok[string, string](strconv.Itoa(v)) }

	for _, v := range []int{-1, 3, 10} {
		in := rop.Ok[int, string](v)
		left := AndThen(AndThen(in, f), g)
		right := AndThen(in, func(x int) rop.Result[string, string] { return AndThen(f(x), g) })
		assert.True(t, rop.Equal(left, right), "value %d", v)
	}
}

func TestAndThenVoid(t *testing.T) {
	t.Parallel()

	chained := AndThenVoid(rop.OkVoid[failure](), func() rop.Result[string, failure] {
		return rop.Ok[string, failure]("side effect")
	})
	assert.True(t, rop.Equal(rop.Ok[string, failure]("side effect"), chained))

	calls := 0
	chainedErr := AndThenVoid(rop.ErrVoid(failure{"void fail"}), func() rop.Result[string, failure] {
		calls++
		return rop.Ok[string, failure]("side effect")
	})
	assert.True(t, rop.Equal(rop.Err[string](failure{"void fail"}), chainedErr))
	assert.Zero(t, calls)
}

func TestAndVoid(t *testing.T) {
	t.Parallel()

	next := rop.Ok[int, string](2)
	assert.True(t, rop.Equal(next, AndVoid(rop.OkVoid[string](), next)))
	assert.True(t, rop.Equal(rop.Err[int]("first"), AndVoid(rop.ErrVoid("first"), next)))
}
