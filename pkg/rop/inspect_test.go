//go:build !rop_no_inspect

package rop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspect(t *testing.T) {
	t.Parallel()

	ok := Ok[int, failure](42)
	called := 0
	out := ok.Inspect(func(v int) {
		assert.Equal(t, 42, v)
		called++
	})
	assert.Equal(t, 1, called)
	assert.Equal(t, ok, out)

	err := Err[int](failure{"fail"})
	err.Inspect(func(int) { called++ })
	assert.Equal(t, 1, called)
}

func TestInspectErr(t *testing.T) {
	t.Parallel()

	err := Err[int](failure{"fail"})
	called := 0
	out := err.InspectErr(func(e failure) {
		assert.Equal(t, "fail", e.message)
		called++
	})
	assert.Equal(t, 1, called)
	assert.Equal(t, err, out)

	Ok[int, failure](1).InspectErr(func(failure) { called++ })
	assert.Equal(t, 1, called)
}

func TestVoid_Inspect(t *testing.T) {
	t.Parallel()

	called := 0
	OkVoid[failure]().Inspect(func() { called++ })
	ErrVoid(failure{"fail"}).Inspect(func() { called += 10 })
	assert.Equal(t, 1, called)

	ErrVoid(failure{"fail"}).InspectErr(func(e failure) {
		assert.Equal(t, "fail", e.message)
		called++
	})
	OkVoid[failure]().InspectErr(func(failure) { called += 10 })
	assert.Equal(t, 2, called)
}
