//go:build !rop_no_andor

package rop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnd(t *testing.T) {
	t.Parallel()

	ok1 := Ok[int, failure](1)
	ok2 := Ok[int, failure](2)
	err1 := Err[int](failure{"fail"})
	err2 := Err[int](failure{"other"})

	assert.True(t, Equal(ok2, ok1.And(ok2)))
	assert.True(t, Equal(err2, ok1.And(err2)))

	out := err1.And(ok2)
	assert.True(t, Equal(err1, out))
	assert.Equal(t, err1.Id(), out.Id())
}

func TestOr(t *testing.T) {
	t.Parallel()

	ok1 := Ok[int, failure](1)
	ok2 := Ok[int, failure](2)
	err1 := Err[int](failure{"fail"})
	err2 := Err[int](failure{"other"})

	assert.True(t, Equal(ok2, err1.Or(ok2)))
	assert.True(t, Equal(ok1, ok1.Or(ok2)))
	assert.True(t, Equal(ok1, ok1.Or(err1)))
	assert.True(t, Equal(err2, err1.Or(err2)))
}

func TestOrElse(t *testing.T) {
	t.Parallel()

	calls := 0
	fallback := func(e failure) Result[int, failure] {
		calls++
		if e.message == "recoverable" {
			return Ok[int, failure](123)
		}
		return Err[int](failure{"still: " + e.message})
	}

	assert.True(t, Equal(Ok[int, failure](123), Err[int](failure{"recoverable"}).OrElse(fallback)))
	assert.True(t, Equal(Err[int](failure{"still: fatal"}), Err[int](failure{"fatal"}).OrElse(fallback)))
	assert.Equal(t, 2, calls)

	assert.True(t, Equal(Ok[int, failure](42), Ok[int, failure](42).OrElse(fallback)))
	assert.Equal(t, 2, calls, "fallback must not run on success")
}

func TestVoid_AndOr(t *testing.T) {
	t.Parallel()

	ok := OkVoid[string]()
	err1 := ErrVoid("first")
	err2 := ErrVoid("second")

	assert.True(t, EqualVoid(err2, ok.And(err2)))
	assert.True(t, EqualVoid(err1, err1.And(ok)))
	assert.True(t, EqualVoid(ok, err1.Or(ok)))
	assert.True(t, EqualVoid(err2, err1.Or(err2)))
	assert.True(t, EqualVoid(ok, ok.Or(err1)))

	recovered := err1.OrElse(func(e string) Void[string] {
		assert.Equal(t, "first", e)
		return OkVoid[string]()
	})
	assert.True(t, recovered.IsOk())
	assert.True(t, ok.OrElse(func(string) Void[string] { return err2 }).IsOk())
}
