package solo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/ropresult/pkg/rop"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	all := Collect([]rop.Result[int, string]{rop.Ok[int, string](1), rop.Ok[int, string](2)})
	v, ok := all.Value()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)

	first := rop.Err[int]("first")
	mixed := Collect([]rop.Result[int, string]{rop.Ok[int, string](1), first, rop.Err[int]("second")})
	e, failed := mixed.Error()
	require.True(t, failed)
	assert.Equal(t, "first", e)
	assert.Equal(t, first.Id(), mixed.Id())

	empty := Collect[int, string](nil)
	v, ok = empty.Value()
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestPartition(t *testing.T) {
	t.Parallel()

	oks, errs := Partition([]rop.Result[int, string]{
		rop.Ok[int, string](1),
		rop.Err[int]("a"),
		rop.Ok[int, string](3),
		rop.Err[int]("b"),
	})
	assert.Equal(t, []int{1, 3}, oks)
	assert.Equal(t, []string{"a", "b"}, errs)
}

func TestJoinErrors(t *testing.T) {
	t.Parallel()

	a, b, c := errors.New("a"), errors.New("b"), errors.New("c")

	joined := JoinErrors([]rop.Result[int, error]{
		rop.Err[int](a),
		rop.Ok[int, error](2),
		rop.Err[int](errors.Join(b, c)),
	})
	e, failed := joined.Error()
	require.True(t, failed)
	for _, want := range []error{a, b, c} {
		assert.ErrorIs(t, e, want)
	}
	assert.Len(t, rop.GetErrors(e), 3)

	clean := JoinErrors([]rop.Result[int, error]{rop.Ok[int, error](1)})
	v, ok := clean.Value()
	assert.True(t, ok)
	assert.Equal(t, []int{1}, v)
}
