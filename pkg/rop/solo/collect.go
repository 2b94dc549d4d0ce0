package solo

import (
	"errors"

	"github.com/samber/lo"

	"github.com/ib-77/ropresult/pkg/rop"
)

// Collect returns all success payloads in order, or the first failure.
func Collect[T, E any](inputs []rop.Result[T, E]) rop.Result[[]T, E] {
	for _, in := range inputs {
		if in.IsErr() {
			return rop.ErrFrom[[]T, E](in)
		}
	}

	return rop.Ok[[]T, E](lo.Map(inputs, func(in rop.Result[T, E], _ int) T {
		v, _ := in.Value()
		return v
	}))
}

// Partition splits the payloads by branch, keeping input order.
func Partition[T, E any](inputs []rop.Result[T, E]) ([]T, []E) {
	oks := lo.FilterMap(inputs, func(in rop.Result[T, E], _ int) (T, bool) {
		return in.Value()
	})
	errs := lo.FilterMap(inputs, func(in rop.Result[T, E], _ int) (E, bool) {
		return in.Error()
	})
	return oks, errs
}

// JoinErrors is Collect for error payloads that reports every failure,
// joined with errors.Join.
func JoinErrors[T any](inputs []rop.Result[T, error]) rop.Result[[]T, error] {
	oks, errs := Partition(inputs)
	if len(errs) == 0 {
		return rop.Ok[[]T, error](oks)
	}

	flat := lo.FlatMap(errs, func(err error, _ int) []error {
		return rop.GetErrors(err)
	})
	return rop.Err[[]T](errors.Join(flat...))
}
