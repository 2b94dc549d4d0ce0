// Package calc is a small integer calculator whose fallible steps report
// failures as rop results with string payloads.
package calc

//go:generate mockgen -source=calc.go -destination=mock_calc/mock_calc.go -package=mock_calc

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/solo"
	"github.com/ib-77/ropresult/pkg/rop/try"
)

const (
	ErrDivisionByZero = "Division by zero"
	invalidIntPrefix  = "Invalid integer: "
	tooSmallPrefix    = "Value too small: "
)

// Parser turns text into integers.
type Parser interface {
	ParseInt(s string) rop.Result[int, string]
}

// StrconvParser parses base 10 integers with strconv.
type StrconvParser struct{}

func (StrconvParser) ParseInt(s string) rop.Result[int, string] {
	return ParseInt(s)
}

func ParseInt(s string) rop.Result[int, string] {
	n, err := strconv.Atoi(s)
	if err != nil {
		return rop.Err[int](invalidIntPrefix + s)
	}
	return rop.Ok[int, string](n)
}

func SafeDiv[N constraints.Integer](a, b N) rop.Result[N, string] {
	if b == 0 {
		return rop.Err[N](ErrDivisionByZero)
	}
	return rop.Ok[N, string](a / b)
}

// ParseDivide parses a and b and divides them. The first failure wins; b is
// not parsed when a fails.
func ParseDivide(p Parser, a, b string) rop.Result[int, string] {
	return try.Do(func(s *try.Scope[string]) rop.Result[int, string] {
		x := try.Get(s, p.ParseInt(a))
		y := try.Get(s, p.ParseInt(b))
		return SafeDiv(x, y)
	})
}

// ParseDivideGuard is ParseDivide written with guard clauses.
func ParseDivideGuard(p Parser, a, b string) rop.Result[int, string] {
	x, failed, ok := try.Guard[int](p.ParseInt(a))
	if !ok {
		return failed
	}
	y, failed, ok := try.Guard[int](p.ParseInt(b))
	if !ok {
		return failed
	}
	return SafeDiv(x, y)
}

// ParseDivideAndDouble divides a by b, requires the quotient to exceed 10,
// doubles it and adds the divisor.
func ParseDivideAndDouble(p Parser, a, b string) rop.Result[int, string] {
	return try.Do(func(s *try.Scope[string]) rop.Result[int, string] {
		var x, y int
		try.Let(s, &x, p.ParseInt(a))
		try.Let(s, &y, p.ParseInt(b))

		doubled := solo.AndThen(SafeDiv(x, y), func(v int) rop.Result[int, string] {
			if v > 10 {
				return rop.Ok[int, string](v * 2)
			}
			return rop.Err[int](tooSmallPrefix + strconv.Itoa(v))
		})
		return solo.Map(doubled, func(v int) int { return v + y })
	})
}

// Describe renders r the way the command line tool prints it.
func Describe(a, b string, r rop.Result[int, string]) string {
	return solo.MapOrElse(r,
		func() string { return fmt.Sprintf("Error for (%s, %s): %s", a, b, r.UnwrapErr()) },
		func(v int) string { return fmt.Sprintf("Result for (%s, %s): %d", a, b, v) })
}
