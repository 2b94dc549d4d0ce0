package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ib-77/ropresult/pkg/calc"
	"github.com/ib-77/ropresult/pkg/rop"
	"github.com/ib-77/ropresult/pkg/rop/solo"
)

var doubleFlag = cli.BoolFlag{
	Name:  "double",
	Usage: "require a quotient above 10, double it and add the divisor",
}

var Divide = cli.Command{
	Action:    divide,
	Name:      "divide",
	Usage:     "parses two integers and divides them",
	ArgsUsage: "<dividend> <divisor>",
	Flags: []cli.Flag{
		&doubleFlag,
	},
}

func divide(context *cli.Context) error {
	if context.Args().Len() != 2 {
		return fmt.Errorf("expected <dividend> <divisor>")
	}
	a, b := context.Args().Get(0), context.Args().Get(1)

	var res rop.Result[int, string]
	if context.Bool(doubleFlag.Name) {
		res = calc.ParseDivideAndDouble(calc.StrconvParser{}, a, b)
	} else {
		res = calc.ParseDivide(calc.StrconvParser{}, a, b)
	}

	fmt.Println(calc.Describe(a, b, res))
	return solo.MapOrElse(res,
		func() error { return cli.Exit("", 2) },
		func(int) error { return nil })
}
