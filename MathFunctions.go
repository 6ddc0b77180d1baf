package main

import (
	"errors"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm/runtime"
)

var NoArgumentsError = errors.New("function expects at least one argument")

var calculateMax = func(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, NoArgumentsError
	}

	var maxValue any
	for _, arg := range args {
		if maxValue == nil || runtime.Less(maxValue, arg) {
			maxValue = arg
		}
	}
	return maxValue, nil
}

var calculateMin = func(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, NoArgumentsError
	}

	var minValue any
	for _, arg := range args {
		if minValue == nil || runtime.More(minValue, arg) {
			minValue = arg
		}
	}
	return minValue, nil
}

var calculateSum = func(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, NoArgumentsError
	}

	sum := args[0]
	for i := 1; i < len(args); i++ {
		sum = runtime.Add(sum, args[i])
	}
	return sum, nil
}

var calculateAvg = func(args ...any) (any, error) {
	sum, err := calculateSum(args...)
	if err != nil {
		return nil, err
	}
	return runtime.Divide(sum, len(args)), nil
}

var maxFunction = expr.Function("MAX", calculateMax)
var minFunction = expr.Function("MIN", calculateMin)
var sumFunction = expr.Function("SUM", calculateSum)
var avgFunction = expr.Function("AVG", calculateAvg)
