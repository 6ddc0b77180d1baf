package main

import (
	"errors"
	"fmt"
	"github.com/andywarui/rsheet/contracts"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
	"math"
	"strings"
	"sync"
)

// ExpressionExecutor evaluates set expressions. It never touches the cell store:
// everything it needs arrives through the variables map.
type ExpressionExecutor struct {
	compilerOptions []expr.Option
	vmPool          sync.Pool
}

var ExpressionError = errors.New("Expression error")

var UnknownCellError = errors.New("cell has no value")

var DivisionByZeroError = errors.New("division by zero")

var UnsupportedResultError = errors.New("unsupported result type")

func NewExpressionExecutor() *ExpressionExecutor {
	return &ExpressionExecutor{
		compilerOptions: []expr.Option{
			expr.DisableAllBuiltins(),
			maxFunction,
			minFunction,
			sumFunction,
			avgFunction,
		},

		vmPool: sync.Pool{
			New: func() any {
				return new(vm.VM)
			},
		},
	}
}

func (e *ExpressionExecutor) Evaluate(expression string, vars contracts.Variables) (contracts.CellValue, error) {
	value, err := e.doEvaluate(expression, vars)
	if err != nil {
		return contracts.NoneValue, fmt.Errorf("%w: %w", ExpressionError, err)
	}

	return value, nil
}

func (e *ExpressionExecutor) doEvaluate(expression string, vars contracts.Variables) (contracts.CellValue, error) {
	err := e.checkCellRefs(expression, vars)
	if err != nil {
		return contracts.NoneValue, err
	}

	env := make(map[string]any, len(vars))
	for cellId, value := range vars {
		env[cellId] = value.Native()
	}

	program, err := expr.Compile(expression, append([]expr.Option{expr.Env(env)}, e.compilerOptions...)...)
	if err != nil {
		return contracts.NoneValue, compactError(err)
	}

	v := e.vmPool.Get().(*vm.VM)
	output, err := v.Run(program, env)
	e.vmPool.Put(v)
	if err != nil {
		return contracts.NoneValue, compactError(err)
	}

	return toCellValue(output)
}

// checkCellRefs reports the first cell referenced by the expression which has no binding.
// Syntax errors are left for the compiler to report.
func (e *ExpressionExecutor) checkCellRefs(expression string, vars contracts.Variables) error {
	tree, err := parser.Parse(expression)
	if err != nil {
		return nil
	}

	visitor := &FindCellRefsVisitor{}
	ast.Walk(&tree.Node, visitor)

	for _, cellId := range visitor.cellRefs {
		if _, ok := vars[cellId]; !ok {
			return fmt.Errorf("%s: %w", cellId, UnknownCellError)
		}
	}

	return nil
}

// compactError keeps the first line of compiler and runtime errors, dropping the source snippet.
func compactError(err error) error {
	message, _, found := strings.Cut(err.Error(), "\n")
	if !found {
		return err
	}

	return errors.New(message)
}

func toCellValue(output any) (contracts.CellValue, error) {
	switch value := output.(type) {
	case nil:
		return contracts.NoneValue, nil
	case int:
		return contracts.NewIntValue(int64(value)), nil
	case int8:
		return contracts.NewIntValue(int64(value)), nil
	case int16:
		return contracts.NewIntValue(int64(value)), nil
	case int32:
		return contracts.NewIntValue(int64(value)), nil
	case int64:
		return contracts.NewIntValue(value), nil
	case uint:
		return contracts.NewIntValue(int64(value)), nil
	case uint8:
		return contracts.NewIntValue(int64(value)), nil
	case uint16:
		return contracts.NewIntValue(int64(value)), nil
	case uint32:
		return contracts.NewIntValue(int64(value)), nil
	case uint64:
		return contracts.NewIntValue(int64(value)), nil
	case float32:
		return toFloatCellValue(float64(value))
	case float64:
		return toFloatCellValue(value)
	case string:
		return contracts.NewStringValue(value), nil
	case bool:
		return contracts.NewBoolValue(value), nil
	default:
		return contracts.NoneValue, fmt.Errorf("%w: %T", UnsupportedResultError, output)
	}
}

func toFloatCellValue(value float64) (contracts.CellValue, error) {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return contracts.NoneValue, DivisionByZeroError
	}

	return contracts.NewFloatValue(value), nil
}
