package contracts

type ExpressionExecutor interface {
	Evaluate(expression string, vars Variables) (CellValue, error)
}

type ExpressionResolver interface {
	ExtractCellIds(expression string) []string
	Resolve(expression string) Variables
}
