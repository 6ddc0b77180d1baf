package main

import "github.com/andywarui/rsheet/contracts"

type ExpressionResolver struct {
	store contracts.CellStore
}

func NewExpressionResolver(store contracts.CellStore) *ExpressionResolver {
	return &ExpressionResolver{store: store}
}

func (r *ExpressionResolver) ExtractCellIds(expression string) []string {
	return FindCellIdentifiers(expression)
}

// Resolve snapshots the referenced cells. The store lock is released before it returns,
// so evaluation of the expression never blocks writers.
func (r *ExpressionResolver) Resolve(expression string) contracts.Variables {
	return r.store.GetMany(r.ExtractCellIds(expression))
}
