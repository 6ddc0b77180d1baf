package main

import (
	"github.com/expr-lang/expr/ast"
)

type FindCellRefsVisitor struct {
	cellRefs []string
}

func (v *FindCellRefsVisitor) Visit(node *ast.Node) {
	if identifierNode, ok := (*node).(*ast.IdentifierNode); ok && IsCellIdentifier(identifierNode.Value) {
		v.cellRefs = append(v.cellRefs, identifierNode.Value)
	}
}
