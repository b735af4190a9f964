package filter

// WalkExpressions traverses the expression tree depth-first, calling fn for
// each node. The traversal continues into child nodes only if fn returns true.
func WalkExpressions(expr Expression, fn func(Expression) bool) {
	if expr == nil {
		return
	}

	if !fn(expr) {
		return
	}

	switch node := expr.(type) {
	case *OperatorExpression:
		for _, operand := range node.Operands {
			WalkExpressions(operand, fn)
		}
	case *PropertyExpression:
		WalkExpressions(node.Key, fn)
		WalkExpressions(node.Value, fn)
	case *ValueAndPropertyExpression:
		WalkExpressions(node.Value, fn)
		WalkExpressions(node.Properties, fn)
	}
}
