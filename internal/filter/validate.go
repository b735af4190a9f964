package filter

import (
	"github.com/treefilter/treefilter/internal/errors"
)

// validateExpressions walks every parsed segment expression and rejects
// structurally invalid trees. All violations are aggregated so the caller
// sees every problem at once.
func validateExpressions(exprs []Expression) error {
	var merr *errors.MultiError

	for i, expr := range exprs {
		last := i == len(exprs)-1

		if err := validateExpression(expr, last, false); err != nil {
			merr = merr.Append(err)
		}
	}

	return merr.ErrorOrNil()
}

// validateExpression checks a single expression tree. allowMatchAll is true
// only for the root of the final top-level segment; inProperty is true inside
// a [...] property filter, where literal separators are legal.
func validateExpression(expr Expression, allowMatchAll, inProperty bool) error {
	switch node := expr.(type) {
	case *ValueExpression:
		if node.MatchAll() && !allowMatchAll {
			return NewValidationError("'**' may only appear as the final path segment", node.String(), ErrorCodeMisplacedMatchAll)
		}

		if !inProperty && containsUnescapedSeparator(node.Value) {
			return NewValidationError("value contains an unescaped path separator", node.String(), ErrorCodeSeparatorInValue)
		}

		if _, err := node.Compile(); err != nil {
			return NewValidationError("pattern does not compile: "+err.Error(), node.String(), ErrorCodeUnknown)
		}

		return nil

	case *OperatorExpression:
		if node.Op == OperatorNot && len(node.Operands) != 1 {
			return NewValidationError("negation must have exactly one operand", node.String(), ErrorCodeInvalidArity)
		}

		if node.Op != OperatorNot && len(node.Operands) < 2 {
			return NewValidationError("logical operator must have at least two operands", node.String(), ErrorCodeInvalidArity)
		}

		for _, operand := range node.Operands {
			if err := validateExpression(operand, false, inProperty); err != nil {
				return err
			}
		}

		return nil

	case *PropertyExpression:
		if err := validateExpression(node.Key, false, true); err != nil {
			return err
		}

		return validateExpression(node.Value, false, true)

	case *ValueAndPropertyExpression:
		if err := validateExpression(node.Value, false, false); err != nil {
			return err
		}

		return validateExpression(node.Properties, false, true)

	case *NopExpression:
		return nil

	default:
		return NewValidationError("unknown expression type", expr.String(), ErrorCodeUnknown)
	}
}

// containsUnescapedSeparator reports whether a value fragment contains a path
// separator that was not escaped by the user. Escaped separators are stored
// as `\/` by the lexer.
func containsUnescapedSeparator(value string) bool {
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '\\':
			i++ // skip the escaped character
		case byte(PathSeparator):
			return true
		}
	}

	return false
}
