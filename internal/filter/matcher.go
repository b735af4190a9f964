package filter

import (
	"github.com/treefilter/treefilter/internal/properties"
)

// evaluate checks a single path segment against one expression tree.
// Compilation errors cannot occur here: every pattern was compiled during
// validation.
func evaluate(expr Expression, segment string, bag properties.Bag) bool {
	switch node := expr.(type) {
	case *ValueExpression:
		return matchValue(node, segment)

	case *OperatorExpression:
		switch node.Op {
		case OperatorNot:
			return !evaluate(node.Operands[0], segment, bag)

		case OperatorAnd:
			for _, operand := range node.Operands {
				if !evaluate(operand, segment, bag) {
					return false
				}
			}

			return true

		case OperatorOr:
			for _, operand := range node.Operands {
				if evaluate(operand, segment, bag) {
					return true
				}
			}

			return false

		default:
			return false
		}

	case *ValueAndPropertyExpression:
		return matchValue(node.Value, segment) && matchProperties(node.Properties, bag)

	case *PropertyExpression:
		return matchProperties(node, bag)

	case *NopExpression:
		return true

	default:
		return false
	}
}

// matchProperties evaluates a property filter against a node's property bag.
// A leaf key=value predicate is satisfied if any key/value entry in the bag
// matches both patterns; entries of other property kinds never satisfy a
// predicate.
func matchProperties(expr Expression, bag properties.Bag) bool {
	switch node := expr.(type) {
	case *PropertyExpression:
		for _, prop := range bag {
			kv, ok := prop.(properties.KeyValue)
			if !ok {
				continue
			}

			if matchValue(node.Key, kv.Key) && matchValue(node.Value, kv.Value) {
				return true
			}
		}

		return false

	case *ValueExpression:
		// A bare token inside brackets is a value-only predicate.
		for _, prop := range bag {
			if kv, ok := prop.(properties.KeyValue); ok && matchValue(node, kv.Value) {
				return true
			}
		}

		return false

	case *OperatorExpression:
		switch node.Op {
		case OperatorNot:
			return !matchProperties(node.Operands[0], bag)

		case OperatorAnd:
			for _, operand := range node.Operands {
				if !matchProperties(operand, bag) {
					return false
				}
			}

			return true

		case OperatorOr:
			for _, operand := range node.Operands {
				if matchProperties(operand, bag) {
					return true
				}
			}

			return false

		default:
			return false
		}

	case *NopExpression:
		return true

	default:
		return false
	}
}

// matchValue matches a compiled value pattern against the whole input string.
func matchValue(value *ValueExpression, input string) bool {
	re, err := value.Compile()
	if err != nil {
		return false
	}

	return re.MatchString(input)
}
