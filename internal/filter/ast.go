package filter

import (
	"regexp"
	"strings"
	"sync"
)

// matchAllValue is the pattern produced by the two-character literal `**`.
// A segment consisting of exactly this value matches the node at its depth
// and every node below it.
const matchAllValue = ".*.*"

// Expression is the interface that all parsed filter nodes implement.
//
// The variant set is closed: ValueExpression, OperatorExpression,
// PropertyExpression, ValueAndPropertyExpression, and NopExpression.
type Expression interface {
	// expressionNode is a marker method to distinguish expression nodes.
	expressionNode()
	// String returns a string representation of the expression for debugging.
	String() string
}

// Operator is the kind of an OperatorExpression.
type Operator int

const (
	OperatorAnd Operator = iota
	OperatorOr
	OperatorNot
)

// String returns the operator as it appears in filter strings.
func (op Operator) String() string {
	switch op {
	case OperatorAnd:
		return "&"
	case OperatorOr:
		return "|"
	case OperatorNot:
		return "!"
	default:
		return "?"
	}
}

// ValueExpression is a leaf pattern matched against a single path segment or
// property key/value. Value holds regexp fragments produced by the lexer:
// literal characters are escaped and each '*' is stored as ".*".
type ValueExpression struct {
	compiled    *regexp.Regexp
	compileErr  error
	Value       string
	compileOnce sync.Once
}

// NewValueExpression creates a ValueExpression with lazy pattern compilation.
func NewValueExpression(value string) *ValueExpression {
	return &ValueExpression{Value: value}
}

// Compile returns the compiled pattern, anchored to consume a whole segment,
// compiling it on first call. Subsequent calls return the cached pattern and
// any error. Uses sync.Once for thread-safe lazy initialization.
func (v *ValueExpression) Compile() (*regexp.Regexp, error) {
	v.compileOnce.Do(func() {
		v.compiled, v.compileErr = regexp.Compile("^(?:" + v.Value + ")$")
	})

	return v.compiled, v.compileErr
}

// MatchAll reports whether this value is the match-everything-below pattern,
// i.e. the user wrote `**`.
func (v *ValueExpression) MatchAll() bool {
	return v.Value == matchAllValue
}

func (v *ValueExpression) expressionNode() {}
func (v *ValueExpression) String() string  { return v.Value }

// OperatorExpression is a logical combination of child expressions.
// Not has exactly one operand; And and Or have two or more, with repeated
// same-kind operators flattened into a single n-ary node.
type OperatorExpression struct {
	Op       Operator
	Operands []Expression
}

func (o *OperatorExpression) expressionNode() {}

func (o *OperatorExpression) String() string {
	if o.Op == OperatorNot && len(o.Operands) == 1 {
		return "!" + o.Operands[0].String()
	}

	parts := make([]string, len(o.Operands))
	for i, operand := range o.Operands {
		parts[i] = operand.String()
	}

	return "(" + strings.Join(parts, o.Op.String()) + ")"
}

// PropertyExpression is a single key=value predicate over a node's property bag.
type PropertyExpression struct {
	Key   *ValueExpression
	Value *ValueExpression
}

func (p *PropertyExpression) expressionNode() {}
func (p *PropertyExpression) String() string  { return p.Key.String() + "=" + p.Value.String() }

// ValueAndPropertyExpression pairs a node-name pattern with a bracketed
// property filter; both must match for the segment to match.
type ValueAndPropertyExpression struct {
	Value      *ValueExpression
	Properties Expression
}

func (v *ValueAndPropertyExpression) expressionNode() {}

func (v *ValueAndPropertyExpression) String() string {
	return v.Value.String() + "[" + v.Properties.String() + "]"
}

// NopExpression always matches. It is a structural placeholder and is never
// produced by parsing user input.
type NopExpression struct{}

func (n *NopExpression) expressionNode() {}
func (n *NopExpression) String() string  { return "<nop>" }
