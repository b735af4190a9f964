package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treefilter/treefilter/internal/filter"
)

func TestValueExpression_Compile(t *testing.T) {
	t.Parallel()

	expr := filter.NewValueExpression("Fixture.*")

	re, err := expr.Compile()
	require.NoError(t, err)

	// The pattern is anchored to the whole segment.
	assert.True(t, re.MatchString("FixtureA"))
	assert.False(t, re.MatchString("MyFixtureA"))

	// Repeated calls return the same compiled pattern.
	again, err := expr.Compile()
	require.NoError(t, err)
	assert.Same(t, re, again)
}

func TestValueExpression_CompileError(t *testing.T) {
	t.Parallel()

	expr := filter.NewValueExpression("(")

	_, err := expr.Compile()
	require.Error(t, err)

	// The error is cached too.
	_, again := expr.Compile()
	assert.Equal(t, err, again)
}

func TestValueExpression_MatchAll(t *testing.T) {
	t.Parallel()

	assert.True(t, filter.NewValueExpression(".*.*").MatchAll())
	assert.False(t, filter.NewValueExpression(".*").MatchAll())
	assert.False(t, filter.NewValueExpression("A").MatchAll())
}

func TestExpression_String(t *testing.T) {
	t.Parallel()

	a := filter.NewValueExpression("A")
	b := filter.NewValueExpression("B")
	c := filter.NewValueExpression("C")

	tests := []struct {
		name     string
		expr     filter.Expression
		expected string
	}{
		{
			name:     "value",
			expr:     a,
			expected: "A",
		},
		{
			name:     "binary and",
			expr:     &filter.OperatorExpression{Op: filter.OperatorAnd, Operands: []filter.Expression{a, b}},
			expected: "(A&B)",
		},
		{
			name:     "n-ary or",
			expr:     &filter.OperatorExpression{Op: filter.OperatorOr, Operands: []filter.Expression{a, b, c}},
			expected: "(A|B|C)",
		},
		{
			name:     "not",
			expr:     &filter.OperatorExpression{Op: filter.OperatorNot, Operands: []filter.Expression{a}},
			expected: "!A",
		},
		{
			name:     "property",
			expr:     &filter.PropertyExpression{Key: a, Value: b},
			expected: "A=B",
		},
		{
			name: "value with properties",
			expr: &filter.ValueAndPropertyExpression{
				Value:      a,
				Properties: &filter.PropertyExpression{Key: b, Value: c},
			},
			expected: "A[B=C]",
		},
		{
			name:     "nop",
			expr:     &filter.NopExpression{},
			expected: "<nop>",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.expr.String())
		})
	}
}

func TestWalkExpressions(t *testing.T) {
	t.Parallel()

	parsed, err := filter.Parse("/A|B/C[k=v]")
	require.NoError(t, err)

	var values []string

	for _, expr := range parsed.Expressions() {
		filter.WalkExpressions(expr, func(node filter.Expression) bool {
			if value, ok := node.(*filter.ValueExpression); ok {
				values = append(values, value.Value)
			}

			return true
		})
	}

	assert.Equal(t, []string{"A", "B", "C", "k", "v"}, values)
}

func TestWalkExpressions_StopsWhenFnReturnsFalse(t *testing.T) {
	t.Parallel()

	parsed, err := filter.Parse("A|B|C")
	require.NoError(t, err)

	var visited int

	filter.WalkExpressions(parsed.Expressions()[0], func(filter.Expression) bool {
		visited++
		return false
	})

	assert.Equal(t, 1, visited)
}
