package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treefilter/treefilter/internal/filter"
)

// parseSegments parses the input and returns the string form of every
// per-segment expression.
func parseSegments(t *testing.T, input string) []string {
	t.Helper()

	parsed, err := filter.Parse(input)
	require.NoError(t, err)

	exprs := parsed.Expressions()

	segments := make([]string, len(exprs))
	for i, expr := range exprs {
		segments[i] = expr.String()
	}

	return segments
}

func TestParser_Segments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "single value",
			input:    "A",
			expected: []string{"A"},
		},
		{
			name:     "rooted path",
			input:    "/A/B",
			expected: []string{"A", "B"},
		},
		{
			name:     "unrooted path",
			input:    "A/B/C",
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "trailing separator is tolerated",
			input:    "A/",
			expected: []string{"A"},
		},
		{
			name:     "wildcard",
			input:    "/A/B*",
			expected: []string{"A", "B.*"},
		},
		{
			name:     "match-all tail",
			input:    "/A/**",
			expected: []string{"A", ".*.*"},
		},
		{
			name:     "repeated or flattens to one n-ary node",
			input:    "A|B|C",
			expected: []string{"(A|B|C)"},
		},
		{
			name:     "repeated and flattens to one n-ary node",
			input:    "A&B&C&D",
			expected: []string{"(A&B&C&D)"},
		},
		{
			name:     "and binds tighter than or",
			input:    "A|B&C",
			expected: []string{"(A|(B&C))"},
		},
		{
			name:     "and binds tighter than or on the left",
			input:    "A&B|C",
			expected: []string{"((A&B)|C)"},
		},
		{
			name:     "parenthesized or stays nested",
			input:    "A|(B|C)",
			expected: []string{"(A|(B|C))"},
		},
		{
			name:     "parentheses override precedence",
			input:    "(A|B)&C",
			expected: []string{"((A|B)&C)"},
		},
		{
			name:     "negation",
			input:    "!A",
			expected: []string{"!A"},
		},
		{
			name:     "negation binds tighter than and",
			input:    "!A&B",
			expected: []string{"(!A&B)"},
		},
		{
			name:     "negated group",
			input:    "!(A|B)",
			expected: []string{"!(A|B)"},
		},
		{
			name:     "double negation",
			input:    "!!A",
			expected: []string{"!!A"},
		},
		{
			name:     "property filter",
			input:    "A[k=v]",
			expected: []string{"A[k=v]"},
		},
		{
			name:     "property filter with logical operators",
			input:    "A[k=v&x=y]",
			expected: []string{"A[(k=v&x=y)]"},
		},
		{
			name:     "property filter with negated predicate",
			input:    "A[!k=v]",
			expected: []string{"A[!k=v]"},
		},
		{
			name:     "bare token property filter",
			input:    "A[fast]",
			expected: []string{"A[fast]"},
		},
		{
			name:     "property value with literal slash",
			input:    "A[k=a/b]",
			expected: []string{"A[k=a/b]"},
		},
		{
			name:     "property filter inside a segment expression",
			input:    "A[k=v]|B",
			expected: []string{"(A[k=v]|B)"},
		},
		{
			name:     "segments with mixed expressions",
			input:    "/Suite/Fixture*|Legacy/!Slow*",
			expected: []string{"Suite", "(Fixture.*|Legacy)", "!Slow.*"},
		},
		{
			name:     "escaped structural characters",
			input:    `A\[1\]`,
			expected: []string{`A\[1\]`},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, parseSegments(t, tc.input))
		})
	}
}

func TestParser_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		expectedCode filter.ErrorCode
		expectedPos  int
	}{
		{
			name:         "unmatched closing paren",
			input:        "A)",
			expectedCode: filter.ErrorCodeUnmatchedParen,
			expectedPos:  1,
		},
		{
			name:         "operator without left operand in group",
			input:        "(|B)",
			expectedCode: filter.ErrorCodeMissingOperand,
			expectedPos:  1,
		},
		{
			name:         "trailing escape",
			input:        `A\`,
			expectedCode: filter.ErrorCodeTrailingEscape,
			expectedPos:  1,
		},
		{
			name:         "unclosed paren",
			input:        "(A",
			expectedCode: filter.ErrorCodeUnclosedParen,
			expectedPos:  0,
		},
		{
			name:         "unclosed bracket",
			input:        "A[k=v",
			expectedCode: filter.ErrorCodeUnclosedBracket,
			expectedPos:  1,
		},
		{
			name:         "unmatched closing bracket",
			input:        "A]",
			expectedCode: filter.ErrorCodeUnmatchedBracket,
			expectedPos:  1,
		},
		{
			name:         "bracket without preceding value",
			input:        "[k=v]",
			expectedCode: filter.ErrorCodePropertyNotAllowed,
			expectedPos:  0,
		},
		{
			name:         "equals outside brackets",
			input:        "A=B",
			expectedCode: filter.ErrorCodeEqualsOutsideProperty,
			expectedPos:  1,
		},
		{
			name:         "second property filter on one value",
			input:        "A[k=v][x=y]",
			expectedCode: filter.ErrorCodePropertyNotAllowed,
			expectedPos:  6,
		},
		{
			name:         "dangling operator",
			input:        "A&",
			expectedCode: filter.ErrorCodeMissingOperand,
			expectedPos:  1,
		},
		{
			name:         "doubled operator",
			input:        "A&&B",
			expectedCode: filter.ErrorCodeMissingOperand,
			expectedPos:  2,
		},
		{
			name:         "leading operator",
			input:        "&A",
			expectedCode: filter.ErrorCodeMissingOperand,
			expectedPos:  0,
		},
		{
			name:         "negation after value",
			input:        "A!B",
			expectedCode: filter.ErrorCodeUnexpectedToken,
			expectedPos:  1,
		},
		{
			name:         "group directly after value",
			input:        "A(B)",
			expectedCode: filter.ErrorCodeUnexpectedToken,
			expectedPos:  1,
		},
		{
			name:         "separator inside group",
			input:        "(A/B)",
			expectedCode: filter.ErrorCodeSeparatorInGroup,
			expectedPos:  2,
		},
		{
			name:         "empty filter",
			input:        "",
			expectedCode: filter.ErrorCodeEmptyExpression,
			expectedPos:  0,
		},
		{
			name:         "separator only",
			input:        "/",
			expectedCode: filter.ErrorCodeEmptyExpression,
			expectedPos:  0,
		},
		{
			name:         "empty segment",
			input:        "A//B",
			expectedCode: filter.ErrorCodeUnexpectedToken,
			expectedPos:  2,
		},
		{
			name:         "empty group",
			input:        "()",
			expectedCode: filter.ErrorCodeUnexpectedToken,
			expectedPos:  1,
		},
		{
			name:         "empty brackets",
			input:        "A[]",
			expectedCode: filter.ErrorCodeUnexpectedToken,
			expectedPos:  2,
		},
		{
			name:         "equals without value",
			input:        "A[k=]",
			expectedCode: filter.ErrorCodeUnexpectedToken,
			expectedPos:  4,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			parsed, err := filter.Parse(tc.input)
			require.Error(t, err)
			assert.Nil(t, parsed)

			parseErr := filter.ParseError{}
			require.ErrorAs(t, err, &parseErr)

			assert.Equal(t, tc.expectedCode, parseErr.ErrorCode)
			assert.Equal(t, tc.expectedPos, parseErr.Position)
			assert.Equal(t, tc.input, parseErr.Query)
		})
	}
}

func TestParser_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		expectedCode filter.ErrorCode
	}{
		{
			name:         "match-all before other segments",
			input:        "/**/B",
			expectedCode: filter.ErrorCodeMisplacedMatchAll,
		},
		{
			name:         "match-all combined with or",
			input:        "**|A",
			expectedCode: filter.ErrorCodeMisplacedMatchAll,
		},
		{
			name:         "match-all combined with an operator",
			input:        "/A/**&B",
			expectedCode: filter.ErrorCodeMisplacedMatchAll,
		},
		{
			name:         "negated match-all",
			input:        "!**",
			expectedCode: filter.ErrorCodeMisplacedMatchAll,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			parsed, err := filter.Parse(tc.input)
			require.Error(t, err)
			assert.Nil(t, parsed)

			validationErr := filter.ValidationError{}
			require.ErrorAs(t, err, &validationErr)

			assert.Equal(t, tc.expectedCode, validationErr.ErrorCode)
		})
	}
}

func TestParser_ValidationReportsEveryViolation(t *testing.T) {
	t.Parallel()

	// Both segments are invalid; the error must name both fragments.
	_, err := filter.Parse("/**&A/**|B")
	require.Error(t, err)

	assert.Contains(t, err.Error(), ".*.*")
	assert.Contains(t, err.Error(), "2 errors")
}
