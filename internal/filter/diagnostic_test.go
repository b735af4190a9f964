package filter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treefilter/treefilter/internal/filter"
)

// parseErrorFor parses an invalid filter and extracts the ParseError.
func parseErrorFor(t *testing.T, input string) *filter.ParseError {
	t.Helper()

	_, err := filter.Parse(input)
	require.Error(t, err)

	parseErr := filter.ParseError{}
	require.ErrorAs(t, err, &parseErr)

	return &parseErr
}

func TestFormatDiagnostic(t *testing.T) {
	t.Parallel()

	parseErr := parseErrorFor(t, "/Suite/A&&B")

	out := filter.FormatDiagnostic(parseErr, false)
	lines := strings.Split(out, "\n")

	require.GreaterOrEqual(t, len(lines), 5)

	assert.Equal(t, "Filter parsing error: unexpected token", lines[0])
	assert.Equal(t, " --> filter '/Suite/A&&B'", lines[1])
	assert.Empty(t, lines[2])
	assert.Equal(t, "     /Suite/A&&B", lines[3])

	// The caret sits under the second '&', five spaces past the indent edge.
	assert.True(t, strings.HasPrefix(lines[4], "     "+strings.Repeat(" ", 9)+"^"),
		"caret misplaced in %q", lines[4])

	// Binary operators get a hint.
	assert.Contains(t, out, "hint: ")
}

func TestFormatDiagnostic_CaretWidth(t *testing.T) {
	t.Parallel()

	// The offending value token spans two bytes, so the underline does too.
	parseErr := parseErrorFor(t, "(A)Bc")

	out := filter.FormatDiagnostic(parseErr, false)
	assert.Contains(t, out, "^~")
	assert.NotContains(t, out, "\033[", "plain output must carry no ANSI codes")
}

func TestFormatDiagnostic_Color(t *testing.T) {
	t.Parallel()

	parseErr := parseErrorFor(t, "A&")

	out := filter.FormatDiagnostic(parseErr, true)
	assert.Contains(t, out, "\033[31m", "caret should be red")
	assert.Contains(t, out, "\033[0m")
}

func TestGetHint(t *testing.T) {
	t.Parallel()

	assert.NotEmpty(t, filter.GetHint(filter.ErrorCodeMissingOperand, "&"))
	assert.NotEmpty(t, filter.GetHint(filter.ErrorCodeUnexpectedToken, "("))
	assert.NotEmpty(t, filter.GetHint(filter.ErrorCodeMisplacedMatchAll, ".*.*"))

	// Tokens with no targeted advice produce no hint line.
	assert.Empty(t, filter.GetHint(filter.ErrorCodeUnexpectedToken, "A"))
	assert.Empty(t, filter.GetHint(filter.ErrorCodeUnknown, ""))
}
