package filter

import (
	"strings"

	"github.com/treefilter/treefilter/internal/errors"
	"github.com/treefilter/treefilter/internal/properties"
)

// PathSeparator separates segments in node paths and filter strings.
const PathSeparator = '/'

// Filter is a parsed, validated filter that can be matched against node
// paths. It is immutable after construction and safe for concurrent use.
type Filter struct {
	originalQuery string
	expressions   []Expression
}

// Parse parses a filter string and returns a Filter.
// Returns an error if the string cannot be parsed or is structurally invalid.
func Parse(filterString string) (*Filter, error) {
	lexer := NewLexer(filterString)
	parser := NewParser(lexer)

	exprs, err := parser.ParseExpressions()
	if err != nil {
		return nil, err
	}

	if err := validateExpressions(exprs); err != nil {
		return nil, err
	}

	return &Filter{
		originalQuery: filterString,
		expressions:   exprs,
	}, nil
}

// String returns the original filter string, unmodified.
func (f *Filter) String() string {
	return f.originalQuery
}

// Expressions returns the parsed per-segment expressions in left-to-right
// order. This is useful for debugging or advanced use cases.
func (f *Filter) Expressions() []Expression {
	return f.expressions
}

// Matches reports whether the node at path, annotated with the given property
// bag, satisfies the filter.
//
// path must be non-empty and start with the path separator; violating that
// contract returns an InvalidPathError. Matching itself has no error path.
//
// A filter matches any node at or below the depth it explicitly constrains:
// unconsumed filter segments are ignored once the path is exhausted, and
// paths deeper than the filter match only when the final filter segment is
// the match-all token '**'.
func (f *Filter) Matches(path string, bag properties.Bag) (bool, error) {
	if path == "" || path[0] != byte(PathSeparator) {
		return false, errors.New(InvalidPathError{Path: path})
	}

	segments := strings.Split(path[1:], string(PathSeparator))

	for index, segment := range segments {
		if index >= len(f.expressions) {
			// The path is deeper than the filter. It matches only if the
			// final filter segment is the match-all token, which has already
			// matched at its own depth.
			last, ok := f.expressions[len(f.expressions)-1].(*ValueExpression)
			return index > 0 && ok && last.MatchAll(), nil
		}

		if !evaluate(f.expressions[index], segment, bag) {
			return false, nil
		}
	}

	return true, nil
}
