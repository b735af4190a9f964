package filter

import (
	"fmt"

	"github.com/treefilter/treefilter/internal/errors"
)

// ErrorCode categorizes parse and validation errors for hint lookup.
type ErrorCode int

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodeUnexpectedToken
	ErrorCodeUnexpectedEOF
	ErrorCodeEmptyExpression
	ErrorCodeTrailingEscape
	ErrorCodeMissingOperand
	ErrorCodeUnmatchedParen
	ErrorCodeUnclosedParen
	ErrorCodeUnmatchedBracket
	ErrorCodeUnclosedBracket
	ErrorCodeNestedProperty
	ErrorCodePropertyNotAllowed
	ErrorCodeInvalidPropertyShape
	ErrorCodeEqualsOutsideProperty
	ErrorCodeSeparatorInGroup
	ErrorCodeMisplacedMatchAll
	ErrorCodeSeparatorInValue
	ErrorCodeInvalidArity
)

// title returns the high-level diagnostic header for the error code.
func (c ErrorCode) title() string {
	switch c {
	case ErrorCodeUnexpectedToken, ErrorCodeMissingOperand:
		return "unexpected token"
	case ErrorCodeUnexpectedEOF:
		return "unexpected end of input"
	case ErrorCodeEmptyExpression:
		return "empty filter"
	case ErrorCodeTrailingEscape:
		return "trailing escape character"
	case ErrorCodeUnmatchedParen, ErrorCodeUnclosedParen:
		return "unbalanced parentheses"
	case ErrorCodeUnmatchedBracket, ErrorCodeUnclosedBracket:
		return "unbalanced property brackets"
	case ErrorCodeNestedProperty, ErrorCodePropertyNotAllowed, ErrorCodeInvalidPropertyShape:
		return "invalid property filter"
	case ErrorCodeEqualsOutsideProperty:
		return "misplaced '='"
	case ErrorCodeSeparatorInGroup:
		return "misplaced path separator"
	case ErrorCodeMisplacedMatchAll:
		return "misplaced '**'"
	case ErrorCodeSeparatorInValue:
		return "path separator in value"
	case ErrorCodeInvalidArity:
		return "internal invariant violation"
	default:
		return "invalid filter"
	}
}

// ParseError represents an error that occurred while tokenizing or parsing a
// filter string.
type ParseError struct {
	Message      string
	Query        string    // Original filter string
	TokenLiteral string    // The problematic token
	Position     int       // Byte offset of the problematic token
	TokenLength  int       // For underline width
	ErrorCode    ErrorCode // For title and hint lookup
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Position, e.Message)
}

// ValidationError represents a structural violation found in an otherwise
// parseable filter, naming the offending fragment.
type ValidationError struct {
	Message   string
	Fragment  string    // String form of the offending expression
	ErrorCode ErrorCode // For hint lookup
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid filter expression '%s': %s", e.Fragment, e.Message)
}

// NewValidationError creates a new ValidationError for the given fragment.
func NewValidationError(message, fragment string, code ErrorCode) error {
	return errors.New(ValidationError{Message: message, Fragment: fragment, ErrorCode: code})
}

// InvalidPathError is a caller contract error: candidate node paths must be
// non-empty and start with the path separator.
type InvalidPathError struct {
	Path string
}

func (e InvalidPathError) Error() string {
	return fmt.Sprintf("node path %q must start with '%c'", e.Path, PathSeparator)
}
