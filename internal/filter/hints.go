package filter

// GetHint returns a single consolidated hint for a parse error.
func GetHint(code ErrorCode, token string) string {
	switch code {
	case ErrorCodeUnexpectedToken:
		return getUnexpectedTokenHint(token)
	case ErrorCodeUnexpectedEOF:
		return "The expression is incomplete. Make sure all groups are closed and operators have operands."
	case ErrorCodeEmptyExpression:
		return "A filter selects nodes by path, e.g. '/Suite/Fixture/Test*'."
	case ErrorCodeTrailingEscape:
		return "A '\\' escapes the character after it. To match a literal backslash, write '\\\\'."
	case ErrorCodeMissingOperand:
		return "Operators combine two values, e.g. 'A|B'. Negation precedes a value, e.g. '!A'."
	case ErrorCodeUnmatchedParen:
		return "Every ')' needs a matching '('. To match a literal parenthesis, escape it: '\\)'."
	case ErrorCodeUnclosedParen:
		return "Every '(' needs a matching ')'. To match a literal parenthesis, escape it: '\\('."
	case ErrorCodeUnmatchedBracket:
		return "Every ']' needs a matching '['. To match a literal bracket, escape it: '\\]'."
	case ErrorCodeUnclosedBracket:
		return "Property filters look like 'Test[Category=fast]'. To match a literal bracket, escape it: '\\['."
	case ErrorCodeNestedProperty:
		return "A property filter cannot contain another one. Combine predicates with '&' and '|' instead."
	case ErrorCodePropertyNotAllowed:
		return "A '[' must directly follow a node name, e.g. 'Test[Category=fast]'."
	case ErrorCodeInvalidPropertyShape:
		return "Brackets hold property predicates for the value before them, e.g. 'Test[Category=fast]'."
	case ErrorCodeEqualsOutsideProperty:
		return "The equals sign belongs inside a property filter, e.g. 'Test[Category=fast]'."
	case ErrorCodeSeparatorInGroup:
		return "Path separators split top-level segments and cannot appear inside '(...)' or '[...]'."
	case ErrorCodeMisplacedMatchAll:
		return "'**' matches a node and everything below it, so it must be the last segment, e.g. '/Suite/**'."
	case ErrorCodeSeparatorInValue:
		return "To match a literal '/' inside a value, escape it: '\\/'."

	// Internal invariant violations have no user-facing remedy.
	case ErrorCodeInvalidArity, ErrorCodeUnknown:
		return ""
	}

	return ""
}

// getUnexpectedTokenHint returns a hint specific to unexpected token errors.
func getUnexpectedTokenHint(token string) string {
	switch token {
	case "&", "|":
		return "Binary operators need a value on each side, e.g. 'A" + token + "B'."
	case "!":
		return "Negation precedes the value it negates, e.g. '!Slow*'."
	case "(":
		return "A group cannot directly follow a value. Add an operator first, e.g. 'A&(B|C)'."
	case "/":
		return "A '/' starts a new path segment and must follow a complete expression."
	case ")":
		return "Close the current expression before ')', e.g. '(A|B)'."
	case "]":
		return "Close the property predicate before ']', e.g. '[Category=fast]'."
	default:
		return ""
	}
}
