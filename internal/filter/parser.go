package filter

import (
	"slices"

	"github.com/treefilter/treefilter/internal/errors"
)

// Operator precedence levels, tightest-binding last.
const (
	_ int = iota
	LOWEST
	SEPARATOR   // /
	DISJUNCTION // |
	CONJUNCTION // &
	NEGATION    // !
	EQUALITY    // =
)

// precedences maps token types to their precedence levels.
var precedences = map[TokenType]int{
	SLASH: SEPARATOR,
	PIPE:  DISJUNCTION,
	AMP:   CONJUNCTION,
	BANG:  NEGATION,
	EQUAL: EQUALITY,
}

// Parser builds the per-segment expression list from a token stream using
// two stacks: pending expressions and pending operators. Two mode flags
// reject malformed adjacency: operatorAllowed is true once a complete
// operand precedes the current position, and propertyAllowed is true only
// directly after a value token.
type Parser struct {
	lexer           *Lexer
	query           string
	exprStack       []Expression
	opStack         []Token
	operatorAllowed bool
	propertyAllowed bool
	bracketDepth    int
	started         bool
}

// NewParser creates a new Parser for the given lexer.
func NewParser(lexer *Lexer) *Parser {
	return &Parser{
		lexer: lexer,
		query: lexer.input,
	}
}

// ParseExpressions consumes the whole token stream and returns the parsed
// expressions, one per '/'-delimited path segment in left-to-right order.
func (p *Parser) ParseExpressions() ([]Expression, error) {
	for tok := p.lexer.NextToken(); tok.Type != EOF; tok = p.lexer.NextToken() {
		if err := p.processToken(tok); err != nil {
			return nil, err
		}
	}

	return p.finish()
}

// processToken applies one token to the parser stacks.
func (p *Parser) processToken(tok Token) error {
	defer func() { p.started = true }()

	switch tok.Type {
	case VALUE:
		if p.operatorAllowed {
			return p.newError(ErrorCodeUnexpectedToken, tok, "expected an operator or separator before value")
		}

		p.exprStack = append(p.exprStack, NewValueExpression(tok.Literal))
		p.operatorAllowed = true
		p.propertyAllowed = true

		return nil

	case AMP, PIPE:
		if !p.operatorAllowed {
			return p.newError(ErrorCodeMissingOperand, tok, "operator "+tok.Type.String()+" requires a value on its left")
		}

		if err := p.reduceHigherPrecedence(precedences[tok.Type]); err != nil {
			return err
		}

		p.opStack = append(p.opStack, tok)
		p.operatorAllowed = false
		p.propertyAllowed = false

		return nil

	case BANG:
		if p.operatorAllowed {
			return p.newError(ErrorCodeUnexpectedToken, tok, "negation must precede a value")
		}

		p.opStack = append(p.opStack, tok)
		p.propertyAllowed = false

		return nil

	case EQUAL:
		if p.bracketDepth == 0 {
			return p.newError(ErrorCodeEqualsOutsideProperty, tok, "'=' is only allowed inside a [...] property filter")
		}

		if !p.operatorAllowed {
			return p.newError(ErrorCodeMissingOperand, tok, "'=' requires a property key on its left")
		}

		// Scoped entirely within the enclosing brackets; no precedence reduction.
		p.opStack = append(p.opStack, tok)
		p.operatorAllowed = false
		p.propertyAllowed = false

		return nil

	case LPAREN:
		if p.operatorAllowed {
			return p.newError(ErrorCodeUnexpectedToken, tok, "expected an operator or separator before '('")
		}

		p.opStack = append(p.opStack, tok)
		p.propertyAllowed = false

		return nil

	case RPAREN:
		return p.processCloseParen(tok)

	case LBRACKET:
		if !p.propertyAllowed {
			if p.bracketDepth > 0 {
				return p.newError(ErrorCodeNestedProperty, tok, "property filters cannot be nested")
			}

			return p.newError(ErrorCodePropertyNotAllowed, tok, "'[' must directly follow a value")
		}

		p.opStack = append(p.opStack, tok)
		p.bracketDepth++
		p.operatorAllowed = false
		p.propertyAllowed = false

		return nil

	case RBRACKET:
		return p.processCloseBracket(tok)

	case SLASH:
		return p.processSeparator(tok)

	case ILLEGAL:
		if tok.Literal == `\` {
			return p.newError(ErrorCodeTrailingEscape, tok, "'\\' at end of input has nothing to escape")
		}

		return p.newError(ErrorCodeUnexpectedToken, tok, "illegal token "+tok.Literal)

	default:
		return p.newError(ErrorCodeUnexpectedToken, tok, "unexpected token "+tok.Literal)
	}
}

// processCloseParen reduces operators down to the matching group-open barrier.
func (p *Parser) processCloseParen(tok Token) error {
	if !p.operatorAllowed {
		return p.newError(ErrorCodeUnexpectedToken, tok, "expected a value before ')'")
	}

	for {
		top, ok := p.popOperator()
		if !ok || top.Type == LBRACKET {
			return p.newError(ErrorCodeUnmatchedParen, tok, "')' without matching '('")
		}

		if top.Type == LPAREN {
			break
		}

		if err := p.reduceOperator(top); err != nil {
			return err
		}
	}

	p.operatorAllowed = true
	p.propertyAllowed = false

	return nil
}

// processCloseBracket reduces operators down to the matching property-open
// barrier, then combines the bracket contents with the preceding value into a
// ValueAndPropertyExpression.
func (p *Parser) processCloseBracket(tok Token) error {
	if p.bracketDepth == 0 {
		return p.newError(ErrorCodeUnmatchedBracket, tok, "']' without matching '['")
	}

	if !p.operatorAllowed {
		return p.newError(ErrorCodeUnexpectedToken, tok, "expected a property predicate before ']'")
	}

	for {
		top, ok := p.popOperator()
		if !ok {
			return p.newError(ErrorCodeUnmatchedBracket, tok, "']' without matching '['")
		}

		if top.Type == LPAREN {
			return p.newError(ErrorCodeUnclosedParen, top, "'(' is never closed")
		}

		if top.Type == LBRACKET {
			break
		}

		if err := p.reduceOperator(top); err != nil {
			return err
		}
	}

	p.bracketDepth--

	if len(p.exprStack) < 2 {
		return p.newError(ErrorCodeInvalidPropertyShape, tok, "property filter must follow a value")
	}

	props := p.popExpression()
	value := p.popExpression()

	valueExpr, ok := value.(*ValueExpression)
	if !ok {
		return p.newError(ErrorCodeInvalidPropertyShape, tok, "property filter must follow a plain value")
	}

	switch props.(type) {
	case *ValueExpression, *PropertyExpression, *OperatorExpression:
		// Valid property filter shapes.
	default:
		return p.newError(ErrorCodeInvalidPropertyShape, tok, "brackets must contain a property predicate")
	}

	p.exprStack = append(p.exprStack, &ValueAndPropertyExpression{Value: valueExpr, Properties: props})
	p.operatorAllowed = true
	p.propertyAllowed = false

	return nil
}

// processSeparator closes the current path segment: every pending operator is
// reduced so that exactly one expression per segment remains on the stack.
func (p *Parser) processSeparator(tok Token) error {
	if !p.operatorAllowed {
		if !p.started {
			// A leading separator just marks the filter as rooted.
			return nil
		}

		return p.newError(ErrorCodeUnexpectedToken, tok, "expected a value before '/'")
	}

	for {
		top, ok := p.popOperator()
		if !ok {
			break
		}

		if top.Type == LPAREN || top.Type == LBRACKET {
			return p.newError(ErrorCodeSeparatorInGroup, tok, "'/' is not allowed inside a group")
		}

		if err := p.reduceOperator(top); err != nil {
			return err
		}
	}

	p.operatorAllowed = false
	p.propertyAllowed = false

	return nil
}

// finish reduces all remaining operators and returns the per-segment list.
// A trailing separator has already been consumed silently by processSeparator.
func (p *Parser) finish() ([]Expression, error) {
	for {
		top, ok := p.popOperator()
		if !ok {
			break
		}

		switch top.Type {
		case LPAREN:
			return nil, p.newError(ErrorCodeUnclosedParen, top, "'(' is never closed")
		case LBRACKET:
			return nil, p.newError(ErrorCodeUnclosedBracket, top, "'[' is never closed")
		default:
			if err := p.reduceOperator(top); err != nil {
				return nil, err
			}
		}
	}

	if len(p.exprStack) == 0 {
		return nil, errors.New(ParseError{
			Message:     "filter contains no expression",
			Query:       p.query,
			Position:    0,
			TokenLength: 1,
			ErrorCode:   ErrorCodeEmptyExpression,
		})
	}

	// The expression stack already holds one entry per segment in
	// left-to-right order: each separator fully reduces its segment before
	// the next one begins.
	return p.exprStack, nil
}

// reduceHigherPrecedence pops and reduces every pending operator that binds
// strictly tighter than the incoming precedence. Barrier markers are never
// compared and stop the reduction.
func (p *Parser) reduceHigherPrecedence(precedence int) error {
	for len(p.opStack) > 0 {
		top := p.opStack[len(p.opStack)-1]

		if top.Type == LPAREN || top.Type == LBRACKET {
			break
		}

		if precedences[top.Type] <= precedence {
			break
		}

		p.opStack = p.opStack[:len(p.opStack)-1]

		if err := p.reduceOperator(top); err != nil {
			return err
		}
	}

	return nil
}

// reduceOperator pops the operands of op from the expression stack and pushes
// the combined expression. For And/Or, immediately-following same-kind
// operator/operand pairs are absorbed so repeated operators flatten into one
// n-ary node.
func (p *Parser) reduceOperator(op Token) error {
	switch op.Type {
	case AMP, PIPE:
		kind := OperatorAnd
		if op.Type == PIPE {
			kind = OperatorOr
		}

		right := p.popExpression()
		left := p.popExpression()

		if left == nil || right == nil {
			return p.newError(ErrorCodeMissingOperand, op, "operator "+op.Type.String()+" is missing an operand")
		}

		operands := []Expression{left, right}

		for len(p.opStack) > 0 && p.opStack[len(p.opStack)-1].Type == op.Type {
			p.opStack = p.opStack[:len(p.opStack)-1]

			operand := p.popExpression()
			if operand == nil {
				return p.newError(ErrorCodeMissingOperand, op, "operator "+op.Type.String()+" is missing an operand")
			}

			operands = slices.Insert(operands, 0, operand)
		}

		p.exprStack = append(p.exprStack, &OperatorExpression{Op: kind, Operands: operands})

		return nil

	case BANG:
		operand := p.popExpression()
		if operand == nil {
			return p.newError(ErrorCodeMissingOperand, op, "negation is missing its operand")
		}

		p.exprStack = append(p.exprStack, &OperatorExpression{Op: OperatorNot, Operands: []Expression{operand}})

		return nil

	case EQUAL:
		value := p.popExpression()
		key := p.popExpression()

		if key == nil || value == nil {
			return p.newError(ErrorCodeMissingOperand, op, "'=' is missing an operand")
		}

		keyExpr, keyOK := key.(*ValueExpression)
		valueExpr, valueOK := value.(*ValueExpression)

		if !keyOK || !valueOK {
			return p.newError(ErrorCodeInvalidPropertyShape, op, "property key and value must be plain values")
		}

		p.exprStack = append(p.exprStack, &PropertyExpression{Key: keyExpr, Value: valueExpr})

		return nil

	default:
		// A separator never reaches reduction: processSeparator consumes it.
		return p.newError(ErrorCodeUnknown, op, "operator "+op.Type.String()+" cannot be reduced")
	}
}

// popOperator removes and returns the top of the operator stack.
func (p *Parser) popOperator() (Token, bool) {
	if len(p.opStack) == 0 {
		return Token{}, false
	}

	top := p.opStack[len(p.opStack)-1]
	p.opStack = p.opStack[:len(p.opStack)-1]

	return top, true
}

// popExpression removes and returns the top of the expression stack, or nil
// if the stack is empty.
func (p *Parser) popExpression() Expression {
	if len(p.exprStack) == 0 {
		return nil
	}

	top := p.exprStack[len(p.exprStack)-1]
	p.exprStack = p.exprStack[:len(p.exprStack)-1]

	return top
}

// newError builds a positioned ParseError for the given token.
func (p *Parser) newError(code ErrorCode, tok Token, message string) error {
	length := len(tok.Literal)
	if length == 0 {
		length = 1
	}

	return errors.New(ParseError{
		Message:      message,
		Query:        p.query,
		TokenLiteral: tok.Literal,
		Position:     tok.Position,
		TokenLength:  length,
		ErrorCode:    code,
	})
}
