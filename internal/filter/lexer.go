package filter

import (
	"regexp"
	"strings"
)

// Lexer tokenizes a filter string.
//
// Literal characters are accumulated into VALUE tokens with every character
// escaped for later regexp compilation; '*' contributes the wildcard fragment
// ".*". Structural characters each produce their own single-character token
// and flush any literal in progress.
type Lexer struct {
	input        string // The input string being tokenized
	position     int    // Current position in input (points to current char)
	readPosition int    // Current reading position in input (after current char)
	ch           byte   // Current char under examination
	bracketDepth int    // Nesting depth of '[' ... ']' (slashes inside are literal)
	queued       *Token // Structural token held back while a literal is flushed
}

// NewLexer creates a new Lexer for the given input string.
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar() // Initialize by reading the first character

	return l
}

// NextToken reads and returns the next token from the input.
func (l *Lexer) NextToken() Token {
	if l.queued != nil {
		tok := *l.queued
		l.queued = nil

		return tok
	}

	var literal strings.Builder

	startPosition := l.position

	for {
		switch {
		case l.ch == 0:
			if literal.Len() > 0 {
				return NewToken(VALUE, literal.String(), startPosition)
			}

			return NewToken(EOF, "", l.position)

		case l.ch == '\\':
			escapePosition := l.position

			l.readChar()

			if l.ch == 0 {
				// Trailing escape with nothing to escape.
				tok := NewToken(ILLEGAL, `\`, escapePosition)
				if literal.Len() > 0 {
					l.queued = &tok
					return NewToken(VALUE, literal.String(), startPosition)
				}

				return tok
			}

			literal.WriteString(escapeLiteral(l.ch))
			l.readChar()

		case l.ch == '*':
			// The wildcard is stored as a compiled-regexp fragment, not a literal asterisk.
			literal.WriteString(".*")
			l.readChar()

		case l.ch == '/' && l.bracketDepth > 0:
			// Slashes inside a property filter are literal, e.g. Prop[Key=a/b].
			literal.WriteByte('/')
			l.readChar()

		case isStructuralChar(l.ch):
			tok := NewToken(structuralTokenType(l.ch), string(l.ch), l.position)

			switch l.ch {
			case '[':
				l.bracketDepth++
			case ']':
				if l.bracketDepth > 0 {
					l.bracketDepth--
				}
			}

			l.readChar()

			if literal.Len() > 0 {
				l.queued = &tok
				return NewToken(VALUE, literal.String(), startPosition)
			}

			return tok

		default:
			literal.WriteString(regexp.QuoteMeta(string(l.ch)))
			l.readChar()
		}
	}
}

// readChar advances the lexer's position and updates the current character.
func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0 // signifies end of input
		l.position = l.readPosition
		l.readPosition++

		return
	}

	l.ch = l.input[l.readPosition]
	l.position = l.readPosition
	l.readPosition++
}

// escapeLiteral escapes a single explicitly escaped character for regexp compilation.
// A separator escaped by the user is kept in escaped form so that structural
// validation can tell it apart from a bare separator.
func escapeLiteral(ch byte) string {
	if ch == '/' {
		return `\/`
	}

	return regexp.QuoteMeta(string(ch))
}

// isStructuralChar returns true if the character produces its own token.
func isStructuralChar(ch byte) bool {
	return ch == '&' || ch == '|' || ch == '!' || ch == '=' || ch == '/' ||
		ch == '(' || ch == ')' || ch == '[' || ch == ']'
}

// structuralTokenType maps a structural character to its token type.
func structuralTokenType(ch byte) TokenType {
	switch ch {
	case '&':
		return AMP
	case '|':
		return PIPE
	case '!':
		return BANG
	case '=':
		return EQUAL
	case '/':
		return SLASH
	case '(':
		return LPAREN
	case ')':
		return RPAREN
	case '[':
		return LBRACKET
	case ']':
		return RBRACKET
	default:
		return ILLEGAL
	}
}
