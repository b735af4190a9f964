package filter

// TokenType identifies the lexical class of a token.
type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF
	VALUE    // literal fragment, already escaped for regexp compilation
	AMP      // &
	PIPE     // |
	BANG     // !
	EQUAL    // =
	SLASH    // /
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
)

// String returns a human-readable name for the token type.
func (t TokenType) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case VALUE:
		return "VALUE"
	case AMP:
		return "'&'"
	case PIPE:
		return "'|'"
	case BANG:
		return "'!'"
	case EQUAL:
		return "'='"
	case SLASH:
		return "'/'"
	case LPAREN:
		return "'('"
	case RPAREN:
		return "')'"
	case LBRACKET:
		return "'['"
	case RBRACKET:
		return "']'"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical token together with its position in the input.
type Token struct {
	Literal  string
	Type     TokenType
	Position int
}

// NewToken creates a new Token with the given type, literal, and position.
func NewToken(tokenType TokenType, literal string, position int) Token {
	return Token{Type: tokenType, Literal: literal, Position: position}
}
