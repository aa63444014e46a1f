package glyph

import "fmt"

// Span locates a piece of source text. Offsets and lengths are counted in
// runes, lines and columns start at 1.
type Span struct {
	Offset int
	Line   int
	Column int
	Length int
}

// End returns the offset right after the last rune covered by the span.
func (s Span) End() int {
	return s.Offset + s.Length
}

// To returns a span that starts where s starts and ends where end ends.
func (s Span) To(end Span) Span {
	s.Length = end.End() - s.Offset
	return s
}

// Contains reports whether other lies within s.
func (s Span) Contains(other Span) bool {
	return s.Offset <= other.Offset && other.End() <= s.End()
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// Token represents group a characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Kind    TokenKind
	Lexeme  string
	Literal string // decoded content of a string literal
	Span    Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Span, t.Kind, t.Lexeme)
}

// describe names the token the way diagnostics print what was found.
func (t Token) describe() string {
	if t.Kind == TokenEOF {
		return TokenEOF.String()
	}
	return fmt.Sprintf("'%s'", t.Lexeme)
}

var keywords = map[string]TokenKind{
	"fun": TokenFun,
}

// TokenKind classifies a token.
type TokenKind uint

const (
	// Punctuation
	TokenLeftParen TokenKind = iota
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenSemicolon
	TokenArrow
	TokenRocket

	// Operators
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLess
	TokenGreater
	TokenGreaterEqual
	TokenLessEqual
	TokenEqualEqual
	TokenBangEqual

	// Keyword markers
	TokenAt
	TokenFun
	TokenCaret
	TokenQuestion

	// Literals
	TokenIdentifier
	TokenNumber
	TokenString

	// TokenIllegal stands in for input the lexer could not classify. The
	// lexer has already reported it when the token is handed out.
	TokenIllegal
	TokenEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenLeftBrace:
		return "{"
	case TokenRightBrace:
		return "}"
	case TokenComma:
		return ","
	case TokenSemicolon:
		return ";"
	case TokenArrow:
		return "->"
	case TokenRocket:
		return "<->"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenStar:
		return "×"
	case TokenSlash:
		return "÷"
	case TokenLess:
		return "<"
	case TokenGreater:
		return ">"
	case TokenGreaterEqual:
		return ">="
	case TokenLessEqual:
		return "<="
	case TokenEqualEqual:
		return "=="
	case TokenBangEqual:
		return "!="
	case TokenAt:
		return "@"
	case TokenFun:
		return "fun"
	case TokenCaret:
		return "^"
	case TokenQuestion:
		return "?"
	case TokenIdentifier:
		return "identifier"
	case TokenNumber:
		return "number"
	case TokenString:
		return "string"
	case TokenIllegal:
		return "illegal"
	case TokenEOF:
		return "end of input"
	}
	return fmt.Sprintf("TokenKind(%d)", uint(k))
}

// describe quotes fixed spellings and leaves class names bare, e.g. "';'"
// but "identifier".
func (k TokenKind) describe() string {
	switch k {
	case TokenIdentifier, TokenNumber, TokenString, TokenIllegal, TokenEOF:
		return k.String()
	}
	return fmt.Sprintf("'%s'", k.String())
}
