package glyph

import "strings"

// TokenSource is anything the parser can pull tokens from. Once a source
// returns TokenEOF it keeps returning it.
type TokenSource interface {
	NextToken() Token
}

// Lexer turns source text into tokens on demand.
type Lexer struct {
	source []rune

	// cursor
	current int
	line    int
	column  int

	// position of the token being scanned
	start       int
	startLine   int
	startColumn int

	reporter Reporter
}

// NewLexer creates a lexer over source. Lexical errors go to reporter.
func NewLexer(source string, reporter Reporter) *Lexer {
	lexer := new(Lexer)
	lexer.source = []rune(source)
	lexer.line = 1
	lexer.column = 1
	lexer.reporter = reporter
	return lexer
}

// Scan reads the rest of the source and returns all tokens found, ending
// with the TokenEOF token.
func (lexer *Lexer) Scan() []Token {
	var tokens []Token
	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokenEOF {
			return tokens
		}
	}
}

// NextToken scans and returns the next token.
func (lexer *Lexer) NextToken() Token {
	lexer.skipTrivia()

	lexer.start = lexer.current
	lexer.startLine = lexer.line
	lexer.startColumn = lexer.column
	if !lexer.hasNext() {
		return lexer.token(TokenEOF)
	}

	switch r := lexer.advance(); r {
	case '(':
		return lexer.token(TokenLeftParen)
	case ')':
		return lexer.token(TokenRightParen)
	case '{':
		return lexer.token(TokenLeftBrace)
	case '}':
		return lexer.token(TokenRightBrace)
	case ',':
		return lexer.token(TokenComma)
	case ';':
		return lexer.token(TokenSemicolon)
	case '+':
		return lexer.token(TokenPlus)
	case '*', '×':
		return lexer.token(TokenStar)
	case '/', '÷':
		// "//" never gets here, skipTrivia has consumed it
		return lexer.token(TokenSlash)
	case '@':
		return lexer.token(TokenAt)
	case '^':
		return lexer.token(TokenCaret)
	case '?':
		return lexer.token(TokenQuestion)
	case '-':
		if lexer.match('>') {
			return lexer.token(TokenArrow)
		}
		return lexer.token(TokenMinus)
	case '<':
		if lexer.peek() == '-' && lexer.peekNext() == '>' {
			lexer.advance()
			lexer.advance()
			return lexer.token(TokenRocket)
		}
		if lexer.match('=') {
			return lexer.token(TokenLessEqual)
		}
		return lexer.token(TokenLess)
	case '>':
		if lexer.match('=') {
			return lexer.token(TokenGreaterEqual)
		}
		return lexer.token(TokenGreater)
	case '=':
		if lexer.match('=') {
			return lexer.token(TokenEqualEqual)
		}
		return lexer.invalid(r)
	case '!':
		if lexer.match('=') {
			return lexer.token(TokenBangEqual)
		}
		return lexer.invalid(r)
	case '"':
		return lexer.scanString()
	default:
		if isDigit(r) {
			return lexer.scanNumber()
		}
		if isBeginIdent(r) {
			return lexer.scanIdentifier()
		}
		return lexer.invalid(r)
	}
}

// skipTrivia consumes whitespaces and line comments. The newline that ends a
// comment is left for the whitespace case so line counting stays in one
// place.
func (lexer *Lexer) skipTrivia() {
	for lexer.hasNext() {
		switch lexer.peek() {
		case ' ', '\t', '\r', '\n':
			lexer.advance()
		case '/':
			if lexer.peekNext() != '/' {
				return
			}
			for lexer.hasNext() && lexer.peek() != '\n' {
				lexer.advance()
			}
		default:
			return
		}
	}
}

func (lexer *Lexer) scanString() Token {
	var value strings.Builder
	for lexer.hasNext() && lexer.peek() != '"' {
		r := lexer.advance()
		if r == '\\' && (lexer.peek() == '"' || lexer.peek() == '\\') {
			r = lexer.advance()
		}
		value.WriteRune(r)
	}

	if !lexer.hasNext() {
		tok := lexer.token(TokenIllegal)
		lexer.reporter.Report(newUnterminatedString(tok.Span))
		return tok
	}

	// closing '"'
	lexer.advance()
	tok := lexer.token(TokenString)
	tok.Literal = value.String()
	return tok
}

func (lexer *Lexer) scanNumber() Token {
	for isDigit(lexer.peek()) {
		lexer.advance()
	}
	return lexer.token(TokenNumber)
}

func (lexer *Lexer) scanIdentifier() Token {
	for isAlphanumeric(lexer.peek()) {
		lexer.advance()
	}
	tok := lexer.token(TokenIdentifier)
	if kind, isKeyword := keywords[tok.Lexeme]; isKeyword {
		tok.Kind = kind
	}
	return tok
}

func (lexer *Lexer) invalid(r rune) Token {
	tok := lexer.token(TokenIllegal)
	lexer.reporter.Report(newInvalidCharacter(r, tok.Span))
	return tok
}

// token builds a token of the given kind from the runes between `start` and
// `current`.
func (lexer *Lexer) token(kind TokenKind) Token {
	return Token{
		Kind:   kind,
		Lexeme: string(lexer.source[lexer.start:lexer.current]),
		Span: Span{
			Offset: lexer.start,
			Line:   lexer.startLine,
			Column: lexer.startColumn,
			Length: lexer.current - lexer.start,
		},
	}
}

// hasNext returns true if the lexer has not read pass the source length
func (lexer *Lexer) hasNext() bool {
	return lexer.current < len(lexer.source)
}

// advance consumes and returns the rune at the current position
func (lexer *Lexer) advance() rune {
	r := lexer.source[lexer.current]
	lexer.current++
	if r == '\n' {
		lexer.line++
		lexer.column = 1
	} else {
		lexer.column++
	}
	return r
}

// match consumes the rune at the current position if it equals expected.
func (lexer *Lexer) match(expected rune) bool {
	if lexer.peek() != expected || !lexer.hasNext() {
		return false
	}
	lexer.advance()
	return true
}

// peek returns the rune at the current position, but does not consume it
func (lexer *Lexer) peek() rune {
	if !lexer.hasNext() {
		return '\x00'
	}
	return lexer.source[lexer.current]
}

// peekNext returns the rune after the current position, but does not consume
// it
func (lexer *Lexer) peekNext() rune {
	if lexer.current+1 >= len(lexer.source) {
		return '\x00'
	}
	return lexer.source[lexer.current+1]
}
