package glyph

import "unicode"

// Parse lexes and parses source in one go. The returned diagnostics are in
// source order and empty when the source is well formed.
func Parse(source string, opts ...Option) (*Program, []*Diagnostic) {
	diags := NewDiagnostics()
	lexer := NewLexer(source, diags)
	prog := NewParser(lexer, diags, opts...).Parse()
	return prog, diags.List()
}

// NewTokenSlice replays already scanned tokens. The slice should end with a
// TokenEOF token; one is synthesized after the last token otherwise.
func NewTokenSlice(tokens []Token) TokenSource {
	return &tokenSlice{tokens: tokens}
}

type tokenSlice struct {
	tokens  []Token
	current int
}

func (s *tokenSlice) NextToken() Token {
	if s.current < len(s.tokens) {
		tok := s.tokens[s.current]
		if tok.Kind != TokenEOF {
			s.current++
		}
		return tok
	}
	var end Span
	if len(s.tokens) > 0 {
		last := s.tokens[len(s.tokens)-1].Span
		end = Span{Offset: last.End(), Line: last.Line, Column: last.Column + last.Length}
	}
	return Token{Kind: TokenEOF, Span: end}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || isDigit(r) || r == '_'
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}
