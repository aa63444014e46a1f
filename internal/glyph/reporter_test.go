package glyph

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleReporterInit(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)

	assert.False(r.HadError())
}

func TestSimpleReporterSendDiagnostics(t *testing.T) {
	assert := assert.New(t)
	diag1 := newInvalidCharacter('#', Span{4, 1, 5, 1})
	diag2 := newSyntaxError(Token{Kind: TokenEOF, Span: Span{9, 2, 1, 0}}, "expression", exprStart...)

	var out strings.Builder
	r := NewSimpleReporter(&out)
	r.Report(diag1)
	r.Report(diag2)

	assert.Equal(fmt.Sprintf("%v\n%v\n", diag1, diag2), out.String())
	assert.Equal(
		"1:5: error: invalid character '#'\n2:1: error: expected expression, found end of input\n",
		out.String(),
	)
	assert.True(r.HadError())
}

func TestSimpleReporterReset(t *testing.T) {
	assert := assert.New(t)

	r := NewSimpleReporter(io.Discard)
	r.Report(newUnterminatedString(Span{0, 1, 1, 3}))
	assert.True(r.HadError())

	r.Reset()
	assert.False(r.HadError())
}

func TestDiagnosticsKeepSourceOrder(t *testing.T) {
	assert := assert.New(t)
	first := newInvalidCharacter('$', Span{0, 1, 1, 1})
	second := newInvalidCharacter('#', Span{4, 1, 5, 1})
	sameOffset := newUnterminatedString(Span{4, 1, 5, 3})
	third := newUnterminatedString(Span{10, 2, 1, 3})

	diags := NewDiagnostics()
	assert.False(diags.HadError())
	assert.Empty(diags.List())

	diags.Report(third)
	diags.Report(second)
	diags.Report(first)
	diags.Report(sameOffset)

	assert.True(diags.HadError())
	assert.Equal([]*Diagnostic{first, second, sameOffset, third}, diags.List())

	diags.Reset()
	assert.False(diags.HadError())
	assert.Empty(diags.List())
}

func TestDiagnosticMessages(t *testing.T) {
	testCases := []struct {
		diag *Diagnostic
		kind DiagnosticKind
		msg  string
	}{
		{
			newUnterminatedString(Span{0, 1, 1, 5}),
			KindUnterminatedString,
			"1:1: error: unterminated string literal",
		},
		{
			newInvalidCharacter('€', Span{3, 2, 4, 1}),
			KindInvalidCharacter,
			"2:4: error: invalid character '€'",
		},
		{
			newSyntaxError(tok(TokenNumber, "12", 6), describeKinds([]TokenKind{TokenComma, TokenRightParen}), TokenComma, TokenRightParen),
			KindUnexpectedToken,
			"1:7: error: expected ',' or ')', found '12'",
		},
		{
			newSyntaxError(tokEOF(8, 1, 9), TokenSemicolon.describe()+" after assignment", TokenSemicolon),
			KindMissingToken,
			"1:9: error: expected ';' after assignment, found end of input",
		},
		{
			newMaxDepthExceeded(tok(TokenLeftParen, "(", 3), 3),
			KindMaxDepthExceeded,
			"1:4: error: nesting exceeds the maximum depth of 3",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(SeverityError, tc.diag.Severity)
		assert.Equal(tc.kind, tc.diag.Kind)
		assert.EqualError(tc.diag, tc.msg)
	}
}

func TestDescribeKinds(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("", describeKinds(nil))
	assert.Equal("identifier", describeKinds([]TokenKind{TokenIdentifier}))
	assert.Equal("'(' or identifier", describeKinds([]TokenKind{TokenLeftParen, TokenIdentifier}))
	assert.Equal(
		"number, string, identifier, '(' or '{'",
		describeKinds(exprStart),
	)
}
