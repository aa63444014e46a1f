package glyph

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tok builds a single-line token starting at offset with the given lexeme.
func tok(kind TokenKind, lexeme string, offset int) Token {
	return Token{
		Kind:   kind,
		Lexeme: lexeme,
		Span:   Span{offset, 1, offset + 1, len([]rune(lexeme))},
	}
}

func tokEOF(offset, line, column int) Token {
	return Token{Kind: TokenEOF, Span: Span{offset, line, column, 0}}
}

func kindsOf(diags []*Diagnostic) []DiagnosticKind {
	kinds := make([]DiagnosticKind, 0, len(diags))
	for _, d := range diags {
		kinds = append(kinds, d.Kind)
	}
	return kinds
}

func printed(t *testing.T, src string) string {
	t.Helper()
	prog, diags := Parse(src)
	require.Empty(t, diags, "source %q", src)
	printer := AstPrinter{}
	return strings.TrimSuffix(printer.Print(prog), "\n")
}

func TestParseIsDeterministic(t *testing.T) {
	sources := []string{
		"@ x -> 5 ;",
		"fun add ( a , b ) -> { @ r -> a ; } ;",
		"x ? ( 1 , 2 )\n1 + 2 × 3;\n^ n { n -> n - 1; }",
		"@ x -> ; fun y() -> 1 ;",
		"\"open",
	}

	assert := assert.New(t)
	for _, src := range sources {
		prog1, diags1 := Parse(src)
		prog2, diags2 := Parse(src)
		assert.Equal(prog1, prog2, src)
		assert.Equal(diags1, diags2, src)
	}
}

func TestParseConcurrently(t *testing.T) {
	src := "fun f(a, b) -> { @ c -> a + b * 2; c; };\n1 2 f @ (r);\nr ? (1, { @ d -> 3; })"
	want, _ := Parse(src)

	var wg sync.WaitGroup
	results := make([]*Program, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Parse(src)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestParseFromTokenSlice(t *testing.T) {
	// @ x -> 5 ;
	toks := []Token{
		tok(TokenAt, "@", 0),
		tok(TokenIdentifier, "x", 2),
		tok(TokenArrow, "->", 4),
		tok(TokenNumber, "5", 7),
		tok(TokenSemicolon, ";", 9),
		tokEOF(10, 1, 11),
	}

	diags := NewDiagnostics()
	prog := NewParser(NewTokenSlice(toks), diags).Parse()

	assert := assert.New(t)
	assert.False(diags.HadError())
	assert.Equal(&Program{
		Pos: Span{0, 1, 1, 10},
		Stmts: []Stmt{
			NewVarStmt(
				Span{0, 1, 1, 10},
				NewIdentExpr(Span{2, 1, 3, 1}, "x"),
				NewNumberExpr(Span{7, 1, 8, 1}, "5"),
			),
		},
	}, prog)
}

func TestTokenSliceWithoutEOF(t *testing.T) {
	src := NewTokenSlice([]Token{tok(TokenIdentifier, "abc", 0)})

	assert := assert.New(t)
	assert.Equal(TokenIdentifier, src.NextToken().Kind)
	assert.Equal(tokEOF(3, 1, 4), src.NextToken())
	assert.Equal(tokEOF(3, 1, 4), src.NextToken())
}

func TestSpansNest(t *testing.T) {
	src := `fun add(a, b) -> { @ r -> a + b * (2 - "s"); r; };
x y add @ (z);
z ? ({ @ q -> 1; q; }, w -> 3;);
^ z { z -> z - 1; }`
	prog, diags := Parse(src)
	require.Empty(t, diags)

	var stack []Node
	var visit func(parent Node)
	visit = func(parent Node) {
		Inspect(parent, func(n Node) bool {
			if n == parent {
				return true
			}
			assert.True(t, parent.Span().Contains(n.Span()),
				"%T %v does not contain %T %v", parent, parent.Span(), n, n.Span())
			stack = append(stack, n)
			visit(n)
			return false
		})
	}
	visit(prog)
	assert.NotEmpty(t, stack)
}
