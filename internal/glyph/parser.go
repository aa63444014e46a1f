package glyph

import (
	"context"
	"errors"
	"log/slog"
)

// DefaultMaxDepth is the default maximum nesting depth of expressions and
// blocks.
const DefaultMaxDepth = 256

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithMaxDepth sets the maximum nesting depth for the parser. Input nested
// deeper is reported as MaxDepthExceeded instead of growing the stack.
func WithMaxDepth(depth int) Option {
	return func(parser *Parser) {
		parser.maxDepth = depth
	}
}

// WithLogger makes the parser trace its progress at debug level. Pass nil to
// disable logging, which is also the default.
func WithLogger(logger *slog.Logger) Option {
	return func(parser *Parser) {
		parser.logger = logger
	}
}

// binding powers of the infix operators wired into expressions
const (
	precNone = iota
	precAdditive
	precMultiplicative
)

func precedenceOf(kind TokenKind) int {
	switch kind {
	case TokenPlus, TokenMinus:
		return precAdditive
	case TokenStar, TokenSlash:
		return precMultiplicative
	}
	return precNone
}

// exprStart lists the kinds that can begin an expression.
var exprStart = []TokenKind{
	TokenNumber, TokenString, TokenIdentifier, TokenLeftParen, TokenLeftBrace,
}

func startsExpr(kind TokenKind) bool {
	for _, k := range exprStart {
		if k == kind {
			return true
		}
	}
	return false
}

// Parser composes the syntax tree from the tokens of a TokenSource. The
// grammar is documented in the package comment.
//
// Every production returns (node, error). A non-nil error is always a
// *Diagnostic; it travels up to the nearest statement list (the program or
// an enclosing braced block), which reports it and synchronizes.
type Parser struct {
	src      TokenSource
	ahead    []Token
	previous Token
	reporter Reporter

	depth    int
	maxDepth int

	// parens counts the '(' consumed and not yet closed.
	parens int
	// pending holds statements parsed ahead by exprLed, in source order.
	pending []Stmt
	// unterminated counts the shorthand function bodies that failed before
	// their definition's ';' was reached.
	unterminated int

	logger *slog.Logger
}

// NewParser creates a parser pulling tokens from src and reporting syntax
// errors to reporter.
func NewParser(src TokenSource, reporter Reporter, opts ...Option) *Parser {
	parser := &Parser{
		src:      src,
		reporter: reporter,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(parser)
	}
	return parser
}

// Parse parses the whole token stream. It always returns a program; the
// statements that could not be parsed are left out of it and reported.
func (parser *Parser) Parse() *Program {
	parser.log(slog.LevelDebug, "parse started", slog.Int("max_depth", parser.maxDepth))

	prog := new(Program)
	prog.Stmts = parser.statements(false)
	eof := parser.advance()
	prog.Pos = Span{Line: 1, Column: 1}.To(eof.Span)

	parser.log(slog.LevelDebug, "parse finished",
		slog.Int("statements", len(prog.Stmts)),
		slog.Bool("had_error", parser.reporter.HadError()))
	return prog
}

// statements parses statements until the end of input, or until a closing
// brace when inBlock is set.
func (parser *Parser) statements(inBlock bool) []Stmt {
	var stmts []Stmt
	base := parser.parens
	for !parser.isEOF() && !(inBlock && parser.check(TokenRightBrace)) {
		stmt, err := parser.statement(false)
		if err != nil {
			parser.report(err)
			parser.resync(inBlock, base)
			continue
		}
		stmts = append(stmts, stmt)
		stmts = append(stmts, parser.pending...)
		parser.pending = nil
	}
	return stmts
}

// statement dispatches on the leading token. When trailing is set, the
// statement is the shorthand body of a definition that owns the ';' after
// it, so the optional terminators are left alone.
//
//	statement --> varDecl | funDef | loop | exprLed ;
func (parser *Parser) statement(trailing bool) (Stmt, error) {
	switch parser.peek().Kind {
	case TokenAt:
		return parser.varDecl()
	case TokenFun:
		return parser.funDef()
	case TokenCaret:
		return parser.loop()
	}
	return parser.exprLed(trailing)
}

// varDecl --> "@" IDENT "->" expression ";" ;
func (parser *Parser) varDecl() (Stmt, error) {
	at := parser.advance()
	name, err := parser.identifier("variable name after '@'")
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(TokenArrow, "after variable name"); err != nil {
		return nil, err
	}
	value, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(TokenSemicolon, "after variable declaration"); err != nil {
		return nil, err
	}
	return NewVarStmt(parser.spanFrom(at.Span), name, value), nil
}

// funDef --> "fun" IDENT "(" params? ")" "->" block ";" ;
func (parser *Parser) funDef() (Stmt, error) {
	fun := parser.advance()
	name, err := parser.identifier("function name after 'fun'")
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(TokenLeftParen, "after function name"); err != nil {
		return nil, err
	}
	params, err := parser.params()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(TokenRightParen, "after parameters"); err != nil {
		return nil, err
	}
	if _, err := parser.consume(TokenArrow, "before function body"); err != nil {
		return nil, err
	}
	shorthand := !parser.check(TokenLeftBrace)
	body, err := parser.block(true)
	if err != nil {
		if shorthand {
			parser.unterminated++
		}
		return nil, err
	}
	if _, err := parser.consume(TokenSemicolon, "after function definition"); err != nil {
		return nil, err
	}
	return NewFunctionStmt(parser.spanFrom(fun.Span), name, params, body), nil
}

// params --> IDENT ( "," IDENT )* ;
//
// An empty list gives nil.
func (parser *Parser) params() ([]*IdentExpr, error) {
	if parser.check(TokenRightParen) {
		return nil, nil
	}
	var params []*IdentExpr
	for {
		param, err := parser.identifier("parameter name")
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !parser.match(TokenComma) {
			return params, nil
		}
	}
}

// loop --> "^" expression block ;
func (parser *Parser) loop() (Stmt, error) {
	caret := parser.advance()
	cond, err := parser.expression()
	if err != nil {
		return nil, err
	}
	body, err := parser.block(false)
	if err != nil {
		return nil, err
	}
	return NewLoopStmt(caret.Span.To(body.Span()), cond, body), nil
}

// block --> "{" statement* "}" | statement ;
func (parser *Parser) block(trailing bool) (*Block, error) {
	if err := parser.enter(); err != nil {
		return nil, err
	}
	defer parser.leave()

	if !parser.check(TokenLeftBrace) {
		stmt, err := parser.statement(trailing)
		if err != nil {
			return nil, err
		}
		return &Block{Pos: stmt.Span(), Stmts: []Stmt{stmt}}, nil
	}

	lbrace := parser.advance()
	stmts := parser.statements(true)
	if _, err := parser.consume(TokenRightBrace, "to close block"); err != nil {
		return nil, err
	}
	return &Block{Pos: parser.spanFrom(lbrace.Span), Stmts: stmts, Braced: true}, nil
}

// exprLed parses the statements that begin with an expression. Expressions
// are read while they keep coming; the token after the last one picks the
// production. Each expression is parsed once.
//
//	exprLed  --> expression* IDENT "@" "(" IDENT? ")" ";"?
//	           | exprStmt* expression "?" "(" expression ( "," expression )? ")" ";"?
//	           | exprStmt* expression ";"? ;
//
// When the expressions turn out not to be call arguments, all but the last
// are statements on their own. The first statement is returned and the
// others are queued in pending.
func (parser *Parser) exprLed(trailing bool) (Stmt, error) {
	first, err := parser.expression()
	if err != nil {
		return nil, err
	}

	exprs := []Expr{first}
	var second Token
	for !parser.atCallMarker() && startsExpr(parser.peek().Kind) {
		if len(exprs) == 1 {
			second = parser.peek()
		}
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	if parser.atCallMarker() {
		return parser.call(exprs, trailing)
	}
	if trailing && len(exprs) > 1 {
		// a shorthand body is a single statement
		return nil, newSyntaxError(second, TokenSemicolon.describe()+" after function definition", TokenSemicolon)
	}

	last := exprs[len(exprs)-1]
	var tail Stmt
	if parser.check(TokenQuestion) {
		if tail, err = parser.conditional(last, trailing); err != nil {
			return nil, err
		}
	} else {
		if !trailing {
			parser.match(TokenSemicolon)
		}
		tail = NewExprStmt(parser.spanFrom(last.Span()), last)
	}

	stmts := make([]Stmt, 0, len(exprs))
	for _, expr := range exprs[:len(exprs)-1] {
		stmts = append(stmts, NewExprStmt(expr.Span(), expr))
	}
	stmts = append(stmts, tail)
	parser.pending = append(parser.pending, stmts[1:]...)
	return stmts[0], nil
}

// conditional continues exprLed once the subject has been parsed.
func (parser *Parser) conditional(subject Expr, trailing bool) (Stmt, error) {
	parser.advance()
	if _, err := parser.consume(TokenLeftParen, "after '?'"); err != nil {
		return nil, err
	}
	thenBranch, err := parser.expression()
	if err != nil {
		return nil, err
	}
	var elseBranch Expr
	if parser.match(TokenComma) {
		if elseBranch, err = parser.expression(); err != nil {
			return nil, err
		}
	}
	if !parser.check(TokenRightParen) {
		want := TokenRightParen.describe() + " after conditional branches"
		if elseBranch == nil {
			want = describeKinds([]TokenKind{TokenComma, TokenRightParen})
		}
		return nil, newSyntaxError(parser.peek(), want, TokenComma, TokenRightParen)
	}
	parser.advance()
	if !trailing {
		parser.match(TokenSemicolon)
	}
	return NewCondStmt(parser.spanFrom(subject.Span()), subject, thenBranch, elseBranch), nil
}

// call continues exprLed at the '@' of a call. The last expression is the
// callee, the ones before it are the arguments.
func (parser *Parser) call(exprs []Expr, trailing bool) (Stmt, error) {
	callee, ok := exprs[len(exprs)-1].(*IdentExpr)
	if !ok {
		return nil, newSyntaxError(parser.peek(), "function name before '@'", TokenIdentifier)
	}
	var args []Expr
	if len(exprs) > 1 {
		args = append(args, exprs[:len(exprs)-1]...)
	}

	parser.advance() // '@'
	parser.advance() // '('
	var alias *IdentExpr
	if parser.check(TokenIdentifier) {
		alias, _ = parser.identifier("")
	}
	if _, err := parser.consume(TokenRightParen, "after call result name"); err != nil {
		return nil, err
	}
	if !trailing {
		parser.match(TokenSemicolon)
	}
	return NewCallStmt(parser.spanFrom(exprs[0].Span()), args, callee, alias), nil
}

// expression --> primary ( ( "+" | "-" | "×" | "÷" ) primary )* ;
func (parser *Parser) expression() (Expr, error) {
	if err := parser.enter(); err != nil {
		return nil, err
	}
	defer parser.leave()
	return parser.binary(precAdditive)
}

// binary climbs operator precedence. Operators binding at least as tight as
// minPrec are folded into the left operand; the right operand only takes
// operators binding tighter than the current one, which makes every level
// left-associative.
func (parser *Parser) binary(minPrec int) (Expr, error) {
	lhs, err := parser.primary()
	if err != nil {
		return nil, err
	}
	for {
		op := parser.peek()
		prec := precedenceOf(op.Kind)
		if prec == precNone || prec < minPrec {
			return lhs, nil
		}
		parser.advance()
		rhs, err := parser.binary(prec + 1)
		if err != nil {
			return nil, err
		}
		lhs = NewBinaryExpr(lhs.Span().To(rhs.Span()), op, lhs, rhs)
	}
}

// primary --> NUMBER | STRING | IDENT | assign
//           | "(" expression ")"
//           | "{" statement* "}" ;
func (parser *Parser) primary() (Expr, error) {
	tok := parser.peek()
	switch tok.Kind {
	case TokenNumber:
		parser.advance()
		return NewNumberExpr(tok.Span, tok.Lexeme), nil
	case TokenString:
		parser.advance()
		return NewStringExpr(tok.Span, tok.Literal), nil
	case TokenIdentifier:
		if parser.peekAt(1).Kind == TokenArrow {
			return parser.assignment()
		}
		parser.advance()
		return NewIdentExpr(tok.Span, tok.Lexeme), nil
	case TokenLeftParen:
		parser.advance()
		inner, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if _, err := parser.consume(TokenRightParen, "after expression"); err != nil {
			return nil, err
		}
		return NewGroupExpr(parser.spanFrom(tok.Span), inner), nil
	case TokenLeftBrace:
		parser.advance()
		stmts := parser.statements(true)
		if _, err := parser.consume(TokenRightBrace, "to close block"); err != nil {
			return nil, err
		}
		return NewBlockExpr(parser.spanFrom(tok.Span), stmts), nil
	}
	return nil, newSyntaxError(tok, "expression", exprStart...)
}

// assign --> IDENT "->" expression ";" ;
func (parser *Parser) assignment() (Expr, error) {
	target, _ := parser.identifier("")
	parser.advance() // '->'
	value, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if _, err := parser.consume(TokenSemicolon, "after assignment"); err != nil {
		return nil, err
	}
	return NewAssignExpr(parser.spanFrom(target.Pos), target, value), nil
}

func (parser *Parser) identifier(want string) (*IdentExpr, error) {
	tok := parser.peek()
	if tok.Kind != TokenIdentifier {
		return nil, newSyntaxError(tok, want, TokenIdentifier)
	}
	parser.advance()
	return NewIdentExpr(tok.Span, tok.Lexeme), nil
}

// enter records one more level of nesting; it fails once the configured
// maximum is passed. Each successful enter must be paired with leave.
func (parser *Parser) enter() error {
	parser.depth++
	if parser.depth > parser.maxDepth {
		parser.depth--
		return newMaxDepthExceeded(parser.peek(), parser.maxDepth)
	}
	return nil
}

func (parser *Parser) leave() {
	parser.depth--
}

// report hands a syntax error to the reporter. Errors found at an illegal
// token are dropped because the lexer reported that token already.
func (parser *Parser) report(err error) {
	var diag *Diagnostic
	if !errors.As(err, &diag) {
		panic(err)
	}
	parser.log(slog.LevelDebug, "recovering from syntax error",
		slog.String("kind", string(diag.Kind)),
		slog.String("at", diag.Span.String()))
	if diag.Found == TokenIllegal && diag.Kind != KindMaxDepthExceeded {
		return
	}
	parser.reporter.Report(diag)
}

// resync puts the parser back at a statement boundary after an error in a
// statement list. base is the number of open parentheses when the list
// started.
func (parser *Parser) resync(inBlock bool, base int) {
	parser.pending = nil
	atSemicolon := parser.sync(inBlock, parser.parens-base)
	// Failed shorthand function bodies may have eaten their own ';', the
	// ones of their definitions follow.
	for atSemicolon && parser.unterminated > 0 && parser.match(TokenSemicolon) {
		parser.unterminated--
	}
	parser.unterminated = 0
	parser.parens = base
}

// sync discards tokens up to and including the next ';' at the current
// nesting depth, and reports whether it stopped after such a ';'. A '}'
// closing the current level stops the search as well: it is consumed at the
// top level and left for the enclosing block otherwise.
//
// open is the number of parentheses the failed statement left open. A ';'
// inside them ends an assignment and is skipped when a ',' or ')' follows
// it; any other ';' there ends the search, as the ')' is likely missing.
func (parser *Parser) sync(inBlock bool, open int) bool {
	braces, parens := 0, open
	for !parser.isEOF() {
		switch parser.peek().Kind {
		case TokenLeftBrace:
			braces++
		case TokenRightBrace:
			if braces == 0 {
				if !inBlock {
					parser.advance()
				}
				return false
			}
			braces--
		case TokenLeftParen:
			parens++
		case TokenRightParen:
			if parens > 0 {
				parens--
			}
		case TokenSemicolon:
			if braces == 0 && (parens == 0 || !parser.continuesGroup()) {
				parser.advance()
				return true
			}
		}
		parser.advance()
	}
	return false
}

// continuesGroup reports whether the token after the current one is a ','
// or a ')'.
func (parser *Parser) continuesGroup() bool {
	next := parser.peekAt(1).Kind
	return next == TokenComma || next == TokenRightParen
}

// spanFrom returns the span from start to the end of the last consumed
// token.
func (parser *Parser) spanFrom(start Span) Span {
	return start.To(parser.previous.Span)
}

// atCallMarker reports whether the next tokens are "@" "(". A '@' followed
// by anything else begins a variable declaration.
func (parser *Parser) atCallMarker() bool {
	return parser.check(TokenAt) && parser.peekAt(1).Kind == TokenLeftParen
}

func (parser *Parser) match(kind TokenKind) bool {
	if parser.check(kind) {
		parser.advance()
		return true
	}
	return false
}

func (parser *Parser) consume(kind TokenKind, context string) (Token, error) {
	if parser.check(kind) {
		return parser.advance(), nil
	}
	return Token{}, newSyntaxError(parser.peek(), kind.describe()+" "+context, kind)
}

func (parser *Parser) check(kind TokenKind) bool {
	return parser.peek().Kind == kind
}

func (parser *Parser) isEOF() bool {
	return parser.check(TokenEOF)
}

// advance consumes the current token. The end of input is never consumed
// past: advancing at TokenEOF returns it again.
func (parser *Parser) advance() Token {
	tok := parser.peek()
	switch tok.Kind {
	case TokenEOF:
		parser.previous = tok
		return tok
	case TokenLeftParen:
		parser.parens++
	case TokenRightParen:
		parser.parens--
	}
	parser.ahead = parser.ahead[1:]
	parser.previous = tok
	return tok
}

func (parser *Parser) peek() Token {
	return parser.peekAt(0)
}

// peekAt returns the token n positions after the current one, pulling from
// the source as needed.
func (parser *Parser) peekAt(n int) Token {
	for len(parser.ahead) <= n {
		parser.ahead = append(parser.ahead, parser.src.NextToken())
	}
	return parser.ahead[n]
}

func (parser *Parser) log(level slog.Level, msg string, attrs ...slog.Attr) {
	if parser.logger == nil {
		return
	}
	parser.logger.LogAttrs(context.Background(), level, msg, attrs...)
}
