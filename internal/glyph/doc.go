/*
Package glyph implements the front end of the Glyph language: a lexer, a
parser producing a syntax tree, and the diagnostics both of them report.

Grammars

	program    --> statement* EOF ;
	statement  --> varDecl
	             | funDef
	             | loop
	             | cond
	             | call
	             | exprStmt ;
	varDecl    --> "@" IDENT "->" expression ";" ;
	funDef     --> "fun" IDENT "(" params? ")" "->" block ";" ;
	params     --> IDENT ( "," IDENT )* ;
	loop       --> "^" expression block ;
	cond       --> expression "?" "(" expression ( "," expression )? ")" ";"? ;
	call       --> expression* IDENT "@" "(" IDENT? ")" ";"? ;
	exprStmt   --> expression ";"? ;
	block      --> "{" statement* "}"
	             | statement ;
	expression --> term ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> primary ( ( "÷" | "×" ) primary )* ;
	primary    --> NUMBER | STRING | IDENT
	             | IDENT "->" expression ";"
	             | "(" expression ")"
	             | "{" statement* "}" ;

"×" may also be written "*" and "÷" may be written "/". The comparison
operators "<", ">", "<=", ">=", "==" and "!=" are tokens of the language but
no expression rule uses them yet.

cond, call and exprStmt all start with an expression. The parser reads
expressions while they keep coming and then looks at what follows the last
one: "@" directly followed by "(" makes them the arguments and callee of a
call, a "?" makes the last one the subject of a cond. Otherwise every
expression is an exprStmt of its own, so "x y" is two statements. A "@"
followed by anything else starts the next varDecl.

A call may have no arguments at all: "f @ ()" calls f with none and drops
its result.

When a block without braces is the body of a funDef, the optional ";" of its
statement is left for the funDef.
*/
package glyph
