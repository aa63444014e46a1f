package glyph

import (
	"fmt"
	"strings"
)

// AstPrinter renders syntax trees as compact S-expressions, one top-level
// statement per line:
//
//	@ x -> 1 + 2;          (@ x (+ 1 2))
//	fun f(a) -> a;         (fun f (a) a)
//	x y g @ (r);           (call g (x y) r)
//	x ? (1, 2)             (? x 1 2)
//	^ x { y; }             (^ x {y})
type AstPrinter struct{}

func (printer *AstPrinter) Print(node Node) string {
	var sb strings.Builder
	if prog, ok := node.(*Program); ok {
		for _, stmt := range prog.Stmts {
			printer.write(&sb, stmt)
			sb.WriteByte('\n')
		}
		return sb.String()
	}
	printer.write(&sb, node)
	return sb.String()
}

func (printer *AstPrinter) write(sb *strings.Builder, node Node) {
	switch n := node.(type) {
	case *Block:
		if !n.Braced && len(n.Stmts) == 1 {
			printer.write(sb, n.Stmts[0])
			return
		}
		printer.writeStmts(sb, n.Stmts)
	case *VarStmt:
		printer.parenthesize(sb, "@", n.Name, n.Value)
	case *FunctionStmt:
		sb.WriteString("(fun ")
		sb.WriteString(n.Name.Name)
		sb.WriteString(" (")
		for i, param := range n.Params {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(param.Name)
		}
		sb.WriteString(") ")
		printer.write(sb, n.Body)
		sb.WriteByte(')')
	case *CallStmt:
		sb.WriteString("(call ")
		sb.WriteString(n.Callee.Name)
		sb.WriteString(" (")
		for i, arg := range n.Args {
			if i > 0 {
				sb.WriteByte(' ')
			}
			printer.write(sb, arg)
		}
		sb.WriteByte(')')
		if n.Alias != nil {
			sb.WriteByte(' ')
			sb.WriteString(n.Alias.Name)
		}
		sb.WriteByte(')')
	case *CondStmt:
		if n.ElseBranch == nil {
			printer.parenthesize(sb, "?", n.Subject, n.ThenBranch)
			return
		}
		printer.parenthesize(sb, "?", n.Subject, n.ThenBranch, n.ElseBranch)
	case *LoopStmt:
		printer.parenthesize(sb, "^", n.Cond, n.Body)
	case *ExprStmt:
		printer.write(sb, n.Val)
	case *NumberExpr:
		sb.WriteString(n.Text)
	case *StringExpr:
		fmt.Fprintf(sb, "%q", n.Value)
	case *IdentExpr:
		sb.WriteString(n.Name)
	case *GroupExpr:
		printer.parenthesize(sb, "group", n.Inner)
	case *AssignExpr:
		printer.parenthesize(sb, "->", n.Target, n.Val)
	case *BinaryExpr:
		printer.parenthesize(sb, n.Op.Lexeme, n.Lhs, n.Rhs)
	case *BlockExpr:
		printer.writeStmts(sb, n.Stmts)
	default:
		fmt.Fprintf(sb, "<%T>", node)
	}
}

func (printer *AstPrinter) writeStmts(sb *strings.Builder, stmts []Stmt) {
	sb.WriteByte('{')
	for i, stmt := range stmts {
		if i > 0 {
			sb.WriteByte(' ')
		}
		printer.write(sb, stmt)
	}
	sb.WriteByte('}')
}

func (printer *AstPrinter) parenthesize(sb *strings.Builder, name string, nodes ...Node) {
	sb.WriteByte('(')
	sb.WriteString(name)
	for _, node := range nodes {
		sb.WriteByte(' ')
		printer.write(sb, node)
	}
	sb.WriteByte(')')
}
