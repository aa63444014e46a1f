package glyph

//go:generate go run ../cmd/ast_codegen .

// Node is implemented by every syntax tree node.
type Node interface {
	// Span returns the source range covered by the node.
	Span() Span
}

// Program is the root of a parsed source unit.
type Program struct {
	Pos   Span
	Stmts []Stmt
}

func (prog *Program) Span() Span { return prog.Pos }

// Block is a body of a function definition or a loop. A shorthand block
// holds exactly one statement written without braces.
type Block struct {
	Pos    Span
	Stmts  []Stmt
	Braced bool
}

func (block *Block) Span() Span { return block.Pos }

// Inspect traverses the tree rooted at node in depth-first source order. It
// calls fn for each node; when fn returns false the children of that node are
// skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Stmts {
			Inspect(stmt, fn)
		}
	case *Block:
		for _, stmt := range n.Stmts {
			Inspect(stmt, fn)
		}
	case *VarStmt:
		Inspect(n.Name, fn)
		Inspect(n.Value, fn)
	case *FunctionStmt:
		Inspect(n.Name, fn)
		for _, param := range n.Params {
			Inspect(param, fn)
		}
		Inspect(n.Body, fn)
	case *CallStmt:
		for _, arg := range n.Args {
			Inspect(arg, fn)
		}
		Inspect(n.Callee, fn)
		if n.Alias != nil {
			Inspect(n.Alias, fn)
		}
	case *CondStmt:
		Inspect(n.Subject, fn)
		Inspect(n.ThenBranch, fn)
		if n.ElseBranch != nil {
			Inspect(n.ElseBranch, fn)
		}
	case *LoopStmt:
		Inspect(n.Cond, fn)
		Inspect(n.Body, fn)
	case *ExprStmt:
		Inspect(n.Val, fn)
	case *GroupExpr:
		Inspect(n.Inner, fn)
	case *AssignExpr:
		Inspect(n.Target, fn)
		Inspect(n.Val, fn)
	case *BinaryExpr:
		Inspect(n.Lhs, fn)
		Inspect(n.Rhs, fn)
	case *BlockExpr:
		for _, stmt := range n.Stmts {
			Inspect(stmt, fn)
		}
	}
}
