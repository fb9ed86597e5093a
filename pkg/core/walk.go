package core

// Inspect traverses the tree rooted at node in depth-first order, calling f
// for each node. If f returns false the children of that node are skipped.
// Nil nodes are ignored.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}

	switch n := node.(type) {
	case *UnaryExpr:
		inspectExpr(n.Expr, f)
	case *BinaryExpr:
		inspectExpr(n.Left, f)
		inspectExpr(n.Right, f)
	case *CallExpr:
		inspectExpr(n.Func, f)
		for _, arg := range n.Args {
			inspectExpr(arg, f)
		}
	case *IndexExpr:
		inspectExpr(n.Expr, f)
		inspectExpr(n.Index, f)
	case *ArrayLiteral:
		for _, elem := range n.Elements {
			inspectExpr(elem, f)
		}
	case *DeclStmt:
		inspectExpr(n.Value, f)
	case *ConstrainStmt:
		inspectExpr(n.Expr, f)
	case *ExprStmt:
		inspectExpr(n.Expr, f)
	case *BlockStmt:
		for _, stmt := range n.Statements {
			if stmt != nil {
				Inspect(stmt, f)
			}
		}
	case *FunctionDefinition:
		if n.Body != nil {
			Inspect(n.Body, f)
		}
	}
}

// inspectExpr skips absent expressions.
func inspectExpr(e Expr, f func(Node) bool) {
	if e != nil {
		Inspect(e, f)
	}
}
