package core

import "github.com/aybehrouz/noir/pkg/token"

// Node is implemented by every syntax tree node. Handler signatures in
// pkg/spi are written against Expr, so core never imports spi.
type Node interface {
	Pos() token.Position // first character of the node
	End() token.Position // character just past the node
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// NodeInfo is embedded by nodes to record where they came from.
type NodeInfo struct {
	Span token.Span
}

func (n *NodeInfo) Pos() token.Position { return n.Span.Start }
func (n *NodeInfo) End() token.Position { return n.Span.End }
