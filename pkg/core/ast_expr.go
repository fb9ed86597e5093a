package core

import "github.com/aybehrouz/noir/pkg/token"

// ---------- Expression Types ----------

// Ident is a reference to a named value or function.
type Ident struct {
	NodeInfo
	Name string
}

func (*Ident) exprNode() {}

// LiteralType represents the type of a literal.
type LiteralType int

// LiteralType constants for source literal kinds.
const (
	LiteralInt LiteralType = iota
	LiteralString
	LiteralBool
)

// String returns the literal kind name.
func (t LiteralType) String() string {
	switch t {
	case LiteralInt:
		return "int"
	case LiteralString:
		return "string"
	case LiteralBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Literal represents a literal value. Integer values are kept as written
// (decimal or 0x-prefixed hex); field arithmetic happens in later stages.
type Literal struct {
	NodeInfo
	Type  LiteralType
	Value string
}

func (*Literal) exprNode() {}

// UnaryExpr represents a prefix operator applied to an operand.
type UnaryExpr struct {
	NodeInfo
	Op   token.TokenType
	Expr Expr
}

func (*UnaryExpr) exprNode() {}

// BinaryExpr represents a binary expression.
type BinaryExpr struct {
	NodeInfo
	Left  Expr
	Op    token.TokenType
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// GetLeft returns the left operand.
func (b *BinaryExpr) GetLeft() Expr { return b.Left }

// GetRight returns the right operand.
func (b *BinaryExpr) GetRight() Expr { return b.Right }

// CallExpr represents a call: Func(Args...).
type CallExpr struct {
	NodeInfo
	Func Expr
	Args []Expr
}

func (*CallExpr) exprNode() {}

// IndexExpr represents an index access: Expr[Index].
type IndexExpr struct {
	NodeInfo
	Expr  Expr
	Index Expr
}

func (*IndexExpr) exprNode() {}

// ArrayLiteral represents an array literal: [a, b, c].
type ArrayLiteral struct {
	NodeInfo
	Elements []Expr
}

func (*ArrayLiteral) exprNode() {}
