package core

// ---------- Statement Types ----------

// DeclKind distinguishes the binding keywords.
type DeclKind int

// DeclKind constants.
const (
	DeclLet   DeclKind = iota // let: public intermediate value
	DeclPriv                  // priv: private witness
	DeclConst                 // const: compile-time constant
)

// String returns the keyword spelling of the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case DeclLet:
		return "let"
	case DeclPriv:
		return "priv"
	case DeclConst:
		return "const"
	default:
		return "unknown"
	}
}

// DeclStmt binds Name to the value of an expression.
type DeclStmt struct {
	NodeInfo
	Kind  DeclKind
	Name  string
	Value Expr
}

func (*DeclStmt) stmtNode() {}

// ConstrainStmt asserts that an expression holds.
type ConstrainStmt struct {
	NodeInfo
	Expr Expr
}

func (*ConstrainStmt) stmtNode() {}

// ExprStmt is an expression evaluated for its effect.
type ExprStmt struct {
	NodeInfo
	Expr Expr
}

func (*ExprStmt) stmtNode() {}

// BlockStmt is a braced sequence of statements.
type BlockStmt struct {
	NodeInfo
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}
