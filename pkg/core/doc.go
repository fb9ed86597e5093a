// Package core defines the shared language of the noir front end.
//
// It holds the AST (Node, Expr, Stmt and their concrete types), function
// definitions with their typed parameters, and the Program aggregate that
// one parsing pass fills through its Push methods. Inspect walks any node.
// Severity and RuleInfo describe lint rules so that the CLI can list them
// without importing pkg/lint.
//
// pkg/core imports only pkg/token and the standard library; arch_test.go
// enforces it.
package core
