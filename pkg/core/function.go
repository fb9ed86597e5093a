package core

// Type is a parameter type placeholder. Types are not checked by the front
// end; the name is carried through unchanged.
type Type struct {
	Name string
}

// Parameter is a single (name, type) pair of a function signature.
type Parameter struct {
	Name string
	Type Type
}

// FunctionDefinition is a top-level function. Parameter order is significant.
type FunctionDefinition struct {
	NodeInfo
	Name       string
	Parameters []Parameter
	Body       *BlockStmt
}

// ParameterNames returns the parameter names in declaration order.
func (f *FunctionDefinition) ParameterNames() []string {
	names := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		names[i] = p.Name
	}
	return names
}
