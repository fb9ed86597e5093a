package core

// MainFunction is the reserved name of the program entry point.
const MainFunction = "main"

// CustomDirective is a named directive that later lowers into a custom gate.
type CustomDirective struct {
	Name string
	Func *FunctionDefinition
}

// Program is the aggregate produced by one parsing pass. It is append-only
// except for Main, which holds at most one function (last write wins).
type Program struct {
	Statements       []Stmt
	Functions        []*FunctionDefinition
	Main             *FunctionDefinition
	Directives       []*FunctionDefinition
	CustomDirectives []CustomDirective
}

// NewProgram returns an empty program.
func NewProgram() *Program {
	return NewProgramWithCapacity(0)
}

// NewProgramWithCapacity returns an empty program with every sequence
// pre-sized to n.
func NewProgramWithCapacity(n int) *Program {
	return &Program{
		Statements:       make([]Stmt, 0, n),
		Functions:        make([]*FunctionDefinition, 0, n),
		Directives:       make([]*FunctionDefinition, 0, n),
		CustomDirectives: make([]CustomDirective, 0, n),
	}
}

// PushStatement appends a top-level statement.
func (p *Program) PushStatement(s Stmt) {
	p.Statements = append(p.Statements, s)
}

// PushConstraintFunction records a constrained function. A function named
// "main" replaces whatever occupied the main slot; any other function is
// appended to Functions.
func (p *Program) PushConstraintFunction(f *FunctionDefinition) {
	if f.Name == MainFunction {
		p.Main = f
		return
	}
	p.Functions = append(p.Functions, f)
}

// PushDirectiveFunction records a directive. Without a name it is a plain
// directive (field operations without constraints); with a name it is a
// custom directive that maps to a custom gate. Duplicate names are kept.
func (p *Program) PushDirectiveFunction(name *string, f *FunctionDefinition) {
	if name == nil {
		p.Directives = append(p.Directives, f)
		return
	}
	p.CustomDirectives = append(p.CustomDirectives, CustomDirective{Name: *name, Func: f})
}

// ABI returns the parameter names of main in order. The second result is
// false when the program has no main, i.e. it is a library.
func (p *Program) ABI() ([]string, bool) {
	if p.Main == nil {
		return nil, false
	}
	return p.Main.ParameterNames(), true
}

// IsExecutable reports whether the program has an entry point.
func (p *Program) IsExecutable() bool {
	return p.Main != nil
}
