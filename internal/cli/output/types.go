package output

// Structured views of command results, shared by the json and yaml modes.

// ParamInfo is one function parameter.
type ParamInfo struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// FunctionInfo summarises a function definition.
type FunctionInfo struct {
	Name   string      `json:"name" yaml:"name"`
	Kind   string      `json:"kind" yaml:"kind"`
	Gate   string      `json:"gate,omitempty" yaml:"gate,omitempty"`
	Params []ParamInfo `json:"params" yaml:"params"`
	Line   int         `json:"line" yaml:"line"`
}

// ProgramInfo summarises an assembled program.
type ProgramInfo struct {
	File       string         `json:"file,omitempty" yaml:"file,omitempty"`
	Statements int            `json:"statements" yaml:"statements"`
	Functions  []FunctionInfo `json:"functions" yaml:"functions"`
	ABI        []string       `json:"abi" yaml:"abi"`
	HasMain    bool           `json:"has_main" yaml:"has_main"`
}

// ExprInfo is the result of parsing a single expression.
type ExprInfo struct {
	Source string `json:"source" yaml:"source"`
	SExpr  string `json:"sexpr" yaml:"sexpr"`
}

// ABIOutput is the result of the abi command.
type ABIOutput struct {
	File   string      `json:"file" yaml:"file"`
	ABI    []string    `json:"abi" yaml:"abi"`
	Params []ParamInfo `json:"params" yaml:"params"`
}

// TokenInfo is one lexical token.
type TokenInfo struct {
	Pos     string `json:"pos" yaml:"pos"`
	Type    string `json:"type" yaml:"type"`
	Literal string `json:"literal,omitempty" yaml:"literal,omitempty"`
}

// DiagnosticInfo is one lint finding or parse error.
type DiagnosticInfo struct {
	File     string `json:"file" yaml:"file"`
	Line     int    `json:"line" yaml:"line"`
	Column   int    `json:"column" yaml:"column"`
	Severity string `json:"severity" yaml:"severity"`
	Rule     string `json:"rule,omitempty" yaml:"rule,omitempty"`
	Message  string `json:"message" yaml:"message"`
}

// FileResult is the outcome of checking one file.
type FileResult struct {
	File        string           `json:"file" yaml:"file"`
	OK          bool             `json:"ok" yaml:"ok"`
	Functions   int              `json:"functions" yaml:"functions"`
	ABI         []string         `json:"abi,omitempty" yaml:"abi,omitempty"`
	Diagnostics []DiagnosticInfo `json:"diagnostics" yaml:"diagnostics"`
}

// CheckSummary totals a check run.
type CheckSummary struct {
	Files    int `json:"files" yaml:"files"`
	Failed   int `json:"failed" yaml:"failed"`
	Errors   int `json:"errors" yaml:"errors"`
	Warnings int `json:"warnings" yaml:"warnings"`
}

// CheckOutput is the result of the check command.
type CheckOutput struct {
	Results []FileResult `json:"results" yaml:"results"`
	Summary CheckSummary `json:"summary" yaml:"summary"`
}

// GrammarInfo describes a registered grammar.
type GrammarInfo struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Prefix      []string `json:"prefix" yaml:"prefix"`
	Infix       []string `json:"infix" yaml:"infix"`
}
