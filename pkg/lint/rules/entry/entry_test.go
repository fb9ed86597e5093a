package entry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aybehrouz/noir/pkg/lint"
	_ "github.com/aybehrouz/noir/pkg/lint/rules" // register rules
	"github.com/aybehrouz/noir/pkg/parser"
)

// Helper to run analysis and filter by rule ID
func runRule(t *testing.T, src string, ruleID string) []lint.Diagnostic {
	t.Helper()
	prog, err := parser.Parse(src, nil)
	require.NoError(t, err)

	var filtered []lint.Diagnostic
	for _, d := range lint.NewAnalyzer(nil).Analyze(prog) {
		if d.RuleID == ruleID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func TestEN01_MissingMain(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantDiag bool
	}{
		{name: "no functions", src: "let a = 1;", wantDiag: true},
		{name: "helpers only", src: "fn f() {}", wantDiag: true},
		{name: "main as directive", src: "directive fn main() {}", wantDiag: true},
		{name: "main present", src: "fn main() {}", wantDiag: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, "EN01")
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Equal(t, lint.SeverityInfo, diags[0].Severity)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestEN02_DirectiveNamedMain(t *testing.T) {
	diags := runRule(t, `
fn main() {}
directive fn main() {}
directive(gate) fn main() {}
directive fn other() {}
`, "EN02")
	require.Len(t, diags, 2)
	assert.Equal(t, 3, diags[0].Pos.Line)
	assert.Equal(t, 4, diags[1].Pos.Line)
	assert.Contains(t, diags[1].Message, "custom directive")
}

func TestEN01_ReplacedMainIsInvisible(t *testing.T) {
	src := "fn main(a: Field) {}\nfn main(b: Field) { b; }\n"
	assert.Empty(t, runRule(t, src, "EN01"))
	assert.Empty(t, runRule(t, src, "EN02"))
	assert.Empty(t, runRule(t, src, "ST01"))
}
