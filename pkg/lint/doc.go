// Package lint checks assembled programs for constructs that parse cleanly
// but are likely mistakes: a missing entry point, reused names, unused
// parameters and the like.
//
// # Rule Registration
//
// Rules register themselves from init() functions when their packages are
// imported:
//
//	import _ "github.com/aybehrouz/noir/pkg/lint/rules"
//
// # Rule Groups
//
//   - EN (Entry): Rules about the main function and the ABI it defines
//   - ST (Structure): Rules about function and directive definitions
//
// # Configuration
//
// Use Config to control which rules run and at what severity:
//
//	config := lint.NewConfig()
//	config.Disable("EN01")
//	config.SetSeverity("ST04", lint.SeverityError)
//	diags := lint.NewAnalyzer(config).Analyze(prog)
package lint
