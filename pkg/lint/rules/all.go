// Package rules registers every built-in lint rule.
package rules

// Import rule categories - each registers its rules via init()
import (
	_ "github.com/aybehrouz/noir/pkg/lint/rules/entry"
	_ "github.com/aybehrouz/noir/pkg/lint/rules/structure"
)
