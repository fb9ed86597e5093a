package grammar

import (
	"sort"
	"strings"
	"sync"
)

// Grammar registry
var (
	grammarsMu sync.RWMutex
	grammars   = make(map[string]*Grammar)
)

// DefaultName is the grammar used when none is configured.
const DefaultName = "standard"

// Get returns a grammar by name (case-insensitive).
func Get(name string) (*Grammar, bool) {
	grammarsMu.RLock()
	defer grammarsMu.RUnlock()
	g, ok := grammars[strings.ToLower(name)]
	return g, ok
}

// Register registers a grammar in the global registry, replacing any grammar
// of the same name.
func Register(g *Grammar) {
	grammarsMu.Lock()
	defer grammarsMu.Unlock()
	grammars[strings.ToLower(g.Name)] = g
}

// List returns all registered grammar names (sorted).
func List() []string {
	grammarsMu.RLock()
	defer grammarsMu.RUnlock()
	names := make([]string, 0, len(grammars))
	for name := range grammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
