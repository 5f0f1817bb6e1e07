package tools

import (
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/fincrew/internal/core/domain"
	"github.com/custodia-labs/fincrew/internal/core/ports/driven"
)

// Registry holds analysis tools by name.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]driven.AnalysisTool
}

// NewRegistry creates a registry holding tools.
func NewRegistry(tools ...driven.AnalysisTool) *Registry {
	r := &Registry{tools: make(map[string]driven.AnalysisTool)}
	for _, t := range tools {
		r.tools[t.Name()] = t
	}
	return r
}

// DefaultRegistry returns a registry with the built-in tools.
func DefaultRegistry() *Registry {
	return NewRegistry(NewInvestment(), NewRisk())
}

// Register adds or replaces a tool.
func (r *Registry) Register(tool driven.AnalysisTool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = tool
}

// Get returns the named tool.
func (r *Registry) Get(name string) (driven.AnalysisTool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("tool %q: %w", name, domain.ErrNotFound)
	}
	return t, nil
}

// List returns every tool sorted by name.
func (r *Registry) List() []driven.AnalysisTool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]driven.AnalysisTool, 0, len(r.tools))
	for _, t := range r.tools {
		list = append(list, t)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name() < list[j].Name() })
	return list
}
