// Package behaviors defines the attachable page behavior contract and a
// priority-ordered registry of behaviors.
package behaviors

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tejaspathak99/pagekit/pkg/page"
)

// Behavior attaches a page enhancement to a document and returns the
// registrations it created. Behaviors are independent of one another.
type Behavior interface {
	Name() string
	Attach(ctx context.Context, doc page.Document) ([]page.Registration, error)
}

type rule struct {
	name     string
	priority int
	behavior Behavior
	order    int
}

// Registry holds named behaviors. Higher priority attaches first; ties fall
// back to registration order. An empty registry attaches nothing.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a behavior with the provided name and priority. Callers
// should avoid duplicate names; every registration attaches independently.
func (r *Registry) Register(name string, priority int, behavior Behavior) {
	if r == nil || behavior == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		behavior: behavior,
		order:    len(r.rules),
	})
}

// Ordered returns the registered behaviors in attach order.
func (r *Registry) Ordered() []Behavior {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	out := make([]Behavior, 0, len(rules))
	for _, entry := range rules {
		out = append(out, entry.behavior)
	}
	return out
}

// Names returns the behavior names in attach order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	ordered := r.Ordered()
	names := make([]string, 0, len(ordered))
	for _, behavior := range ordered {
		names = append(names, behavior.Name())
	}
	return names
}

// Attach runs every registered behavior against the document. On failure the
// registrations created so far are released before the error is returned, so
// a partial attach never leaks handlers.
func (r *Registry) Attach(ctx context.Context, doc page.Document) ([]page.Registration, error) {
	if r == nil {
		return nil, nil
	}
	var collected []page.Registration
	for _, behavior := range r.Ordered() {
		regs, err := behavior.Attach(ctx, doc)
		if err != nil {
			for _, reg := range collected {
				if reg != nil {
					reg.Close()
				}
			}
			return nil, fmt.Errorf("behaviors: attach %s: %w", behavior.Name(), err)
		}
		for _, reg := range regs {
			if reg != nil {
				collected = append(collected, reg)
			}
		}
	}
	return collected, nil
}
