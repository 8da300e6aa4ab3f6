package hooks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-widgetlayout/pkg/interfaces"
)

// ErrResultType is returned when a filter chain produces a value of an
// unexpected type.
var ErrResultType = errors.New("hooks: filter returned unexpected type")

var (
	ErrFilterRequired     = errors.New("hooks: filter function required")
	ErrFilterNameRequired = errors.New("hooks: filter name required")
)

// Filter transforms a value flowing through a named filter chain.
type Filter func(ctx context.Context, value any) (any, error)

type handler struct {
	priority int
	seq      int
	plugin   string
	fn       Filter
}

// Registry stores ordered filter chains keyed by filter name.
type Registry struct {
	mu     sync.RWMutex
	chains map[string][]handler
	seq    int
}

var _ interfaces.FilterRunner = (*Registry)(nil)

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		chains: make(map[string][]handler),
	}
}

// Register appends fn to the chain for name. Lower priorities run first and
// handlers sharing a priority run in registration order.
func (r *Registry) Register(name string, priority int, fn Filter) error {
	return r.RegisterPlugin(name, "", priority, fn)
}

// RegisterPlugin is Register with the contributing plugin id recorded for
// introspection and error messages.
func (r *Registry) RegisterPlugin(name, plugin string, priority int, fn Filter) error {
	key := canonicalKey(name)
	if key == "" {
		return ErrFilterNameRequired
	}
	if fn == nil {
		return ErrFilterRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.chains == nil {
		r.chains = make(map[string][]handler)
	}
	r.seq++
	chain := append(r.chains[key], handler{
		priority: priority,
		seq:      r.seq,
		plugin:   strings.TrimSpace(plugin),
		fn:       fn,
	})
	sort.SliceStable(chain, func(i, j int) bool {
		if chain[i].priority != chain[j].priority {
			return chain[i].priority < chain[j].priority
		}
		return chain[i].seq < chain[j].seq
	})
	r.chains[key] = chain
	return nil
}

// Fire runs value through every handler registered for name. Each handler
// receives the previous handler's output; the first error aborts the chain.
func (r *Registry) Fire(ctx context.Context, name string, value any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := canonicalKey(name)

	r.mu.RLock()
	chain := slices.Clone(r.chains[key])
	r.mu.RUnlock()

	current := value
	for idx, h := range chain {
		if idx > 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		next, err := h.fn(ctx, current)
		if err != nil {
			return nil, fmt.Errorf("hooks: %s handler %s: %w", key, describe(h, idx), err)
		}
		current = next
	}
	return current, nil
}

// Has reports whether any handler is registered for name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.chains[canonicalKey(name)]) > 0
}

// Names lists the filter names with at least one handler, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.chains))
	for name, chain := range r.chains {
		if len(chain) > 0 {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Plugins lists the plugin ids registered for name in execution order.
// Anonymous handlers are reported as "#<index>".
func (r *Registry) Plugins(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain := r.chains[canonicalKey(name)]
	out := make([]string, 0, len(chain))
	for idx, h := range chain {
		out = append(out, describe(h, idx))
	}
	return out
}

func describe(h handler, idx int) string {
	if h.plugin != "" {
		return h.plugin
	}
	return fmt.Sprintf("#%d", idx)
}

func canonicalKey(input string) string {
	return strings.TrimSpace(input)
}
