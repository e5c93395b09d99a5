package lint

import (
	"fmt"
	"slices"
	"sync"

	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/javacst"
)

// Registry maps rule names to their factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a rule factory under the given name.
// Registering the same name twice is a programming error and panics.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("lint: rule %q registered twice", name))
	}
	r.factories[name] = factory
}

// Lookup returns the factory for a rule name.
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// Names returns all registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Build constructs the rule set for a run from configured modules.
//
// Building is fail-fast: an unknown module name or a factory rejecting its
// properties aborts with a *ConfigError and no partial rule set. Disabled
// rules are skipped. Configured order is preserved and determines the
// order rules run at each node.
func (r *Registry) Build(cfg *config.Config) (*RuleSet, error) {
	set := &RuleSet{byKind: make(map[uint16][]ConfiguredRule)}

	for _, mod := range cfg.Rules {
		if cfg.Mode(mod.Name) == config.ModeDisabled {
			continue
		}

		factory, ok := r.Lookup(mod.Name)
		if !ok {
			return nil, &ConfigError{Module: mod.Name, Reason: "unknown rule"}
		}

		rule, err := factory(mod.Properties)
		if err != nil {
			return nil, &ConfigError{Module: mod.Name, Reason: "invalid properties", Err: err}
		}

		set.add(ConfiguredRule{Rule: rule, Mode: cfg.Mode(mod.Name)})
	}

	return set, nil
}

// ConfiguredRule pairs a constructed rule with its resolved mode.
type ConfiguredRule struct {
	Rule
	Mode config.RuleMode
}

// RuleSet is an immutable, kind-indexed collection of configured rules.
// The index is computed once at build time so dispatch is a single map
// lookup per visited node.
type RuleSet struct {
	rules    []ConfiguredRule
	byKind   map[uint16][]ConfiguredRule
	wildcard []ConfiguredRule
}

func (s *RuleSet) add(cr ConfiguredRule) {
	s.rules = append(s.rules, cr)

	kinds := cr.RelevantKinds()
	if len(kinds) == 0 {
		s.wildcard = append(s.wildcard, cr)
		return
	}
	for _, kind := range kinds {
		for _, id := range javacst.KindIDs(kind) {
			s.byKind[id] = append(s.byKind[id], cr)
		}
	}
}

// Rules returns all configured rules in configured order.
func (s *RuleSet) Rules() []ConfiguredRule {
	return s.rules
}

// Len returns the number of configured rules.
func (s *RuleSet) Len() int {
	return len(s.rules)
}

// For returns the rules subscribed to the given kind symbol, in configured
// order. Wildcard rules are not included; use Wildcard.
func (s *RuleSet) For(kindID uint16) []ConfiguredRule {
	return s.byKind[kindID]
}

// Wildcard returns the rules subscribed to every node.
func (s *RuleSet) Wildcard() []ConfiguredRule {
	return s.wildcard
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
