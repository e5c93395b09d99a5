package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RuleMode controls how a configured rule participates in a run.
type RuleMode string

const (
	// ModeCheck reports diagnostics but never applies fixes for the rule.
	ModeCheck RuleMode = "check"

	// ModeFix reports diagnostics and applies the rule's fixes in fix mode.
	ModeFix RuleMode = "fix"

	// ModeDisabled turns the rule off entirely.
	ModeDisabled RuleMode = "disabled"
)

// IsValid returns true for a recognized rule mode.
func (m RuleMode) IsValid() bool {
	switch m {
	case ModeCheck, ModeFix, ModeDisabled:
		return true
	default:
		return false
	}
}

// Overlay is the optional javalint.yaml file layered on top of
// checkstyle.xml. It carries the tool-side knobs checkstyle has no
// vocabulary for: per-rule modes, unsafe fix opt-in, and run settings.
type Overlay struct {
	// Rules maps rule names to their mode. Rules not listed default to
	// ModeFix (fix when the rule offers one).
	Rules map[string]RuleMode `yaml:"rules"`

	// UnsafeFixes enables applying fixes marked unsafe.
	UnsafeFixes bool `yaml:"unsafe-fixes"`

	// MaxFixPasses bounds the fix loop. Zero means the default.
	MaxFixPasses int `yaml:"max-fix-passes"`

	// Jobs is the worker count. Zero means one worker per CPU.
	Jobs int `yaml:"jobs"`

	// Backup enables timestamped backups before writing fixes.
	Backup bool `yaml:"backup"`

	// Output is the report format name ("text", "json", "summary").
	Output string `yaml:"output"`

	// Exclude holds glob patterns for files to skip during discovery.
	Exclude []string `yaml:"exclude"`
}

// ParseOverlay parses a javalint.yaml document and validates its rule
// modes.
func ParseOverlay(data []byte) (*Overlay, error) {
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse overlay: %w", err)
	}

	for name, mode := range o.Rules {
		if !mode.IsValid() {
			return nil, fmt.Errorf("parse overlay: rule %q: unknown mode %q (want check, fix, or disabled)", name, mode)
		}
	}
	if o.MaxFixPasses < 0 {
		return nil, fmt.Errorf("parse overlay: max-fix-passes must not be negative")
	}

	return &o, nil
}

// Mode returns the configured mode for a rule, defaulting to ModeFix.
func (o *Overlay) Mode(rule string) RuleMode {
	if o == nil {
		return ModeFix
	}
	if m, ok := o.Rules[rule]; ok {
		return m
	}
	return ModeFix
}
