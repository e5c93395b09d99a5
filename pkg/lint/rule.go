package lint

import (
	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/javacst"
)

// Rule defines the interface that all lint rules must implement.
//
// Rules are constructed once per run from their configured properties and
// are shared read-only across worker goroutines; all per-file state lives
// in the Context passed to Check.
type Rule interface {
	// Name returns the checkstyle module name of the rule
	// (e.g., "WhitespaceAfter").
	Name() string

	// RelevantKinds returns the CST kind names the rule wants to see.
	// An empty slice subscribes the rule to every node. Kind names the
	// grammar does not define are silently inert.
	RelevantKinds() []string

	// Check inspects a single node and returns any diagnostics.
	//
	// The engine calls Check once for each visited node whose kind is in
	// RelevantKinds, during a single pre-order traversal of the file.
	// Rules must not retain the node or context beyond the call.
	Check(ctx *Context, node javacst.Node) []Diagnostic
}

// Factory constructs a rule from its configured properties.
// A factory returns an error for properties it cannot accept; the registry
// converts that into a ConfigError and the run fails before any file is
// processed.
type Factory func(props config.Properties) (Rule, error)
