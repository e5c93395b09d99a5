// Package lint provides the rule engine, diagnostics, registry, and
// suppression filtering for javalint.
package lint

import (
	"reflect"
	"strings"

	"github.com/yaklabco/javalint/pkg/fix"
	"github.com/yaklabco/javalint/pkg/javacst"
)

// FixAvailability declares whether a violation class can carry a fix.
type FixAvailability int

const (
	// FixNever means diagnostics of this class never carry a fix.
	FixNever FixAvailability = iota

	// FixSometimes means a fix is attached when one can be computed.
	FixSometimes

	// FixAlways means every diagnostic of this class carries a fix.
	FixAlways
)

// String returns "never", "sometimes", or "always".
func (a FixAvailability) String() string {
	switch a {
	case FixAlways:
		return "always"
	case FixSometimes:
		return "sometimes"
	default:
		return "never"
	}
}

// Violation describes one class of lint finding. Each rule defines one or
// more violation types; the diagnostic code is derived from the type name.
type Violation interface {
	// Message returns the human-readable description of the finding.
	Message() string

	// Availability declares whether this violation class can be fixed.
	Availability() FixAvailability
}

// Titled is implemented by violations whose fix deserves a description in
// fix-availability hints ("Remove the redundant import").
type Titled interface {
	FixTitle() string
}

// Diagnostic represents a single lint issue found in a file.
type Diagnostic struct {
	// Code identifies the violation class, derived from the violation
	// type name ("UpperEll", "RedundantImport").
	Code string

	// Rule is the configured module name of the rule that produced this
	// diagnostic. Usually equal to Code; set by the engine.
	Rule string

	// Message is the human-readable description of the issue.
	Message string

	// FilePath is the path to the file containing the issue.
	FilePath string

	// Range is the byte range of the finding in the source.
	Range javacst.Range

	// StartLine is the 1-based line number where the issue starts.
	StartLine int

	// StartColumn is the 1-based column number where the issue starts.
	StartColumn int

	// EndLine is the 1-based line number where the issue ends.
	EndLine int

	// EndColumn is the 1-based column number where the issue ends.
	EndColumn int

	// Availability declares whether this violation class can be fixed.
	Availability FixAvailability

	// FixTitle describes the attached or potential fix.
	FixTitle string

	// Fix is the proposed repair, nil when none was computed.
	Fix *fix.Fix
}

// HasFix returns true if this diagnostic carries a fix.
func (d *Diagnostic) HasFix() bool {
	return d.Fix != nil && len(d.Fix.Edits) > 0
}

// NewDiagnostic creates a diagnostic for a violation at the given range.
// Position fields and FilePath are filled in by the engine.
func NewDiagnostic(v Violation, rng javacst.Range) Diagnostic {
	d := Diagnostic{
		Code:         codeOf(v),
		Message:      v.Message(),
		Range:        rng,
		Availability: v.Availability(),
	}
	if t, ok := v.(Titled); ok {
		d.FixTitle = t.FixTitle()
	}
	return d
}

// WithFix attaches a fix to the diagnostic and returns it.
func (d Diagnostic) WithFix(f *fix.Fix) Diagnostic {
	d.Fix = f
	return d
}

// codeOf derives the diagnostic code from the violation's type name,
// dropping a trailing "Violation": rules.UpperEllViolation yields
// "UpperEll".
func codeOf(v Violation) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	name := strings.TrimSuffix(t.Name(), "Violation")
	if name == "" {
		return t.Name()
	}
	return name
}
