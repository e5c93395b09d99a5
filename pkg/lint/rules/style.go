package rules

import (
	"strings"

	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/fix"
	"github.com/yaklabco/javalint/pkg/javacst"
	"github.com/yaklabco/javalint/pkg/lint"
)

// UpperEllViolation reports a long literal suffixed with a lowercase ell.
type UpperEllViolation struct{}

func (v UpperEllViolation) Message() string {
	return "Should use uppercase 'L'."
}

func (v UpperEllViolation) Availability() lint.FixAvailability {
	return lint.FixAlways
}

func (v UpperEllViolation) FixTitle() string {
	return "Replace 'l' suffix with 'L'"
}

// UpperEll checks that long literals use an uppercase 'L' suffix. A
// lowercase 'l' is easy to mistake for the digit one.
type UpperEll struct{}

// NewUpperEll constructs the rule.
func NewUpperEll(config.Properties) (lint.Rule, error) {
	return &UpperEll{}, nil
}

func (r *UpperEll) Name() string { return "UpperEll" }

func (r *UpperEll) RelevantKinds() []string {
	return []string{
		"decimal_integer_literal",
		"hex_integer_literal",
		"octal_integer_literal",
		"binary_integer_literal",
	}
}

func (r *UpperEll) Check(_ *lint.Context, node javacst.Node) []lint.Diagnostic {
	if !strings.HasSuffix(node.Text(), "l") {
		return nil
	}
	d := lint.NewDiagnostic(UpperEllViolation{}, node.Range())
	d = d.WithFix(fix.SafeEdit(fix.Replacement(node.EndByte()-1, node.EndByte(), "L")))
	return []lint.Diagnostic{d}
}
