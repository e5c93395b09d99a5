package rules

import (
	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/fix"
	"github.com/yaklabco/javalint/pkg/javacst"
	"github.com/yaklabco/javalint/pkg/lint"
)

// emptyStatementParents are the contexts where a bare semicolon is a
// standalone statement rather than grammar punctuation.
var emptyStatementParents = map[string]bool{
	"block":                        true,
	"constructor_body":             true,
	"program":                      true,
	"switch_block_statement_group": true,
}

// EmptyStatementViolation reports a standalone semicolon.
type EmptyStatementViolation struct{}

func (v EmptyStatementViolation) Message() string {
	return "Empty statement."
}

func (v EmptyStatementViolation) Availability() lint.FixAvailability {
	return lint.FixSometimes
}

func (v EmptyStatementViolation) FixTitle() string {
	return "Remove empty statement"
}

// EmptyStatement checks for empty statements, that is standalone
// semicolons. Removal is offered as an unsafe fix because a semicolon
// that is the sole body of an if or loop changes behavior when deleted.
type EmptyStatement struct{}

// NewEmptyStatement constructs the rule.
func NewEmptyStatement(config.Properties) (lint.Rule, error) {
	return &EmptyStatement{}, nil
}

func (r *EmptyStatement) Name() string { return "EmptyStatement" }

func (r *EmptyStatement) RelevantKinds() []string { return []string{";"} }

func (r *EmptyStatement) Check(_ *lint.Context, node javacst.Node) []lint.Diagnostic {
	parent, ok := node.Parent()
	if !ok {
		return nil
	}

	standalone := emptyStatementParents[parent.Kind()]
	loneBody := false
	if !standalone {
		switch parent.Kind() {
		case "if_statement":
			if c, ok := parent.ChildByField("consequence"); ok && c.Equal(node) {
				loneBody = true
			}
		case "for_statement", "enhanced_for_statement", "while_statement":
			if b, ok := parent.ChildByField("body"); ok && b.Equal(node) {
				loneBody = true
			}
		}
		if !loneBody {
			return nil
		}
	}

	d := lint.NewDiagnostic(EmptyStatementViolation{}, node.Range())
	if standalone {
		d = d.WithFix(fix.UnsafeEdit(fix.Deletion(node.StartByte(), node.EndByte())))
	}
	return []lint.Diagnostic{d}
}

// PackageDeclarationViolation reports a missing package declaration.
type PackageDeclarationViolation struct{}

func (v PackageDeclarationViolation) Message() string {
	return "Missing package declaration."
}

func (v PackageDeclarationViolation) Availability() lint.FixAvailability {
	return lint.FixNever
}

// PackageDeclaration checks that each file declares a package.
type PackageDeclaration struct{}

// NewPackageDeclaration constructs the rule.
func NewPackageDeclaration(config.Properties) (lint.Rule, error) {
	return &PackageDeclaration{}, nil
}

func (r *PackageDeclaration) Name() string { return "PackageDeclaration" }

func (r *PackageDeclaration) RelevantKinds() []string { return []string{"program"} }

func (r *PackageDeclaration) Check(_ *lint.Context, node javacst.Node) []lint.Diagnostic {
	if _, ok := node.Parent(); ok {
		return nil
	}
	for i := 0; i < node.NamedChildCount(); i++ {
		c, ok := node.NamedChild(i)
		if ok && c.Kind() == "package_declaration" {
			return nil
		}
	}
	return []lint.Diagnostic{lint.NewDiagnostic(PackageDeclarationViolation{}, node.Range())}
}
