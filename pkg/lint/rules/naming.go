package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/javacst"
	"github.com/yaklabco/javalint/pkg/lint"
)

// Default name formats, matching the conventional Java styles.
var (
	defaultTypeFormat     = regexp.MustCompile(`^[A-Z][a-zA-Z0-9]*$`)
	defaultMethodFormat   = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	defaultMemberFormat   = regexp.MustCompile(`^[a-z][a-zA-Z0-9]*$`)
	defaultConstantFormat = regexp.MustCompile(`^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`)
)

// NameViolation reports an identifier that does not match its rule's
// required pattern.
type NameViolation struct {
	Name    string
	Pattern string
}

func (v NameViolation) Message() string {
	return fmt.Sprintf("Name '%s' must match pattern '%s'.", v.Name, v.Pattern)
}

func (v NameViolation) Availability() lint.FixAvailability {
	return lint.FixNever
}

// TypeNameViolation reports a badly named type.
type TypeNameViolation struct{ NameViolation }

// MethodNameViolation reports a badly named method.
type MethodNameViolation struct{ NameViolation }

// MemberNameViolation reports a badly named instance field.
type MemberNameViolation struct{ NameViolation }

// ConstantNameViolation reports a badly named constant.
type ConstantNameViolation struct{ NameViolation }

func nameDiagnostic(violation lint.Violation, name javacst.Node) lint.Diagnostic {
	return lint.NewDiagnostic(violation, name.Range())
}

// TypeName checks class, interface, enum, record, and annotation type
// names against a configurable pattern.
type TypeName struct {
	format *regexp.Regexp
}

// NewTypeName constructs the rule from its properties.
func NewTypeName(props config.Properties) (lint.Rule, error) {
	format, err := props.GetRegexp("format", defaultTypeFormat)
	if err != nil {
		return nil, err
	}
	return &TypeName{format: format}, nil
}

func (r *TypeName) Name() string { return "TypeName" }

func (r *TypeName) RelevantKinds() []string {
	return []string{
		"class_declaration",
		"interface_declaration",
		"enum_declaration",
		"record_declaration",
		"annotation_type_declaration",
	}
}

func (r *TypeName) Check(_ *lint.Context, node javacst.Node) []lint.Diagnostic {
	name, ok := node.ChildByField("name")
	if !ok || r.format.MatchString(name.Text()) {
		return nil
	}
	v := TypeNameViolation{NameViolation{Name: name.Text(), Pattern: r.format.String()}}
	return []lint.Diagnostic{nameDiagnostic(v, name)}
}

// MethodName checks method names against a configurable pattern.
type MethodName struct {
	format *regexp.Regexp
}

// NewMethodName constructs the rule from its properties.
func NewMethodName(props config.Properties) (lint.Rule, error) {
	format, err := props.GetRegexp("format", defaultMethodFormat)
	if err != nil {
		return nil, err
	}
	return &MethodName{format: format}, nil
}

func (r *MethodName) Name() string { return "MethodName" }

func (r *MethodName) RelevantKinds() []string { return []string{"method_declaration"} }

func (r *MethodName) Check(_ *lint.Context, node javacst.Node) []lint.Diagnostic {
	name, ok := node.ChildByField("name")
	if !ok || r.format.MatchString(name.Text()) {
		return nil
	}
	v := MethodNameViolation{NameViolation{Name: name.Text(), Pattern: r.format.String()}}
	return []lint.Diagnostic{nameDiagnostic(v, name)}
}

// MemberName checks non-static field names against a configurable
// pattern. Static final fields belong to ConstantName.
type MemberName struct {
	format *regexp.Regexp
}

// NewMemberName constructs the rule from its properties.
func NewMemberName(props config.Properties) (lint.Rule, error) {
	format, err := props.GetRegexp("format", defaultMemberFormat)
	if err != nil {
		return nil, err
	}
	return &MemberName{format: format}, nil
}

func (r *MemberName) Name() string { return "MemberName" }

func (r *MemberName) RelevantKinds() []string { return []string{"field_declaration"} }

func (r *MemberName) Check(_ *lint.Context, node javacst.Node) []lint.Diagnostic {
	if hasModifier(node, "static") {
		return nil
	}
	var diags []lint.Diagnostic
	for _, name := range fieldNames(node) {
		if r.format.MatchString(name.Text()) {
			continue
		}
		v := MemberNameViolation{NameViolation{Name: name.Text(), Pattern: r.format.String()}}
		diags = append(diags, nameDiagnostic(v, name))
	}
	return diags
}

// ConstantName checks static final field names against a configurable
// pattern.
type ConstantName struct {
	format *regexp.Regexp
}

// NewConstantName constructs the rule from its properties.
func NewConstantName(props config.Properties) (lint.Rule, error) {
	format, err := props.GetRegexp("format", defaultConstantFormat)
	if err != nil {
		return nil, err
	}
	return &ConstantName{format: format}, nil
}

func (r *ConstantName) Name() string { return "ConstantName" }

func (r *ConstantName) RelevantKinds() []string { return []string{"field_declaration"} }

func (r *ConstantName) Check(_ *lint.Context, node javacst.Node) []lint.Diagnostic {
	if !hasModifier(node, "static") || !hasModifier(node, "final") {
		return nil
	}
	var diags []lint.Diagnostic
	for _, name := range fieldNames(node) {
		if r.format.MatchString(name.Text()) {
			continue
		}
		v := ConstantNameViolation{NameViolation{Name: name.Text(), Pattern: r.format.String()}}
		diags = append(diags, nameDiagnostic(v, name))
	}
	return diags
}

// hasModifier reports whether a declaration carries the given modifier
// keyword.
func hasModifier(decl javacst.Node, keyword string) bool {
	for i := 0; i < decl.NamedChildCount(); i++ {
		c, ok := decl.NamedChild(i)
		if !ok || c.Kind() != "modifiers" {
			continue
		}
		for _, word := range strings.Fields(c.Text()) {
			if word == keyword {
				return true
			}
		}
	}
	return false
}

// fieldNames returns the declared identifiers of a field declaration.
// A single declaration can introduce several variables.
func fieldNames(decl javacst.Node) []javacst.Node {
	var names []javacst.Node
	for i := 0; i < decl.NamedChildCount(); i++ {
		c, ok := decl.NamedChild(i)
		if !ok || c.Kind() != "variable_declarator" {
			continue
		}
		if name, ok := c.ChildByField("name"); ok {
			names = append(names, name)
		}
	}
	return names
}
