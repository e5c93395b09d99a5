package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yaklabco/javalint/pkg/config"
	"github.com/yaklabco/javalint/pkg/fix"
	"github.com/yaklabco/javalint/pkg/javacst"
	"github.com/yaklabco/javalint/pkg/lint"
)

// jlsModifierOrder is the modifier ordering suggested by the Java
// Language Specification, sections 8.1.1, 8.3.1, and 8.4.3.
var jlsModifierOrder = []string{
	"public",
	"protected",
	"private",
	"abstract",
	"default",
	"static",
	"sealed",
	"non-sealed",
	"final",
	"transient",
	"volatile",
	"synchronized",
	"native",
	"strictfp",
}

func jlsOrderIndex(text string) int {
	for i, m := range jlsModifierOrder {
		if m == text {
			return i
		}
	}
	return len(jlsModifierOrder)
}

// ModifierOutOfOrderViolation reports a keyword modifier that appears
// before one the JLS suggests should follow it.
type ModifierOutOfOrderViolation struct {
	Modifier string
}

func (v ModifierOutOfOrderViolation) Message() string {
	return fmt.Sprintf("'%s' modifier out of order with the JLS suggestions", v.Modifier)
}

func (v ModifierOutOfOrderViolation) Availability() lint.FixAvailability {
	return lint.FixAlways
}

func (v ModifierOutOfOrderViolation) FixTitle() string {
	return "Reorder modifiers to the JLS suggested order"
}

// AnnotationOrderViolation reports a declaration annotation placed after
// keyword modifiers.
type AnnotationOrderViolation struct {
	Annotation string
}

func (v AnnotationOrderViolation) Message() string {
	return fmt.Sprintf("'%s' annotation modifier does not precede non-annotation modifiers", v.Annotation)
}

func (v AnnotationOrderViolation) Availability() lint.FixAvailability {
	return lint.FixAlways
}

func (v AnnotationOrderViolation) FixTitle() string {
	return "Move annotations before keyword modifiers"
}

// ModifierOrder checks that declaration modifiers follow the order
// suggested by the JLS, with annotations first. Annotations that apply
// to a type rather than the declaration are allowed to trail.
type ModifierOrder struct{}

// NewModifierOrder constructs the rule.
func NewModifierOrder(config.Properties) (lint.Rule, error) {
	return &ModifierOrder{}, nil
}

func (r *ModifierOrder) Name() string { return "ModifierOrder" }

func (r *ModifierOrder) RelevantKinds() []string {
	return []string{"modifiers"}
}

func (r *ModifierOrder) Check(_ *lint.Context, node javacst.Node) []lint.Diagnostic {
	mods := modifierTokens(node)
	if len(mods) == 0 {
		return nil
	}

	// Speed past the leading annotations. If that is all there is, the
	// order is fine.
	i := 0
	for i < len(mods) && isAnnotationNode(mods[i]) {
		i++
	}
	if i == len(mods) {
		return nil
	}

	current := 0
	for ; i < len(mods); i++ {
		mod := mods[i]
		if isAnnotationNode(mod) {
			if isAnnotationOnType(node) {
				return nil
			}
			d := lint.NewDiagnostic(AnnotationOrderViolation{Annotation: mod.Text()}, mod.Range())
			return []lint.Diagnostic{d.WithFix(reorderFix(node, mods))}
		}

		// Each keyword must appear at or after the previous keyword's
		// position in the JLS table.
		text := mod.Text()
		for current < len(jlsModifierOrder) && jlsModifierOrder[current] != text {
			current++
		}
		if current == len(jlsModifierOrder) {
			d := lint.NewDiagnostic(ModifierOutOfOrderViolation{Modifier: text}, mod.Range())
			return []lint.Diagnostic{d.WithFix(reorderFix(node, mods))}
		}
	}
	return nil
}

// modifierTokens returns the children of a modifiers node, excluding
// comments that may sit between them.
func modifierTokens(node javacst.Node) []javacst.Node {
	var mods []javacst.Node
	for i := 0; i < node.ChildCount(); i++ {
		child, ok := node.Child(i)
		if !ok {
			continue
		}
		switch child.Kind() {
		case "line_comment", "block_comment":
			continue
		}
		mods = append(mods, child)
	}
	return mods
}

func isAnnotationNode(node javacst.Node) bool {
	switch node.Kind() {
	case "marker_annotation", "annotation", "normal_annotation":
		return true
	}
	return false
}

// isAnnotationOnType reports whether an annotation in the given
// modifiers node applies to a type rather than the declaration itself,
// in which case a trailing position is legitimate.
func isAnnotationOnType(modifiers javacst.Node) bool {
	definition, ok := modifiers.Parent()
	if !ok {
		return false
	}
	switch definition.Kind() {
	case "field_declaration",
		"local_variable_declaration",
		"formal_parameter",
		"catch_formal_parameter",
		"constructor_declaration":
		return true
	case "method_declaration":
		returnType, ok := definition.ChildByField("type")
		return ok && returnType.Kind() != "void_type"
	}
	return false
}

// reorderFix rewrites the whole modifiers node with annotations first
// and keywords in the JLS suggested order.
func reorderFix(node javacst.Node, mods []javacst.Node) *fix.Fix {
	var annotations, keywords []string
	for _, mod := range mods {
		if isAnnotationNode(mod) {
			annotations = append(annotations, mod.Text())
		} else {
			keywords = append(keywords, mod.Text())
		}
	}
	sort.SliceStable(keywords, func(i, j int) bool {
		return jlsOrderIndex(keywords[i]) < jlsOrderIndex(keywords[j])
	})
	ordered := strings.Join(append(annotations, keywords...), " ")
	return fix.SafeEdit(fix.Replacement(node.StartByte(), node.EndByte(), ordered))
}
