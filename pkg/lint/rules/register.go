package rules

import "github.com/yaklabco/javalint/pkg/lint"

// RegisterAll registers every built-in rule on the given registry.
func RegisterAll(r *lint.Registry) {
	// Whitespace.
	r.Register("WhitespaceAfter", NewWhitespaceAfter)
	r.Register("NoWhitespaceBefore", NewNoWhitespaceBefore)
	r.Register("ParenPad", NewParenPad)
	r.Register("FileTabCharacter", NewFileTabCharacter)

	// Blocks.
	r.Register("EmptyBlock", NewEmptyBlock)
	r.Register("EmptyCatchBlock", NewEmptyCatchBlock)
	r.Register("AvoidNestedBlocks", NewAvoidNestedBlocks)

	// Imports.
	r.Register("RedundantImport", NewRedundantImport)
	r.Register("UnusedImports", NewUnusedImports)

	// Coding.
	r.Register("EmptyStatement", NewEmptyStatement)
	r.Register("PackageDeclaration", NewPackageDeclaration)

	// Modifier.
	r.Register("ModifierOrder", NewModifierOrder)

	// Naming.
	r.Register("TypeName", NewTypeName)
	r.Register("MethodName", NewMethodName)
	r.Register("MemberName", NewMemberName)
	r.Register("ConstantName", NewConstantName)

	// Sizes.
	r.Register("LineLength", NewLineLength)
	r.Register("MethodLength", NewMethodLength)

	// Style.
	r.Register("UpperEll", NewUpperEll)
}

//nolint:gochecknoinits // Rule self-registration mirrors database/sql drivers
func init() {
	RegisterAll(lint.DefaultRegistry)
}
